package picking

// Sampler supplies the pointer input for one frame.
type Sampler interface {
	Sample() PointerSample
}

// SamplerFunc adapts a function to Sampler.
type SamplerFunc func() PointerSample

func (f SamplerFunc) Sample() PointerSample { return f() }

// Driver runs one frame of the pipeline per Tick: sample the pointer, ask the
// hit source what is under it, step the machine, hand the batch to the sink.
// It is the thin adapter a host update loop calls once per tick.
type Driver struct {
	Machine *Machine
	Sampler Sampler
	Hits    HitSource
	// Sink receives every event. Usually a *Dispatcher.
	Sink EventSink

	hitBuf []EntityID
}

// NewDriver wires a machine to its collaborators. hits and sink may be nil.
func NewDriver(m *Machine, sampler Sampler, hits HitSource, sink EventSink) *Driver {
	return &Driver{Machine: m, Sampler: sampler, Hits: hits, Sink: sink}
}

// Tick runs one frame and returns its events. The slice is valid until the
// next Tick.
func (d *Driver) Tick() []Event {
	in := d.Sampler.Sample()

	d.hitBuf = d.hitBuf[:0]
	if d.Hits != nil && !in.OutOfBounds {
		d.hitBuf = d.Hits.AppendHits(d.hitBuf, in.Position)
	}

	batch := d.Machine.Update(in, d.hitBuf)
	if d.Sink != nil {
		for _, e := range batch {
			d.Sink.EmitEvent(e)
		}
	}
	return batch
}
