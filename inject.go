package picking

const defaultFrameTime = 1.0 / 60

// syntheticSample is one queued frame of injected input.
type syntheticSample struct {
	pos         Vec2
	held        ButtonSet
	outOfBounds bool
}

// Injector is a Sampler fed by queued synthetic input, one queued frame per
// Sample call. It turns the queued held-button sets into press and release
// transitions the way a real device sampler would. When the queue is empty
// it defers to the fallback sampler, or repeats the last synthetic frame if
// there is none.
type Injector struct {
	// FrameTime is the clock advance per synthetic frame, in seconds.
	FrameTime float64

	queue      []syntheticSample
	queuedHeld ButtonSet
	queuedPos  Vec2
	fallback   Sampler

	held ButtonSet
	last syntheticSample
	time float64
}

// NewInjector returns an injector. fallback may be nil.
func NewInjector(fallback Sampler) *Injector {
	return &Injector{FrameTime: defaultFrameTime, fallback: fallback}
}

// Pending returns the number of queued frames.
func (j *Injector) Pending() int { return len(j.queue) }

func (j *Injector) push(x, y float64, held ButtonSet) {
	j.queuedPos = Vec2{x, y}
	j.queuedHeld = held
	j.queue = append(j.queue, syntheticSample{pos: j.queuedPos, held: held})
}

// InjectHover queues a frame with the pointer at (x, y) and the currently
// queued buttons still held.
func (j *Injector) InjectHover(x, y float64) {
	j.push(x, y, j.queuedHeld)
}

// InjectPress queues a frame pressing b at (x, y).
func (j *Injector) InjectPress(x, y float64, b Button) {
	j.push(x, y, j.queuedHeld.With(b))
}

// InjectMove queues a frame moving to (x, y) with the held buttons
// unchanged. Use it between InjectPress and InjectRelease to drag.
func (j *Injector) InjectMove(x, y float64) {
	j.push(x, y, j.queuedHeld)
}

// InjectRelease queues a frame releasing b at (x, y).
func (j *Injector) InjectRelease(x, y float64, b Button) {
	j.push(x, y, j.queuedHeld.Without(Buttons(b)))
}

// InjectLeave queues a frame with the pointer outside the window.
func (j *Injector) InjectLeave() {
	j.queue = append(j.queue, syntheticSample{pos: j.queuedPos, held: j.queuedHeld, outOfBounds: true})
}

// InjectClick queues a press followed by a release at the same position.
// Consumes two frames.
func (j *Injector) InjectClick(x, y float64, b Button) {
	j.InjectPress(x, y, b)
	j.InjectRelease(x, y, b)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (j *Injector) InjectDrag(fromX, fromY, toX, toY float64, frames int, b Button) {
	if frames < 2 {
		frames = 2
	}
	j.InjectPress(fromX, fromY, b)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		j.InjectMove(x, y)
	}
	j.InjectRelease(toX, toY, b)
}

// Sample pops one queued frame.
func (j *Injector) Sample() PointerSample {
	if len(j.queue) == 0 {
		if j.fallback != nil {
			return j.fallback.Sample()
		}
		j.time += j.FrameTime
		return PointerSample{Position: j.last.pos, Held: j.held, Time: j.time}
	}
	s := j.queue[0]
	copy(j.queue, j.queue[1:])
	j.queue = j.queue[:len(j.queue)-1]

	j.time += j.FrameTime
	out := PointerSample{
		Position:    s.pos,
		Pressed:     s.held.Without(j.held),
		Released:    j.held.Without(s.held),
		Held:        s.held,
		OutOfBounds: s.outOfBounds,
		Time:        j.time,
	}
	j.held = s.held
	j.last = s
	return out
}
