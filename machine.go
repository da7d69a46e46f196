package picking

import "log/slog"

const defaultBatchCap = 4

// Machine owns the interaction state and advances it once per frame. It is
// not safe for concurrent use: the host calls Update from its update loop
// and reads snapshots between frames.
type Machine struct {
	cfg    Config
	state  State
	prev   State
	batch  []Event
	frame  uint64
	logger *slog.Logger
}

// NewMachine returns a machine in the Idle state. An invalid cfg is replaced
// by DefaultConfig.
func NewMachine(cfg Config) *Machine {
	if cfg.Validate() != nil {
		cfg = DefaultConfig()
	}
	return &Machine{
		cfg:    cfg,
		batch:  make([]Event, 0, defaultBatchCap),
		logger: discardLogger,
	}
}

// SetLogger sets the logger used in debug mode. A nil logger disables
// logging.
func (m *Machine) SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger
	}
	m.logger = l
}

// Config returns the active configuration.
func (m *Machine) Config() Config { return m.cfg }

// SetConfig replaces the configuration from the next frame on. It returns
// the validation error and keeps the old configuration if cfg is invalid.
// The current state is kept; a tracked button that is no longer tracked is
// released on the next Update.
func (m *Machine) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	m.cfg = cfg
	return nil
}

// Update advances the machine by one frame and returns the frame's events.
// The returned slice is reused by the next Update; copy it to keep it.
func (m *Machine) Update(in PointerSample, hits []EntityID) []Event {
	m.frame++
	if m.cfg.Debug {
		m.debugCheckInput(in, hits)
	}
	next, batch := AppendStep(m.batch[:0], m.cfg, m.state, in, hits)
	if m.cfg.Debug {
		m.debugCheckFrame(next, batch)
	}
	m.prev, m.state, m.batch = m.state, next, batch
	return batch
}

// State returns a snapshot of the current state.
func (m *Machine) State() State { return m.state }

// Previous returns the state before the last Update.
func (m *Machine) Previous() State { return m.prev }

// Events returns the events produced by the last Update. The slice is valid
// until the next Update.
func (m *Machine) Events() []Event { return m.batch }

// Frame returns the number of Updates so far.
func (m *Machine) Frame() uint64 { return m.frame }

// ActiveEntity returns the hovered, pressed or dragged entity.
func (m *Machine) ActiveEntity() (EntityID, bool) { return m.state.ActiveEntity() }

// EntityState returns the current state of e.
func (m *Machine) EntityState(e EntityID) EntityState { return m.state.EntityState(e) }

// Transition returns the event e received in the last frame, if any. For
// paired events the first of the pair is returned.
func (m *Machine) Transition(e EntityID) (Event, bool) { return FirstFor(m.batch, e) }

// Reset returns the machine to Idle without emitting events. The frame
// counter keeps running.
func (m *Machine) Reset() {
	m.prev = m.state
	m.state = State{Pointer: m.state.Pointer}
	m.batch = m.batch[:0]
}
