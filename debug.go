package picking

import (
	"fmt"
	"log/slog"
)

// discardLogger drops everything. Machines and dispatchers start with it so
// that logging costs nothing unless a logger is set.
var discardLogger = slog.New(slog.DiscardHandler)

// debugCheckInput logs input the machine ignores: duplicate hits and
// releases of buttons nothing knew about.
func (m *Machine) debugCheckInput(in PointerSample, hits []EntityID) {
	for i := 1; i < len(hits); i++ {
		for j := 0; j < i; j++ {
			if hits[i] == hits[j] {
				m.logger.Debug("picking: duplicate hit, nearest occurrence wins",
					slog.Uint64("frame", m.frame), slog.Uint64("entity", uint64(hits[i])))
				break
			}
		}
	}
	if untracked := in.Pressed.Union(in.Released).Union(in.Held).Without(m.cfg.TrackedButtons); !untracked.Empty() {
		m.logger.Debug("picking: ignoring untracked buttons",
			slog.Uint64("frame", m.frame), slog.String("buttons", untracked.String()))
	}
	if m.state.IsPressing() {
		stray := in.Released.Intersect(m.cfg.TrackedButtons).Without(Buttons(m.state.Button))
		if !stray.Empty() {
			m.logger.Debug("picking: release of a button that was not tracked",
				slog.Uint64("frame", m.frame), slog.String("buttons", stray.String()))
		}
	}
}

// debugCheckFrame panics when the frame's result breaks an invariant. Only
// called in debug mode.
func (m *Machine) debugCheckFrame(next State, batch []Event) {
	if err := next.Validate(); err != nil {
		panic(fmt.Sprintf("picking debug: frame %d: %v", m.frame, err))
	}
	if err := CheckBatch(batch); err != nil {
		panic(fmt.Sprintf("picking debug: frame %d: %v", m.frame, err))
	}
	for _, e := range batch {
		m.logger.Debug("picking: event",
			slog.Uint64("frame", m.frame),
			slog.String("event", e.Type.String()),
			slog.Uint64("entity", uint64(e.Entity)))
	}
	if next.Phase != m.state.Phase || next.Entity != m.state.Entity {
		m.logger.Debug("picking: transition",
			slog.Uint64("frame", m.frame),
			slog.String("from", m.state.String()),
			slog.String("to", next.String()))
	}
}
