package picking

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Button string  `json:"button,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`

	button Button
}

// script is the top-level JSON structure for an input script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a JSON input script through an Injector. It is itself
// a Sampler: each Sample call advances the script by at most one step and
// then samples the injector.
//
//	{"steps": [
//	  {"action": "hover", "x": 10, "y": 10},
//	  {"action": "click", "x": 10, "y": 10, "button": "left"},
//	  {"action": "drag", "fromX": 10, "fromY": 10, "toX": 90, "toY": 40, "frames": 6},
//	  {"action": "wait", "frames": 3}
//	]}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	inj       *Injector
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("picking: parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("picking: parse script: no steps")
	}
	for i := range sc.Steps {
		st := &sc.Steps[i]
		switch st.Action {
		case "hover", "move", "press", "release", "click", "drag", "leave", "wait":
		default:
			return nil, fmt.Errorf("picking: parse script: step %d: unknown action %q", i, st.Action)
		}
		if st.Button != "" {
			b, err := ParseButton(st.Button)
			if err != nil {
				return nil, fmt.Errorf("picking: parse script: step %d: %w", i, err)
			}
			st.button = b
		}
	}
	return &ScriptRunner{steps: sc.Steps, inj: NewInjector(nil)}, nil
}

// Injector returns the injector the script feeds.
func (r *ScriptRunner) Injector() *Injector { return r.inj }

// Done reports whether every step has run and all injected frames have been
// sampled.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Sample advances the script and returns the next injected frame.
func (r *ScriptRunner) Sample() PointerSample {
	r.step()
	s := r.inj.Sample()
	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.inj.Pending() == 0 {
		r.done = true
	}
	return s
}

// step runs the next script action once the injector has drained.
func (r *ScriptRunner) step() {
	if r.done || r.inj.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "hover", "move":
		r.inj.InjectMove(st.X, st.Y)
	case "press":
		r.inj.InjectPress(st.X, st.Y, st.button)
	case "release":
		r.inj.InjectRelease(st.X, st.Y, st.button)
	case "click":
		r.inj.InjectClick(st.X, st.Y, st.button)
	case "drag":
		r.inj.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames, st.button)
	case "leave":
		r.inj.InjectLeave()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
