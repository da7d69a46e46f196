package picking

import (
	"slices"
	"strings"
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "hover", "x": 10, "y": 10},
			{"action": "click", "x": 100, "y": 200, "button": "right"},
			{"action": "wait", "frames": 3},
			{"action": "drag", "fromX": 1, "fromY": 2, "toX": 30, "toY": 40, "frames": 4}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].button != ButtonRight {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].ToY != 40 || runner.steps[3].button != ButtonLeft {
		t.Error("step 3 mismatch")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	tests := []struct {
		name, data, want string
	}{
		{"not json", `not json`, "parse script"},
		{"empty", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "screenshot"}]}`, "unknown action"},
		{"unknown button", `{"steps": [{"action": "click", "button": "thumb"}]}`, "unknown button"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestScriptRunner_Drive(t *testing.T) {
	data := []byte(`{"steps": [
		{"action": "hover", "x": 10, "y": 10},
		{"action": "click", "x": 10, "y": 10},
		{"action": "wait", "frames": 2},
		{"action": "drag", "fromX": 10, "fromY": 10, "toX": 40, "toY": 10, "frames": 3},
		{"action": "leave"}
	]}`)
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}
	sink := &mockStore{}
	d := NewDriver(NewMachine(DefaultConfig()), runner, StaticHits{entA}, sink)

	frames := 0
	for !runner.Done() {
		d.Tick()
		frames++
		if frames > 50 {
			t.Fatal("script never finished")
		}
	}
	// hover, press, release, 2 waits, 3 drag frames, leave
	if frames != 9 {
		t.Errorf("frames = %d, want 9", frames)
	}
	want := []EventType{
		EventHoverEnter,
		EventPointerDown, EventPointerUp, EventClick,
		EventPointerDown, EventDragStart, EventDrag, EventDragEnd,
		EventHoverExit,
	}
	if got := types(sink.events); !slices.Equal(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestScriptRunner_DoneStaysDone(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [{"action": "move", "x": 1, "y": 1}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.Sample()
	if !runner.Done() {
		t.Fatal("single-frame script should be done after one sample")
	}
	if s := runner.Sample(); s.Position != (Vec2{1, 1}) {
		t.Errorf("sample after done: %+v", s)
	}
}
