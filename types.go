package picking

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// EntityID identifies a pickable entity. The state machine only compares IDs
// for equality; the host decides what they refer to.
type EntityID uint32

// Vec2 is a 2D vector used for pointer positions and drag deltas.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Button identifies a pointer button.
type Button uint8

const (
	ButtonLeft    Button = iota // primary (left) mouse button
	ButtonRight                 // secondary (right) mouse button
	ButtonMiddle                // middle mouse button (scroll wheel click)
	ButtonBack                  // fourth button, usually "back"
	ButtonForward               // fifth button, usually "forward"

	buttonCount
)

var buttonNames = [buttonCount]string{"left", "right", "middle", "back", "forward"}

func (b Button) String() string {
	if b < buttonCount {
		return buttonNames[b]
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}

// ParseButton returns the button with the given name. "primary" and
// "secondary" are accepted as aliases for left and right.
func ParseButton(name string) (Button, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left", "primary":
		return ButtonLeft, nil
	case "right", "secondary":
		return ButtonRight, nil
	case "middle":
		return ButtonMiddle, nil
	case "back":
		return ButtonBack, nil
	case "forward":
		return ButtonForward, nil
	}
	return 0, fmt.Errorf("picking: unknown button %q", name)
}

// UnmarshalYAML decodes a button from its name.
func (b *Button) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("picking: button must be a scalar (line %d)", value.Line)
	}
	parsed, err := ParseButton(value.Value)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ButtonSet is a set of buttons stored as a bitmask. The zero value is the
// empty set. Iteration order is always ascending by Button value.
type ButtonSet uint8

// Buttons returns a set holding the given buttons.
func Buttons(bs ...Button) ButtonSet {
	var s ButtonSet
	for _, b := range bs {
		s = s.With(b)
	}
	return s
}

// AllButtons holds every button the package knows about.
const AllButtons ButtonSet = 1<<buttonCount - 1

// Has reports whether b is in the set.
func (s ButtonSet) Has(b Button) bool { return b < buttonCount && s&(1<<b) != 0 }

// With returns the set with b added. Unknown buttons are ignored.
func (s ButtonSet) With(b Button) ButtonSet {
	if b >= buttonCount {
		return s
	}
	return s | 1<<b
}

// Without returns the buttons of s that are not in o.
func (s ButtonSet) Without(o ButtonSet) ButtonSet { return s &^ o }

// Union returns the buttons in either set.
func (s ButtonSet) Union(o ButtonSet) ButtonSet { return s | o }

// Intersect returns the buttons in both sets.
func (s ButtonSet) Intersect(o ButtonSet) ButtonSet { return s & o }

// Empty reports whether the set holds no known button.
func (s ButtonSet) Empty() bool { return s&AllButtons == 0 }

// Len returns the number of buttons in the set.
func (s ButtonSet) Len() int {
	n := 0
	for v := s & AllButtons; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// First returns the lowest button in the set.
func (s ButtonSet) First() (Button, bool) {
	for b := Button(0); b < buttonCount; b++ {
		if s.Has(b) {
			return b, true
		}
	}
	return 0, false
}

// Slice returns the buttons in ascending order.
func (s ButtonSet) Slice() []Button {
	out := make([]Button, 0, s.Len())
	for b := Button(0); b < buttonCount; b++ {
		if s.Has(b) {
			out = append(out, b)
		}
	}
	return out
}

func (s ButtonSet) String() string {
	names := make([]string, 0, s.Len())
	for _, b := range s.Slice() {
		names = append(names, b.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

// UnmarshalYAML decodes a set from a sequence of button names, or the
// scalar "all".
func (s *ButtonSet) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if strings.EqualFold(value.Value, "all") {
			*s = AllButtons
			return nil
		}
		b, err := ParseButton(value.Value)
		if err != nil {
			return err
		}
		*s = Buttons(b)
		return nil
	case yaml.SequenceNode:
		var list []Button
		if err := value.Decode(&list); err != nil {
			return err
		}
		*s = Buttons(list...)
		return nil
	}
	return fmt.Errorf("picking: button set must be a list of names (line %d)", value.Line)
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)
