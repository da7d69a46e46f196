package picking

import "fmt"

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventHoverEnter    EventType = iota // an entity became the hovered entity
	EventHoverExit                      // the hovered entity stopped being hovered
	EventPointerDown                    // the tracked button was pressed on an entity
	EventPointerUp                      // the tracked button was released (paired with Click)
	EventClick                          // press and release without exceeding the drag threshold
	EventDragStart                      // movement since the press exceeded the drag threshold
	EventDrag                           // the pointer moved while dragging
	EventDragEnd                        // the tracked button was released after dragging
	EventPointerCancel                  // a second button canceled a hover or press
	EventDragCancel                     // a second button canceled a drag

	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	"HoverEnter", "HoverExit", "PointerDown", "PointerUp", "Click",
	"DragStart", "Drag", "DragEnd", "PointerCancel", "DragCancel",
}

func (t EventType) String() string {
	if t < eventTypeCount {
		return eventTypeNames[t]
	}
	return fmt.Sprintf("EventType(%d)", uint8(t))
}

// Event is one entry of a frame's event batch. Events are plain values; a
// sink may keep them past the frame.
type Event struct {
	Type   EventType
	Entity EntityID
	// Button is the tracked button for press, release, drag and cancel events.
	Button   Button
	Position Vec2
	// Origin is where the tracked button went down.
	Origin Vec2
	// Delta is the movement reported by DragStart, Drag and DragEnd. For
	// DragStart and the Drag paired with it, it is measured from Origin;
	// afterwards it is measured from the previous drag position.
	Delta Vec2
	// Duration is the time in seconds between the press and this event, for
	// PointerUp, Click, DragEnd and the cancel events.
	Duration float64
	// Outside reports that the release happened while the entity was no
	// longer the nearest hit.
	Outside   bool
	Modifiers KeyModifiers
}

func (e Event) String() string {
	if e.Type == EventDrag || e.Type == EventDragStart {
		return fmt.Sprintf("%s(%d, %.1f,%.1f)", e.Type, e.Entity, e.Delta.X, e.Delta.Y)
	}
	return fmt.Sprintf("%s(%d)", e.Type, e.Entity)
}

// pairedWith reports whether next may follow prev for the same entity in a
// single batch. PointerUp+Click and DragStart+Drag count as one event.
func pairedWith(prev, next EventType) bool {
	return (prev == EventPointerUp && next == EventClick) ||
		(prev == EventDragStart && next == EventDrag)
}

// FirstFor returns the first event in batch targeting entity.
func FirstFor(batch []Event, entity EntityID) (Event, bool) {
	for _, e := range batch {
		if e.Entity == entity {
			return e, true
		}
	}
	return Event{}, false
}

// EventsFor appends the events in batch targeting entity to dst.
func EventsFor(dst, batch []Event, entity EntityID) []Event {
	for _, e := range batch {
		if e.Entity == entity {
			dst = append(dst, e)
		}
	}
	return dst
}

// CheckBatch returns an error when batch delivers more than one event to an
// entity, paired events excepted.
func CheckBatch(batch []Event) error {
	for i := 0; i < len(batch); i++ {
		next := i + 1
		if next < len(batch) && batch[next].Entity == batch[i].Entity &&
			pairedWith(batch[i].Type, batch[next].Type) {
			next++
		}
		for j := next; j < len(batch); j++ {
			if batch[j].Entity == batch[i].Entity {
				return fmt.Errorf("picking: entity %d receives %s and %s in one frame",
					batch[i].Entity, batch[i].Type, batch[j].Type)
			}
		}
		i = next - 1
	}
	return nil
}
