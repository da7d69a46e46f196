package ebitenhost

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/picking"
)

const defaultFadeDuration = 0.15 // seconds

// HoverFade turns the hover events of a frame into a smoothly animated
// highlight intensity per entity, in [0, 1]. Register it as a sink (or feed
// it from a dispatcher callback) and call Update once per tick.
type HoverFade struct {
	Duration float32
	Ease     ease.TweenFunc

	fades map[picking.EntityID]*fade
}

type fade struct {
	tween  *gween.Tween
	value  float32
	target float32
}

// NewHoverFade returns a fader with the default duration and an ease-out
// curve.
func NewHoverFade() *HoverFade {
	return &HoverFade{
		Duration: defaultFadeDuration,
		Ease:     ease.OutQuad,
		fades:    make(map[picking.EntityID]*fade),
	}
}

// EmitEvent starts fading the event's entity in or out.
func (h *HoverFade) EmitEvent(e picking.Event) {
	switch e.Type {
	case picking.EventHoverEnter, picking.EventPointerDown:
		h.fadeTo(e.Entity, 1)
	case picking.EventHoverExit, picking.EventPointerCancel, picking.EventDragCancel:
		h.fadeTo(e.Entity, 0)
	case picking.EventPointerUp, picking.EventDragEnd:
		if e.Outside {
			h.fadeTo(e.Entity, 0)
		}
	}
}

func (h *HoverFade) fadeTo(e picking.EntityID, target float32) {
	f, ok := h.fades[e]
	if !ok {
		f = &fade{}
		h.fades[e] = f
	}
	if f.target == target && f.tween != nil {
		return
	}
	f.target = target
	if h.Duration <= 0 {
		f.value, f.tween = target, nil
		if target == 0 {
			delete(h.fades, e)
		}
		return
	}
	f.tween = gween.New(f.value, target, h.Duration, h.Ease)
}

// Update advances every running fade by dt seconds. Entities that faded out
// completely are forgotten.
func (h *HoverFade) Update(dt float32) {
	for e, f := range h.fades {
		if f.tween == nil {
			continue
		}
		val, finished := f.tween.Update(dt)
		f.value = val
		if finished {
			f.tween = nil
			if f.target == 0 {
				delete(h.fades, e)
			}
		}
	}
}

// Value returns the current highlight intensity of e.
func (h *HoverFade) Value(e picking.EntityID) float64 {
	if f, ok := h.fades[e]; ok {
		return float64(f.value)
	}
	return 0
}
