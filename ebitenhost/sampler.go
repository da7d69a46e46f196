// Package ebitenhost runs the picking state machine inside an [Ebitengine]
// game loop: it samples the mouse through ebiten, drives a picking.Driver
// once per tick and offers small host-side helpers such as [HoverFade].
//
// [Ebitengine]: https://ebitengine.org
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/picking"
)

// buttonMap pairs every picking button with its ebiten mouse button.
var buttonMap = [...]struct {
	button picking.Button
	mouse  ebiten.MouseButton
}{
	{picking.ButtonLeft, ebiten.MouseButtonLeft},
	{picking.ButtonRight, ebiten.MouseButtonRight},
	{picking.ButtonMiddle, ebiten.MouseButtonMiddle},
	{picking.ButtonBack, ebiten.MouseButton3},
	{picking.ButtonForward, ebiten.MouseButton4},
}

// Sampler reads the mouse through ebiten. It must be sampled from the game's
// Update, where ebiten's input state is current.
type Sampler struct {
	// ScreenToWorld converts cursor coordinates before they reach the
	// machine. Nil keeps screen coordinates.
	ScreenToWorld func(sx, sy float64) (wx, wy float64)
	// IgnoreFocus keeps sampling while the window is unfocused.
	IgnoreFocus bool

	width, height int
	time          float64
}

// SetBounds records the logical screen size; a cursor outside it is
// reported as out of bounds. Game.Layout calls it.
func (s *Sampler) SetBounds(width, height int) {
	s.width, s.height = width, height
}

// Sample reads this tick's cursor position and button transitions.
func (s *Sampler) Sample() picking.PointerSample {
	s.time += TickSeconds()

	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)
	wx, wy := sx, sy
	if s.ScreenToWorld != nil {
		wx, wy = s.ScreenToWorld(sx, sy)
	}

	var in picking.PointerSample
	in.Position = picking.Vec2{X: wx, Y: wy}
	in.Time = s.time
	in.Modifiers = readModifiers()
	in.OutOfBounds = s.outOfBounds(mx, my)

	for _, m := range buttonMap {
		if inpututil.IsMouseButtonJustPressed(m.mouse) {
			in.Pressed = in.Pressed.With(m.button)
		}
		if inpututil.IsMouseButtonJustReleased(m.mouse) {
			in.Released = in.Released.With(m.button)
		}
		if ebiten.IsMouseButtonPressed(m.mouse) {
			in.Held = in.Held.With(m.button)
		}
	}
	return in
}

func (s *Sampler) outOfBounds(mx, my int) bool {
	if !s.IgnoreFocus && !ebiten.IsFocused() {
		return true
	}
	if s.width <= 0 || s.height <= 0 {
		return false
	}
	return mx < 0 || my < 0 || mx >= s.width || my >= s.height
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() picking.KeyModifiers {
	var mods picking.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= picking.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= picking.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= picking.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= picking.ModMeta
	}
	return mods
}
