package ebitenhost

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestTickSeconds(t *testing.T) {
	prev := ebiten.TPS()
	defer ebiten.SetTPS(prev)

	ebiten.SetTPS(50)
	if got := TickSeconds(); got != 0.02 {
		t.Errorf("TickSeconds at 50 TPS = %v, want 0.02", got)
	}

	ebiten.SetTPS(ebiten.SyncWithFPS)
	if got := TickSeconds(); got < 0 {
		t.Errorf("TickSeconds with SyncWithFPS = %v, want >= 0", got)
	}
}

func TestGame_LayoutSetsBounds(t *testing.T) {
	g := &Game{Sampler: &Sampler{IgnoreFocus: true}, Width: 320, Height: 200}
	w, h := g.Layout(1024, 768)
	if w != 320 || h != 200 {
		t.Errorf("Layout = %d,%d, want 320,200", w, h)
	}
	if g.Sampler.width != 320 || g.Sampler.height != 200 {
		t.Errorf("sampler bounds = %d,%d", g.Sampler.width, g.Sampler.height)
	}
	if !g.Sampler.outOfBounds(320, 10) || g.Sampler.outOfBounds(10, 10) {
		t.Error("bounds check")
	}
}
