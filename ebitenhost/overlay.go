package ebitenhost

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/picking"
)

const (
	overlayRefresh = 0.5 // seconds between redraws
	overlayEvents  = 6
	overlayW       = 260
	overlayH       = 48 + 16*overlayEvents
)

// Overlay draws the FPS, the machine state and the most recent events in a
// corner of the screen. Register it as a sink to feed it events.
type Overlay struct {
	Machine *picking.Machine

	img     *ebiten.Image
	recent  []string
	elapsed float64
	dirty   bool
}

// NewOverlay returns an overlay reporting on m.
func NewOverlay(m *picking.Machine) *Overlay {
	return &Overlay{Machine: m, dirty: true}
}

// EmitEvent records e in the recent events list.
func (o *Overlay) EmitEvent(e picking.Event) {
	line := e.String()
	if e.Type != picking.EventHoverEnter && e.Type != picking.EventHoverExit && e.Type != picking.EventDrag {
		line += " " + e.Button.String()
	}
	if e.Outside {
		line += " outside"
	}
	if len(o.recent) == overlayEvents {
		copy(o.recent, o.recent[1:])
		o.recent = o.recent[:overlayEvents-1]
	}
	o.recent = append(o.recent, line)
	o.dirty = true
}

// Update advances the refresh timer by dt seconds.
func (o *Overlay) Update(dt float64) {
	o.elapsed += dt
	if o.elapsed >= overlayRefresh {
		o.elapsed = 0
		o.dirty = true
	}
}

// Draw renders the overlay at the top left of screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.img == nil {
		o.img = ebiten.NewImage(overlayW, overlayH)
	}
	if o.dirty {
		o.redraw()
		o.dirty = false
	}
	screen.DrawImage(o.img, nil)
}

func (o *Overlay) redraw() {
	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.text())
}

func (o *Overlay) text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "FPS: %.1f  TPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	if o.Machine != nil {
		fmt.Fprintf(&sb, "state: %s\n", o.Machine.State())
	}
	for _, line := range o.recent {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
