package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/picking"
)

// Game is an ebiten.Game that ticks a picking.Driver every Update. The
// driver runs before OnUpdate, so OnUpdate sees this tick's state and the
// dispatcher callbacks have already fired.
type Game struct {
	Driver  *picking.Driver
	Sampler *Sampler

	// OnUpdate runs after the driver each tick. Returning an error stops
	// the game.
	OnUpdate func() error
	// OnDraw renders the frame.
	OnDraw func(screen *ebiten.Image)

	// Width and Height fix the logical screen size. Zero uses the outside
	// size.
	Width, Height int
}

// NewGame builds a Game around a machine, using an ebiten Sampler, the given
// hit source and a fresh Dispatcher as the sink. The dispatcher is returned
// so the caller can register callbacks.
func NewGame(m *picking.Machine, hits picking.HitSource) (*Game, *picking.Dispatcher) {
	sampler := &Sampler{}
	d := picking.NewDispatcher()
	return &Game{
		Driver:  picking.NewDriver(m, sampler, hits, d),
		Sampler: sampler,
	}, d
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.Driver.Tick()
	if g.OnUpdate != nil {
		return g.OnUpdate()
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.OnDraw != nil {
		g.OnDraw(screen)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := outsideWidth, outsideHeight
	if g.Width > 0 && g.Height > 0 {
		w, h = g.Width, g.Height
	}
	if g.Sampler != nil {
		g.Sampler.SetBounds(w, h)
	}
	return w, h
}

// TickSeconds returns the length of one Update tick in seconds. When ticks
// follow the frame rate (ebiten.SyncWithFPS) it uses the measured TPS, and
// it returns 0 until that is known.
func TickSeconds() float64 {
	tps := float64(ebiten.TPS())
	if tps <= 0 {
		tps = ebiten.ActualTPS()
	}
	if tps <= 0 {
		return 0
	}
	return 1 / tps
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
}

// Run opens a window and runs g until it returns an error or the window is
// closed.
func Run(g *Game, cfg RunConfig) error {
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		if g.Width == 0 && g.Height == 0 {
			g.Width, g.Height = cfg.Width, cfg.Height
		}
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	return ebiten.RunGame(g)
}
