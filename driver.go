package reel

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the [Run] game loop.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Update, if set, runs every tick after the juggler has advanced.
	// dt is the fixed frame delta in seconds.
	Update func(dt float64)
	// Draw, if set, renders every frame.
	Draw func(screen *ebiten.Image)
}

// driverGame adapts a Juggler to the ebiten game loop.
type driverGame struct {
	juggler *Juggler
	cfg     RunConfig
}

func (g *driverGame) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	g.juggler.AdvanceTime(dt)
	if g.cfg.Update != nil {
		g.cfg.Update(dt)
	}
	return nil
}

func (g *driverGame) Draw(screen *ebiten.Image) {
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen)
	}
}

func (g *driverGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives the juggler once per tick at ebiten's fixed
// timestep. For full control, implement [ebiten.Game] yourself and call
// [Juggler.AdvanceTime] from your Update method.
func Run(j *Juggler, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Title == "" {
		cfg.Title = "reel"
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(&driverGame{juggler: j, cfg: cfg})
}
