// Command boargame runs the exploration game: a fixed-timestep
// simulation core driven and rendered by an ebiten host.
package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/oakfield/boargame/game"
	"github.com/oakfield/boargame/geom"
	"github.com/oakfield/boargame/sim"
)

const (
	screenWidth  = 1024
	screenHeight = 762

	// labelTTL is how long a transient annotation stays on screen.
	labelTTL = 2.5

	// flashFrames is how many render frames the contact flash lasts.
	flashFrames = 6
)

type label struct {
	pos  geom.Vec2
	text string
	ttl  float64
}

// App is the ebiten host: it polls input into the world's snapshot,
// advances the fixed-step loop from the render clock, and draws the
// result. It also implements game.Annotator for transient labels.
type App struct {
	world *game.World
	loop  *sim.Loop

	labels []label
	flash  int
}

// Annotate implements game.Annotator.
func (a *App) Annotate(pos geom.Vec2, text string) {
	a.labels = append(a.labels, label{pos: pos, text: text, ttl: labelTTL})
}

func (a *App) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	a.world.Input = game.Input{
		Up:      ebiten.IsKeyPressed(ebiten.KeyW),
		Down:    ebiten.IsKeyPressed(ebiten.KeyS),
		Left:    ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD),
		ZoomOut: ebiten.IsKeyPressed(ebiten.KeyMinus),
		ZoomIn:  ebiten.IsKeyPressed(ebiten.KeyEqual),
	}

	frameTime := 1.0 / float64(ebiten.TPS())
	a.loop.Advance(frameTime)

	if a.flash > 0 {
		a.flash--
	}

	kept := a.labels[:0]
	for _, l := range a.labels {
		l.ttl -= frameTime
		if l.ttl > 0 {
			kept = append(kept, l)
		}
	}
	a.labels = kept

	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	bg := color.RGBA{120, 170, 110, 255}
	if a.flash > 0 {
		bg = color.RGBA{170, 170, 110, 255}
	}
	screen.Fill(bg)

	cam := a.world.Camera

	for _, e := range a.world.Store.Each(nil) {
		switch {
		case e.Player:
			sx, sy := a.worldToScreen(e.Pos)
			r := float32(e.Half.X / cam.Zoom)
			vector.DrawFilledCircle(screen, sx, sy, r, color.RGBA{230, 140, 40, 255}, true)
		case e.Kind == sim.KindHouse:
			a.drawBox(screen, e.Pos, e.Hitbox, color.RGBA{140, 90, 50, 255})
		case e.Kind == sim.KindBoar:
			a.drawBox(screen, e.Pos, e.Hitbox, color.RGBA{80, 70, 65, 255})
		default:
			// Walls and plain props.
			a.drawBox(screen, e.Pos, e.Hitbox, color.RGBA{0, 0, 0, 255})
		}
	}

	for _, l := range a.labels {
		sx, sy := a.worldToScreen(l.pos)
		ebitenutil.DebugPrintAt(screen, l.text, int(sx), int(sy))
	}

	_, player, err := a.world.Player()
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	hud := fmt.Sprintf("TPS %.0f  FPS %.0f  zoom %.2f  hp %.0f",
		ebiten.ActualTPS(), ebiten.ActualFPS(), cam.Zoom, player.Health)
	ebitenutil.DebugPrint(screen, hud)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// worldToScreen maps a y-up world position to y-down screen pixels,
// centered on the camera and scaled by its zoom.
func (a *App) worldToScreen(p geom.Vec2) (float32, float32) {
	cam := a.world.Camera
	sx := (p.X-cam.Pos.X)/cam.Zoom + screenWidth/2
	sy := (cam.Pos.Y-p.Y)/cam.Zoom + screenHeight/2
	return float32(sx), float32(sy)
}

func (a *App) drawBox(screen *ebiten.Image, center, half geom.Vec2, clr color.Color) {
	cam := a.world.Camera
	sx, sy := a.worldToScreen(geom.Vec2{X: center.X - half.X, Y: center.Y + half.Y})
	w := float32(2 * half.X / cam.Zoom)
	h := float32(2 * half.Y / cam.Zoom)
	vector.DrawFilledRect(screen, sx, sy, w, h, clr, false)
}

func main() {
	world, err := game.NewWorld(game.DefaultConfig())
	if err != nil {
		log.Fatalf("world setup: %v", err)
	}

	app := &App{world: world}

	scheduler := world.NewScheduler(game.DefaultReactions(app))
	scheduler.SetContactListener(func(sim.ContactEvent) {
		app.flash = flashFrames
	})

	loop, err := sim.NewLoop(scheduler, game.Timestep)
	if err != nil {
		log.Fatalf("loop setup: %v", err)
	}
	app.loop = loop

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Boar Game")

	log.Printf("starting: world %gx%g, tick %.3fs", world.Bounds.Width(), world.Bounds.Height(), game.Timestep)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
