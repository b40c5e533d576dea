package game_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakfield/boargame/game"
	"github.com/oakfield/boargame/geom"
)

func TestCameraPan(t *testing.T) {
	world, scheduler := newSession(t)
	cam := world.Camera
	cam.Pos = geom.Vec2{X: 0, Y: 0}

	world.Input = game.Input{Left: true, Down: true}
	scheduler.Once(game.Timestep)

	perTick := game.PlayerSpeed * game.Timestep
	assert.InDelta(t, -perTick, cam.Pos.X, 1e-9)
	assert.InDelta(t, -perTick, cam.Pos.Y, 1e-9)

	t.Run("pan is clamped like the player", func(t *testing.T) {
		min, _ := world.Bounds.Inset(cam.Half)
		cam.Pos = geom.Vec2{X: min.X - 1, Y: 0}
		world.Input = game.Input{Left: true}
		scheduler.Once(game.Timestep)
		assert.Equal(t, min.X, cam.Pos.X)
	})

	t.Run("camera does not follow the player", func(t *testing.T) {
		_, player, err := world.Player()
		require.NoError(t, err)
		player.Pos = geom.Vec2{X: 0, Y: 0}
		cam.Pos = geom.Vec2{X: 100, Y: 100}

		world.Input = game.Input{}
		scheduler.Once(game.Timestep)
		assert.Equal(t, geom.Vec2{X: 100, Y: 100}, cam.Pos)
	})
}

func TestCameraZoom(t *testing.T) {
	t.Run("continuous zoom while held", func(t *testing.T) {
		world, scheduler := newSession(t)
		world.Input = game.Input{ZoomOut: true}
		scheduler.Once(game.Timestep)
		assert.InDelta(t, game.CameraStartZoom*game.ZoomOutFactor, world.Camera.Zoom, 1e-9)
		scheduler.Once(game.Timestep)
		assert.InDelta(t, game.CameraStartZoom*game.ZoomOutFactor*game.ZoomOutFactor, world.Camera.Zoom, 1e-9)
	})

	t.Run("clamped to the zoom range", func(t *testing.T) {
		world, scheduler := newSession(t)
		world.Input = game.Input{ZoomOut: true}
		for i := 0; i < 100; i++ {
			scheduler.Once(game.Timestep)
		}
		assert.Equal(t, game.ZoomMax, world.Camera.Zoom)

		world.Input = game.Input{ZoomIn: true}
		for i := 0; i < 100; i++ {
			scheduler.Once(game.Timestep)
		}
		assert.Equal(t, game.ZoomMin, world.Camera.Zoom)
	})

	t.Run("deterministic off the clamp boundary", func(t *testing.T) {
		// The stock factors are not exact reciprocals, so k outs followed
		// by k ins lands on start*(out*in)^k rather than the start value.
		world, scheduler := newSession(t)
		const k = 5

		world.Input = game.Input{ZoomOut: true}
		for i := 0; i < k; i++ {
			scheduler.Once(game.Timestep)
		}
		world.Input = game.Input{ZoomIn: true}
		for i := 0; i < k; i++ {
			scheduler.Once(game.Timestep)
		}

		expected := game.CameraStartZoom
		for i := 0; i < k; i++ {
			expected *= game.ZoomOutFactor * game.ZoomInFactor
		}
		assert.InDelta(t, expected, world.Camera.Zoom, 1e-9)
	})

	t.Run("zoom stays in range under random holds", func(t *testing.T) {
		world, scheduler := newSession(t)
		rng := rand.New(rand.NewPCG(21, 42))
		for i := 0; i < 500; i++ {
			world.Input = game.Input{
				ZoomIn:  rng.IntN(2) == 0,
				ZoomOut: rng.IntN(2) == 0,
			}
			scheduler.Once(game.Timestep)
			require.GreaterOrEqual(t, world.Camera.Zoom, game.ZoomMin)
			require.LessOrEqual(t, world.Camera.Zoom, game.ZoomMax)
		}
	})

	t.Run("pan and zoom mutate in the same tick", func(t *testing.T) {
		world, scheduler := newSession(t)
		cam := world.Camera
		cam.Pos = geom.Vec2{X: 0, Y: 0}

		world.Input = game.Input{Right: true, ZoomOut: true}
		scheduler.Once(game.Timestep)

		assert.InDelta(t, game.PlayerSpeed*game.Timestep, cam.Pos.X, 1e-9)
		assert.InDelta(t, game.CameraStartZoom*game.ZoomOutFactor, cam.Zoom, 1e-9)
	})
}
