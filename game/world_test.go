package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakfield/boargame/game"
	"github.com/oakfield/boargame/sim"
)

func TestNewWorld(t *testing.T) {
	world, err := game.NewWorld(game.DefaultConfig())
	require.NoError(t, err)

	t.Run("initial scene census", func(t *testing.T) {
		assert.Equal(t, 7, world.Store.Len(), "player, house, boar, four walls")

		kinds := map[sim.Kind]int{}
		colliders := 0
		for _, e := range world.Store.Each(nil) {
			kinds[e.Kind]++
			if e.Collider {
				colliders++
			}
		}
		assert.Equal(t, 1, kinds[sim.KindHouse])
		assert.Equal(t, 1, kinds[sim.KindBoar])
		assert.Equal(t, 5, kinds[sim.KindNone], "player plus four walls")
		assert.Equal(t, 7, colliders)
	})

	t.Run("singular player", func(t *testing.T) {
		_, player, err := world.Player()
		require.NoError(t, err)
		assert.Equal(t, game.PlayerStart, player.Pos)
		assert.True(t, player.HasHealth)
		assert.Equal(t, game.PlayerMaxHealth, player.Health)
	})

	t.Run("camera starts where the original placed it", func(t *testing.T) {
		assert.Equal(t, game.CameraStart, world.Camera.Pos)
		assert.Equal(t, game.CameraStartZoom, world.Camera.Zoom)
	})
}

func TestNewWorldRejectsBadConfig(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Bounds.Thickness = 5000
	_, err := game.NewWorld(cfg)
	assert.Error(t, err)

	cfg = game.DefaultConfig()
	cfg.Speed = 0
	_, err = game.NewWorld(cfg)
	assert.Error(t, err)
}

func TestPlayerSingularityViolation(t *testing.T) {
	world, err := game.NewWorld(game.DefaultConfig())
	require.NoError(t, err)
	world.Store.Spawn(sim.Entity{Player: true})

	_, _, err = world.Player()
	assert.ErrorIs(t, err, sim.ErrAmbiguous)
}
