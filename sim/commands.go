package sim

// Commands buffers structural changes to the store until the end of the
// tick, so systems never mutate the entity table while another system
// (or their own iteration) is reading it.
type Commands struct {
	spawns   []Entity
	despawns []Handle
	defers   []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues an entity insertion for the end of the tick.
func (c *Commands) Spawn(e Entity) {
	c.spawns = append(c.spawns, e)
}

// Despawn queues an entity removal for the end of the tick.
func (c *Commands) Despawn(h Handle) {
	c.despawns = append(c.despawns, h)
}

// Defer queues an arbitrary function to run after all structural changes
// have been applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

func (c *Commands) flush(store *Store) {
	for _, h := range c.despawns {
		store.Despawn(h)
	}
	for _, e := range c.spawns {
		store.Spawn(e)
	}
	for _, fn := range c.defers {
		fn()
	}
	c.spawns = c.spawns[:0]
	c.despawns = c.despawns[:0]
	c.defers = c.defers[:0]
}
