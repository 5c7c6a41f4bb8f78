package game

// Commands buffers spawn requests made while objects update so the manager's
// sequence is never modified mid-pass. The frame loop flushes it after the
// update pass.
type Commands struct {
	spawns []*GameObject
}

func NewCommands() *Commands {
	return &Commands{}
}

// Spawn queues obj to be added to the manager at the next flush.
func (c *Commands) Spawn(obj *GameObject) {
	if obj == nil {
		return
	}
	c.spawns = append(c.spawns, obj)
}

// Len returns the number of pending spawn requests.
func (c *Commands) Len() int {
	return len(c.spawns)
}

// Flush adds every pending object to m in request order and resets the buffer.
func (c *Commands) Flush(m *Manager) []ObjectID {
	if len(c.spawns) == 0 {
		return nil
	}
	ids := make([]ObjectID, 0, len(c.spawns))
	for _, obj := range c.spawns {
		ids = append(ids, m.Add(obj))
	}
	clear(c.spawns)
	c.spawns = c.spawns[:0]
	return ids
}
