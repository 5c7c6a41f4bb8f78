package game

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/cbodonnell/blaster/pkg/collisions"
	"github.com/cbodonnell/blaster/pkg/game/types"
	"github.com/cbodonnell/blaster/pkg/kinematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager(collisions.NewCollisionSpace(768, 480))
}

func collectObjects(m *Manager) []*GameObject {
	objects := []*GameObject{}
	for obj := range m.All() {
		objects = append(objects, obj)
	}
	return objects
}

func TestManager_Add(t *testing.T) {
	m := newTestManager()

	player := NewPlayer(NewObjectOptions{X: 10, Y: 10})
	enemy := NewEnemy(NewObjectOptions{X: 20, Y: 20})

	playerID := m.Add(player)
	enemyID := m.Add(enemy)
	assert.NotZero(t, playerID)
	assert.NotEqual(t, playerID, enemyID)
	assert.Equal(t, playerID, player.ID())
	assert.Equal(t, 2, m.Len())

	got, ok := m.Get(enemyID)
	require.True(t, ok)
	assert.Same(t, enemy, got)
	assert.Same(t, enemy, got.Shape().Data)

	t.Run("adding twice keeps one entry", func(t *testing.T) {
		assert.Equal(t, playerID, m.Add(player))
		assert.Equal(t, 2, m.Len())
	})

	t.Run("nil is ignored", func(t *testing.T) {
		assert.Equal(t, ObjectID(0), m.Add(nil))
		assert.Equal(t, 2, m.Len())
	})

	t.Run("unknown id", func(t *testing.T) {
		_, ok := m.Get(ObjectID(999))
		assert.False(t, ok)
	})
}

func TestManager_RemoveDestroyed_preservesOrder(t *testing.T) {
	m := newTestManager()
	a := NewEnemy(NewObjectOptions{X: 1, Y: 1})
	b := NewEnemy(NewObjectOptions{X: 2, Y: 2})
	c := NewEnemy(NewObjectOptions{X: 3, Y: 3})
	m.Add(a)
	bID := m.Add(b)
	m.Add(c)

	b.Destroy()
	assert.Equal(t, 1, m.RemoveDestroyed())

	assert.Equal(t, []*GameObject{a, c}, collectObjects(m))
	_, ok := m.Get(bID)
	assert.False(t, ok)
	assert.Nil(t, b.Shape())
	assert.NotNil(t, a.Shape())

	t.Run("released objects cannot be re-added", func(t *testing.T) {
		assert.Equal(t, ObjectID(0), m.Add(b))
		assert.Equal(t, 2, m.Len())
	})

	t.Run("nothing to remove", func(t *testing.T) {
		assert.Equal(t, 0, m.RemoveDestroyed())
		assert.Equal(t, []*GameObject{a, c}, collectObjects(m))
	})
}

func TestManager_RemoveDestroyed_subsets(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	patterns := map[string]func(i, n int) bool{
		"none":        func(i, n int) bool { return false },
		"all":         func(i, n int) bool { return true },
		"alternating": func(i, n int) bool { return i%2 == 0 },
		"first":       func(i, n int) bool { return i == 0 },
		"last":        func(i, n int) bool { return i == n-1 },
		"middle run":  func(i, n int) bool { return i >= n/4 && i < n/2 },
		"random":      func(i, n int) bool { return rng.Intn(3) == 0 },
	}

	for _, n := range []int{0, 1, 2, 7, 100, 1000} {
		for name, destroy := range patterns {
			t.Run(fmt.Sprintf("%s/%d", name, n), func(t *testing.T) {
				m := newTestManager()
				want := []*GameObject{}
				removed := []ObjectID{}
				for i := 0; i < n; i++ {
					obj := NewEnemy(NewObjectOptions{X: float64(i % 768), Y: float64(i % 480)})
					id := m.Add(obj)
					if destroy(i, n) {
						obj.Destroy()
						removed = append(removed, id)
					} else {
						want = append(want, obj)
					}
				}

				assert.Equal(t, len(removed), m.RemoveDestroyed())
				assert.Equal(t, want, collectObjects(m))
				assert.Equal(t, len(want), m.Len())
				for _, id := range removed {
					_, ok := m.Get(id)
					assert.False(t, ok)
				}
				for _, obj := range want {
					got, ok := m.Get(obj.ID())
					require.True(t, ok)
					assert.Same(t, obj, got)
				}
			})
		}
	}
}

func TestManager_All(t *testing.T) {
	m := newTestManager()
	for i := 0; i < 5; i++ {
		m.Add(NewEnemy(NewObjectOptions{X: float64(i)}))
	}

	t.Run("early exit", func(t *testing.T) {
		visited := 0
		for range m.All() {
			visited++
			if visited == 2 {
				break
			}
		}
		assert.Equal(t, 2, visited)
	})

	t.Run("objects added during iteration are not visited", func(t *testing.T) {
		visited := 0
		m.ForEach(func(obj *GameObject) {
			visited++
			m.Add(NewEnemy(NewObjectOptions{}))
		})
		assert.Equal(t, 5, visited)
		assert.Equal(t, 10, m.Len())
	})
}

func TestManager_Update_destroyedDuringPass(t *testing.T) {
	m := newTestManager()
	viewport := NewViewport(768, 480)

	player := NewPlayer(NewObjectOptions{X: 384, Y: 240})
	inside := NewPlayerBullet(NewObjectOptions{X: 100, Y: 100}, kinematic.NewVector(10, 0))
	outside := NewPlayerBullet(NewObjectOptions{X: 760, Y: 100}, kinematic.NewVector(100, 0))
	enemy := NewEnemy(NewObjectOptions{X: 128, Y: 96})
	for _, obj := range []*GameObject{player, inside, outside, enemy} {
		m.Add(obj)
	}

	frame := &Frame{DeltaTime: 1, Viewport: viewport, Commands: NewCommands()}
	m.ForEach(func(obj *GameObject) {
		obj.Update(frame)
	})
	m.RemoveDestroyed()

	assert.Equal(t, []*GameObject{player, inside, enemy}, collectObjects(m))
	assert.Equal(t, kinematic.NewVector(110, 100), inside.Position())
}

func TestManager_Clear(t *testing.T) {
	m := newTestManager()
	player := NewPlayer(NewObjectOptions{})
	id := m.Add(player)
	m.Add(NewPlayerBullet(NewObjectOptions{}, kinematic.Vector{}))

	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, collectObjects(m))
	_, ok := m.Get(id)
	assert.False(t, ok)
	assert.True(t, player.IsDestroyed())
	assert.Nil(t, player.Shape())

	// ids keep increasing after a clear
	next := m.Add(NewEnemy(NewObjectOptions{}))
	assert.Greater(t, next, id)
	got, ok := m.Get(next)
	require.True(t, ok)
	assert.Equal(t, types.KindEnemy, got.Kind())
}

func TestManager_withoutSpace(t *testing.T) {
	m := NewManager(nil)
	obj := NewEnemy(NewObjectOptions{X: 5, Y: 5})
	m.Add(obj)
	obj.SetPosition(kinematic.NewVector(6, 6))
	obj.Destroy()
	assert.Equal(t, 1, m.RemoveDestroyed())
	assert.Nil(t, m.Space())
}

func TestManager_Add_ownedByAnotherManager(t *testing.T) {
	a := newTestManager()
	b := newTestManager()

	obj := NewEnemy(NewObjectOptions{X: 10, Y: 10})
	idA := a.Add(obj)
	require.NotZero(t, idA)

	b.Add(NewEnemy(NewObjectOptions{}))
	b.Add(NewEnemy(NewObjectOptions{}))
	assert.Equal(t, ObjectID(0), b.Add(obj))
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, idA, obj.ID())

	obj.Destroy()
	assert.Equal(t, 1, a.RemoveDestroyed())
	_, ok := a.Get(idA)
	assert.False(t, ok)
	assert.Equal(t, 0, a.Len())
	for other := range b.All() {
		assert.NotSame(t, obj, other)
	}

	// once released it belongs to nobody and cannot be adopted
	assert.Equal(t, ObjectID(0), b.Add(obj))
}

func TestManager_SetSpace(t *testing.T) {
	m := newTestManager()
	player := NewPlayer(NewObjectOptions{X: 100, Y: 100})
	enemy := NewEnemy(NewObjectOptions{X: 900, Y: 700})
	m.Add(player)
	m.Add(enemy)
	old := m.Space()
	require.Same(t, old, player.Shape().Space)

	resized := collisions.NewCollisionSpace(1024, 768)
	m.SetSpace(resized)

	assert.Same(t, resized, m.Space())
	assert.Same(t, resized, player.Shape().Space)
	assert.Same(t, resized, enemy.Shape().Space)
	assert.Equal(t, kinematic.NewVector(100, 100), player.Position())

	enemy.Destroy()
	m.RemoveDestroyed()
	assert.Equal(t, []*GameObject{player}, collectObjects(m))
	assert.Nil(t, enemy.Shape())
}
