package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/glyphstage/component"
	"github.com/lixenwraith/glyphstage/core"
)

var (
	// ErrUnknownEntity is returned when an operation names an entity that is not alive
	ErrUnknownEntity = errors.New("unknown entity")
	// ErrParentCycle is returned when a parent assignment would make an entity its own ancestor
	ErrParentCycle = errors.New("parent cycle")
)

// ComponentStore holds one typed store per component kind
type ComponentStore struct {
	Node      *Store[component.NodeComponent]
	Transform *Store[component.TransformComponent]
	Texture   *Store[component.TextureComponent]
	Color     *Store[component.ColorComponent]
	Animated  *Store[component.AnimatedComponent]
	Collider  *Store[component.ColliderComponent]
	Camera    *Store[component.CameraComponent]
	Behavior  *Store[component.BehaviorComponent]
	Movement  *Store[component.MovementComponent]
	Tween     *Store[component.TweenComponent]
}

// World is the entity registry: ids, component stores, group index and the deletion queue
// It is owned by the frame loop goroutine and does not lock
type World struct {
	nextEntityID core.Entity

	Groups     *GroupIndex
	Components ComponentStore

	allStores []AnyStore

	queued    []core.Entity
	queuedSet map[core.Entity]struct{}
}

// NewWorld creates an empty world with every component store registered
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Groups:       NewGroupIndex(),
		queuedSet:    make(map[core.Entity]struct{}),
	}
	initComponentStores(w)
	return w
}

func initComponentStores(w *World) {
	g := w.Groups
	w.Components = ComponentStore{
		Node:      NewStore[component.NodeComponent](core.GroupNode, g),
		Transform: NewStore[component.TransformComponent](core.GroupTransform, g),
		Texture:   NewStore[component.TextureComponent](core.GroupTexture, g),
		Color:     NewStore[component.ColorComponent](core.GroupColor, g),
		Animated:  NewStore[component.AnimatedComponent](core.GroupAnimated, g),
		Collider:  NewStore[component.ColliderComponent](core.GroupCollider, g),
		Camera:    NewStore[component.CameraComponent](core.GroupCamera, g),
		Behavior:  NewStore[component.BehaviorComponent](core.GroupBehavior, g),
		Movement:  NewStore[component.MovementComponent](core.GroupMovement, g),
		Tween:     NewStore[component.TweenComponent](core.GroupTween, g),
	}
	c := &w.Components
	// Node last so a destroyed entity stays alive until its other components are gone
	w.allStores = []AnyStore{
		c.Transform, c.Texture, c.Color, c.Animated, c.Collider,
		c.Camera, c.Behavior, c.Movement, c.Tween, c.Node,
	}
}

// CreateEntity assigns a fresh id and attaches a root NodeComponent
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	w.Components.Node.Set(id, component.NodeComponent{})
	return id
}

// IsAlive reports whether the entity exists and has not been destroyed
func (w *World) IsAlive(e core.Entity) bool {
	return w.Components.Node.Has(e)
}

// EntityCount returns the number of live entities, queued ones included
func (w *World) EntityCount() int {
	return w.Components.Node.Count()
}

// QueueFree marks e for destruction at the next flush
// The entity stays fully queryable until then; repeated and unknown ids are ignored
func (w *World) QueueFree(e core.Entity) {
	if !w.IsAlive(e) {
		return
	}
	if _, ok := w.queuedSet[e]; ok {
		return
	}
	w.queuedSet[e] = struct{}{}
	w.queued = append(w.queued, e)
}

// IsQueued reports whether e is awaiting the flush
func (w *World) IsQueued(e core.Entity) bool {
	_, ok := w.queuedSet[e]
	return ok
}

// FlushQueued destroys queued entities in queue order and returns how many were destroyed
func (w *World) FlushQueued() int {
	if len(w.queued) == 0 {
		return 0
	}
	queued := w.queued
	w.queued = nil
	clear(w.queuedSet)

	n := 0
	for _, e := range queued {
		if w.IsAlive(e) {
			w.DestroyEntity(e)
			n++
		}
	}
	return n
}

// DestroyEntity removes e from every store and group immediately
// Children are detached and become roots; destroying twice is a no-op
func (w *World) DestroyEntity(e core.Entity) {
	if !w.IsAlive(e) {
		return
	}
	for _, child := range w.Children(e) {
		w.Components.Node.MustGet(child).Parent = core.None
	}
	for _, s := range w.allStores {
		s.Remove(e)
	}
	delete(w.queuedSet, e)
}

// Clear removes all entities and resets id assignment
func (w *World) Clear() {
	for _, s := range w.allStores {
		s.Clear()
	}
	w.Groups.Clear()
	w.queued = nil
	clear(w.queuedSet)
	w.nextEntityID = 1
}

// Parent returns the parent of e, None for roots and unknown ids
func (w *World) Parent(e core.Entity) core.Entity {
	if n, ok := w.Components.Node.Get(e); ok {
		return n.Parent
	}
	return core.None
}

// Children returns the direct children of e in registration order
func (w *World) Children(e core.Entity) []core.Entity {
	if e == core.None {
		return nil
	}
	var children []core.Entity
	nodes := w.Components.Node
	for _, id := range nodes.entities {
		if nodes.components[id].Parent == e {
			children = append(children, id)
		}
	}
	return children
}

// SetParent links child under parent; None detaches
func (w *World) SetParent(child, parent core.Entity) error {
	node, ok := w.Components.Node.Get(child)
	if !ok {
		return fmt.Errorf("set parent of %s: %w", child, ErrUnknownEntity)
	}
	if parent == core.None {
		node.Parent = core.None
		return nil
	}
	if !w.IsAlive(parent) {
		return fmt.Errorf("set parent of %s to %s: %w", child, parent, ErrUnknownEntity)
	}
	for p := parent; p != core.None; p = w.Parent(p) {
		if p == child {
			return fmt.Errorf("set parent of %s to %s: %w", child, parent, ErrParentCycle)
		}
	}
	node.Parent = parent
	return nil
}

// SetProcessPriority orders e within the behavior task; lower runs first
func (w *World) SetProcessPriority(e core.Entity, priority int) {
	if n, ok := w.Components.Node.Get(e); ok {
		n.ProcessPriority = priority
	}
}
