// Package optimistic applies mutations to a local collection before the
// backend confirms them, and restores the previous snapshot when it refuses.
package optimistic

import (
	"context"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/taskflow/internal/api"
)

// State is the lifecycle of the latest mutation on one entity. Committed and
// RolledBack last only until Settle returns; the entity is then Idle again and
// the result is carried by Outcome.Result.
type State int

const (
	Idle State = iota
	Pending
	Committed
	RolledBack
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Committed:
		return "committed"
	case RolledBack:
		return "rolled_back"
	}
	return "idle"
}

// Result describes how a mutation settled
type Result int

const (
	// NoOp means apply reported no change; nothing was sent
	NoOp Result = iota
	ResultCommitted
	ResultRolledBack
	// Discarded means the view unmounted before settlement; local state was not touched
	Discarded
)

// Outcome is returned once a mutation settles
type Outcome[T any] struct {
	Result Result
	// Item is the entity as it stands locally after settlement
	Item T
	// Err is a *MutationError when Result is ResultRolledBack, or the remote error when Discarded
	Err error
}

// Notifier raises a user-visible notice
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

// Op is one optimistic mutation
type Op[T any] struct {
	// Name completes "Failed to ..." in notices, e.g. "move task"
	Name string
	// Apply returns the locally mutated entity and whether anything changed
	Apply func(T) (T, bool)
	// Remote persists the applied entity and returns the backend's copy
	Remote func(ctx context.Context, applied T) (T, error)
}

// Config wires a Controller to its view
type Config[T any] struct {
	// Publish receives a copy of the collection after every local change
	Publish func([]T)
	Notifier Notifier
	// Reconcile merges the backend's copy into the applied entity on success.
	// Nil keeps the applied entity.
	Reconcile func(applied, remote T) T
	Logger    *slog.Logger
}

// Controller owns a keyed collection and runs optimistic mutations on it.
// Rapid mutations are not coalesced: each captures its own snapshot and the
// last one to settle wins.
type Controller[K comparable, T any] struct {
	mu        sync.Mutex
	items     []T
	key       func(T) K
	cfg       Config[T]
	states    map[K]State
	latest    map[K]uint64
	seq       uint64
	unmounted bool
}

// New creates a controller over items; key extracts an entity's identity
func New[K comparable, T any](items []T, key func(T) K, cfg Config[T]) *Controller[K, T] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Controller[K, T]{
		items:  clone(items),
		key:    key,
		cfg:    cfg,
		states: map[K]State{},
		latest: map[K]uint64{},
	}
}

// Mutation is a mutation that has been applied locally and awaits its remote call
type Mutation[K comparable, T any] struct {
	Key      K
	Applied  T
	op       Op[T]
	snapshot []T
	seq      uint64
}

// Run issues the remote call. It does not touch controller state and may run
// on any goroutine.
func (m *Mutation[K, T]) Run(ctx context.Context) (T, error) {
	return m.op.Remote(ctx, m.Applied)
}

// Items returns a copy of the current collection
func (c *Controller[K, T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return clone(c.items)
}

// Get returns the entity with the given key
func (c *Controller[K, T]) Get(key K) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(key)
	if i < 0 {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

// Replace swaps in a freshly fetched collection
func (c *Controller[K, T]) Replace(items []T) {
	c.mu.Lock()
	c.items = clone(items)
	c.mu.Unlock()
}

// State reports the lifecycle state of key's latest mutation
func (c *Controller[K, T]) State(key K) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.states[key]
}

// Unmount discards the owning view. Mutations settling afterwards neither
// change local state nor publish.
func (c *Controller[K, T]) Unmount() {
	c.mu.Lock()
	c.unmounted = true
	c.mu.Unlock()
}

// Begin captures a snapshot, applies op locally and publishes the result.
// It returns nil with no error when op.Apply reports no change.
func (c *Controller[K, T]) Begin(key K, op Op[T]) (*Mutation[K, T], error) {
	c.mu.Lock()

	if c.unmounted {
		c.mu.Unlock()
		return nil, ErrUnmounted
	}

	i := c.indexOf(key)
	if i < 0 {
		c.mu.Unlock()
		return nil, ErrNotFound
	}

	applied, changed := op.Apply(c.items[i])
	if !changed {
		c.mu.Unlock()
		return nil, nil
	}

	c.seq++
	m := &Mutation[K, T]{
		Key:      key,
		Applied:  applied,
		op:       op,
		snapshot: clone(c.items),
		seq:      c.seq,
	}
	c.items[i] = applied
	c.states[key] = Pending
	c.latest[key] = m.seq
	published := clone(c.items)
	c.mu.Unlock()

	c.publish(published)
	return m, nil
}

// Settle records the remote result of m. On failure the snapshot captured by
// Begin is restored and the notifier is told.
func (c *Controller[K, T]) Settle(m *Mutation[K, T], remote T, err error) Outcome[T] {
	c.mu.Lock()

	if c.unmounted {
		c.mu.Unlock()
		c.cfg.Logger.Debug("dropping settlement for unmounted view", "op", m.op.Name, "key", m.Key)
		return Outcome[T]{Result: Discarded, Item: m.Applied, Err: err}
	}

	latest := c.latest[m.Key] == m.seq

	if err == nil {
		c.finish(m, latest, Committed)
		item := m.Applied
		var published []T
		if c.cfg.Reconcile != nil && latest {
			if i := c.indexOf(m.Key); i >= 0 {
				item = c.cfg.Reconcile(m.Applied, remote)
				c.items[i] = item
				published = clone(c.items)
			}
		}
		c.mu.Unlock()

		if published != nil {
			c.publish(published)
		}
		return Outcome[T]{Result: ResultCommitted, Item: item}
	}

	c.items = m.snapshot
	c.finish(m, latest, RolledBack)
	item := m.Applied
	if i := c.indexOf(m.Key); i >= 0 {
		item = c.items[i]
	}
	published := clone(c.items)
	c.mu.Unlock()

	mutErr := &MutationError{Op: m.op.Name, Key: m.Key, Kind: api.Classify(err), Err: err}
	c.cfg.Logger.Error("optimistic mutation rolled back",
		"op", m.op.Name, "key", m.Key, "kind", mutErr.Kind.String(), "error", err)

	c.publish(published)
	if c.cfg.Notifier != nil {
		c.cfg.Notifier.Notify("Failed to " + m.op.Name)
	}
	return Outcome[T]{Result: ResultRolledBack, Item: item, Err: mutErr}
}

// finish moves m's entity through state back to Idle. A settlement for an
// older mutation leaves a newer in-flight one Pending. Callers hold c.mu.
func (c *Controller[K, T]) finish(m *Mutation[K, T], latest bool, state State) {
	if !latest {
		return
	}
	c.cfg.Logger.Debug("mutation settled", "op", m.op.Name, "key", m.Key, "state", state.String())
	delete(c.states, m.Key)
	delete(c.latest, m.Key)
}

// Mutate runs Begin, the remote call and Settle in sequence
func (c *Controller[K, T]) Mutate(ctx context.Context, key K, op Op[T]) (Outcome[T], error) {
	m, err := c.Begin(key, op)
	if err != nil {
		return Outcome[T]{}, err
	}
	if m == nil {
		item, _ := c.Get(key)
		return Outcome[T]{Result: NoOp, Item: item}, nil
	}

	remote, remoteErr := m.Run(ctx)
	return c.Settle(m, remote, remoteErr), nil
}

func (c *Controller[K, T]) publish(items []T) {
	if c.cfg.Publish != nil {
		c.cfg.Publish(items)
	}
}

func (c *Controller[K, T]) indexOf(key K) int {
	for i, item := range c.items {
		if c.key(item) == key {
			return i
		}
	}
	return -1
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
