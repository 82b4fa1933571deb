package theme

import (
	"fmt"
	"sync"

	"oceanic/internal/debug"
	apperrors "oceanic/internal/errors"
)

// EventKind names the mutation an observer is being told about.
type EventKind string

const (
	// ThemeAdded fires after Register inserts or overwrites a theme.
	ThemeAdded EventKind = "ThemeAdded"
	// ThemeChanged fires after SwitchTo moves the active pointer.
	ThemeChanged EventKind = "ThemeChanged"
)

// Event is delivered to observers after each mutation.
//
// For ThemeAdded, Name and Config describe the registered theme.
// For ThemeChanged, Name is the new active theme, Previous the one it
// replaced and Config the new active theme's configuration.
type Event[C any] struct {
	Kind     EventKind
	Name     string
	Previous string
	Config   C
}

// Observer receives registry events. A returned error (or a panic) is
// reported to the registry's reporter and does not stop delivery to later
// observers.
type Observer[C any] func(Event[C]) error

// Reporter receives observer failures.
type Reporter[C any] func(ev Event[C], err error)

// Option configures a Registry at construction.
type Option[C any] func(*Registry[C])

// WithReporter overrides where observer failures go. The default writes to
// the debug log.
func WithReporter[C any](r Reporter[C]) Option[C] {
	return func(reg *Registry[C]) {
		if r != nil {
			reg.report = r
		}
	}
}

// WithLogf overrides the warning sink used when SwitchTo misses.
func WithLogf[C any](logf func(format string, args ...any)) Option[C] {
	return func(reg *Registry[C]) {
		if logf != nil {
			reg.warnf = logf
		}
	}
}

type subscription[C any] struct {
	id uint64
	fn Observer[C]
}

// Registry holds named theme configurations, the active theme and the
// observers to notify when either changes.
//
// Observers run synchronously on the goroutine that caused the mutation and
// the lock is never held while they run, so an observer may call back into
// the registry.
type Registry[C any] struct {
	mu        sync.RWMutex
	themes    map[string]C
	order     []string
	active    string
	observers []subscription[C]
	nextID    uint64

	report Reporter[C]
	warnf  func(format string, args ...any)
}

// NewRegistry returns a registry holding one theme, which is active.
func NewRegistry[C any](defaultName string, defaultConfig C, opts ...Option[C]) *Registry[C] {
	r := &Registry[C]{
		themes: map[string]C{defaultName: defaultConfig},
		order:  []string{defaultName},
		active: defaultName,
		report: defaultReporter[C],
		warnf:  debug.Warnf,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds or replaces a theme. Replacing never changes which theme is
// active, and the theme keeps its original position in Names.
func (r *Registry[C]) Register(name string, config C) {
	r.mu.Lock()
	if _, exists := r.themes[name]; !exists {
		r.order = append(r.order, name)
	}
	r.themes[name] = config
	r.mu.Unlock()

	r.notify(Event[C]{Kind: ThemeAdded, Name: name, Config: config})
}

// SwitchTo makes name the active theme. It returns false, and changes
// nothing, if name was never registered.
func (r *Registry[C]) SwitchTo(name string) bool {
	r.mu.Lock()
	config, ok := r.themes[name]
	if !ok {
		r.mu.Unlock()
		r.warnf("theme %q not found", name)
		return false
	}
	previous := r.active
	r.active = name
	r.mu.Unlock()

	r.notify(Event[C]{Kind: ThemeChanged, Name: name, Previous: previous, Config: config})
	return true
}

// Use is SwitchTo for callers that treat a missing theme as an error.
func (r *Registry[C]) Use(name string) error {
	if r.SwitchTo(name) {
		return nil
	}
	return apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("theme %q not found", name), nil)
}

// Cycle switches to the next (or previous) theme in registration order,
// wrapping at either end, and returns the new active name.
func (r *Registry[C]) Cycle(forward bool) string {
	r.mu.RLock()
	names := r.order
	idx := 0
	for i, name := range names {
		if name == r.active {
			idx = i
			break
		}
	}
	step := 1
	if !forward {
		step = len(names) - 1
	}
	next := names[(idx+step)%len(names)]
	r.mu.RUnlock()

	r.SwitchTo(next)
	return next
}

// Subscribe appends fn to the observer list. The returned func removes this
// subscription only; subscribing the same func twice yields two independent
// subscriptions. Calling the returned func again does nothing.
func (r *Registry[C]) Subscribe(fn Observer[C]) (unsubscribe func()) {
	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.observers = append(r.observers, subscription[C]{id: id, fn: fn})
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { r.remove(id) })
	}
}

func (r *Registry[C]) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, sub := range r.observers {
		if sub.id == id {
			r.observers = append(r.observers[:i:i], r.observers[i+1:]...)
			return
		}
	}
}

// Lookup returns the configuration registered under name.
func (r *Registry[C]) Lookup(name string) (C, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	config, ok := r.themes[name]
	return config, ok
}

// Active returns the active theme's name and configuration.
func (r *Registry[C]) Active() (string, C) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active, r.themes[r.active]
}

// ActiveName returns the name of the active theme.
func (r *Registry[C]) ActiveName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// Names lists registered themes in the order they were first registered.
func (r *Registry[C]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Len returns the number of registered themes.
func (r *Registry[C]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// notify delivers ev to the observers subscribed when it starts.
func (r *Registry[C]) notify(ev Event[C]) {
	r.mu.RLock()
	snapshot := append([]subscription[C](nil), r.observers...)
	r.mu.RUnlock()

	for _, sub := range snapshot {
		if err := deliver(sub.fn, ev); err != nil {
			r.report(ev, err)
		}
	}
}

func deliver[C any](fn Observer[C], ev Event[C]) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = apperrors.New(apperrors.CodeObserverFailed,
				fmt.Sprintf("observer panicked on %s %q: %v", ev.Kind, ev.Name, rec), nil)
		}
	}()
	if err := fn(ev); err != nil {
		return apperrors.New(apperrors.CodeObserverFailed,
			fmt.Sprintf("observer failed on %s %q: %v", ev.Kind, ev.Name, err), err)
	}
	return nil
}

func defaultReporter[C any](ev Event[C], err error) {
	debug.Logf("theme: %s name=%q previous=%q: %v", ev.Kind, ev.Name, ev.Previous, err)
}
