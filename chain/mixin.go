package chain

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// MixinFunc is a chain extension. It receives the chain it was invoked on
// and any extra arguments, and returns whatever the extension produces
// (usually another chain).
//
// c is typed as any so one extension can be shared by every Chain[T]; it
// holds a *Chain[T] and should be type-asserted to the element type the
// extension expects.
type MixinFunc func(c any, args ...any) any

// Registry is a named set of chain extensions, the Go form of the object
// that lodash's _.mixin(object, source) copies functions onto. A Registry
// is safe for concurrent use. Package-level helpers operate on a shared
// default registry.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]MixinFunc
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]MixinFunc)}
}

// Mixin copies every function in source into r, replacing extensions of
// the same name, and returns r so calls can be chained.
func (r *Registry) Mixin(source map[string]MixinFunc) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	maps.Copy(r.funcs, source)
	return r
}

// Has reports whether name is registered in r.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.funcs[name]
	return ok
}

// Names returns the registered names in sorted order, like _.functions.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.funcs))
}

// Reset drops every extension in r.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.funcs)
}

// Invoke runs the extension registered as name against c.
// The error wraps [ErrMixinNotFound] when name is unknown.
func (r *Registry) Invoke(name string, c any, args ...any) (any, error) {
	r.mu.RLock()
	fn, ok := r.funcs[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMixinNotFound, name)
	}
	return fn(c, args...), nil
}

var defaultRegistry = NewRegistry()

// RegisterMixins adds every function in source to the default registry,
// mirroring _.mixin(source).
func RegisterMixins(source map[string]MixinFunc) {
	defaultRegistry.Mixin(source)
}

// RegisterMixin adds a single extension to the default registry.
//
//	chain.RegisterMixin("evens", func(c any, _ ...any) any {
//	    return c.(*chain.Chain[int]).Filter(func(n, _ int) bool { return n%2 == 0 })
//	})
//
//	res, _ := chain.Of(1, 2, 3, 4).Mixin("evens") // *Chain[int]{2, 4}
func RegisterMixin(name string, fn MixinFunc) {
	defaultRegistry.Mixin(map[string]MixinFunc{name: fn})
}

// HasMixin reports whether name is in the default registry.
func HasMixin(name string) bool { return defaultRegistry.Has(name) }

// MixinNames lists the default registry's extensions in sorted order.
func MixinNames() []string { return defaultRegistry.Names() }

// FlushMixins empties the default registry.
func FlushMixins() { defaultRegistry.Reset() }

// CallMixin invokes a default-registry extension against c.
func CallMixin(name string, c any, args ...any) (any, error) {
	return defaultRegistry.Invoke(name, c, args...)
}

// Mixin invokes the default-registry extension name with c as its receiver.
func (c *Chain[T]) Mixin(name string, args ...any) (any, error) {
	return defaultRegistry.Invoke(name, c, args...)
}

// MixinFrom is like [Chain.Mixin] but looks name up in r.
func (c *Chain[T]) MixinFrom(r *Registry, name string, args ...any) (any, error) {
	return r.Invoke(name, c, args...)
}
