// Package chain provides [Chain], an immutable, method-chaining wrapper over
// the helpers in packages arr and num, in the spirit of lodash's _.chain.
//
// # Overview
//
//	out := chain.Of(1, 2, 3, 4, 5, 6).
//	    Intersection([]int{2, 3, 5, 6, 7}).
//	    DropRight().
//	    Value() // → [2 3 5]
//
// All transforming methods return a new Chain. [Chain.Value] unwraps a
// copy of the items.
//
// # Type-changing operations
//
// Methods cannot introduce type parameters, so [Map], [Sum], [Mean] and
// [Round] are package-level functions:
//
//	prices := chain.Of(1.005, 4.006)
//	chain.Round(prices, 2).Value() // → [1 4.01]
//
// # Mixins
//
// Register named functions at runtime with [RegisterMixin] or
// [RegisterMixins] and call them through [Chain.Mixin], like lodash's
// _.mixin. A separate [Registry] keeps a set of extensions private to its
// owner; call them with [Chain.MixinFrom].
//
// # Export and debugging
//
// [Chain.ToJSON] and [Chain.ToYAML] serialise the items. [Chain.Log] emits
// the current items through a *zap.Logger at debug level without breaking
// the chain:
//
//	chain.Of(3, 1, 2).Log(logger, "input").Drop().Log(logger, "dropped")
package chain
