// Package progress keeps counters for long simulations so that callers can
// observe how far a run has advanced. A tracker travels in the context; code
// that receives the context updates it with UpdateCtx and never needs a global
// registry.
package progress
