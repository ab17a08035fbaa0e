// Package chain runs an ordered list of handlers, passing control from one to
// the next through explicit continuations.
//
// A Chain is built for a single request and never shared:
//
//	c := chain.New(globals...)
//	c.Append(route.Handlers()...)
//	c.Execute(req, res)
//
// Handler i receives a continuation that runs handler i+1. Calling the
// continuation of the last handler does nothing, and a handler that never
// calls its continuation stops the chain. Each continuation advances the
// chain at most once; later calls are ignored.
package chain
