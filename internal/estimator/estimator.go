// Package estimator provides the decay-based per-key frequency estimators:
// forward decay, backward decay and sliding-window counting. Each
// implementation registers itself with the factory under its type name.
//
// Estimators share the contract of model.Estimator: single sequential owner,
// zero values for unseen keys, top-k always recomputed from full current
// state.
package estimator
