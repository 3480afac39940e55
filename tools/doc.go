// Package tools implements the administrative operation handlers exposed
// at the invocation boundary.
//
// Each operation has a typed request struct and a handler method on
// [Service]. Handlers validate their request locally (bounds, required
// fields, preconditions) before any backend contact, delegate to the
// [Backend] adapter, and shape every outcome, success or failure, into
// the uniform [Result] envelope. No handler lets an error escape as
// anything else.
//
// Validation and precondition failures carry discriminated kinds from the
// qdrant package, so callers branch on Result.Kind instead of parsing
// message text.
package tools
