// Package server is the invocation boundary: it receives named
// operations with loosely-typed argument bags over HTTP, decodes them
// into the typed requests of the tools package, and returns the uniform
// result envelope.
//
// The dispatcher is the only place where the loose argument bag exists;
// everything behind it is typed. Each invocation is traced as one span
// and counted in the invocation metrics, labelled by tool and envelope
// status.
package server
