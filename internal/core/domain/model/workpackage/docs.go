// Package workpackage provides the Package aggregate: a level/zone grouping
// of hangers that is approved, kitted, routed and shipped as a unit.
//
// The name avoids the Go keyword "package". Status changes are unconditional
// by default; a TransitionValidator built with NewGraphValidator restricts
// them to an allowed edge set. Rejected is only reachable from Submitted or
// Planned and always carries a reason.
package workpackage
