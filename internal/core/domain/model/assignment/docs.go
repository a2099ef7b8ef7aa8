// Package assignment models one hanger's routed unit of work: the ordered
// fabrication steps a crew completes, the lifecycle
//
//	Queued -> InProgress -> (Paused <-> InProgress) -> QA -> Done
//
// and the queue order shop terminals display.
//
// Step completion is decoupled from the lifecycle: completing a step never
// moves the assignment, and Finish only checks that every step is complete.
package assignment
