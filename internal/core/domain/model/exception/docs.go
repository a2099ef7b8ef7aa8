// Package exception tracks out-of-band shop issues (QA failures, material
// shortages, misscans) raised against a package, hanger or assignment.
//
// Lifecycle: Open -> InProgress (assigned) -> Resolved (with notes) -> Closed.
package exception
