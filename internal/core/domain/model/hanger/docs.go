// Package hanger models a single prefabricated support assembly: its type,
// location, bill of material, labor/cost tracking and shop status.
//
// Key business rules:
//   - A hanger is supplied by the catalog and never deleted; an import with a
//     higher revision supersedes it, an equal or lower revision is ignored
//   - Status can be overwritten freely (QA rework moves hangers backward) unless
//     a TransitionValidator is installed
//   - Actual labor hours and material cost only accrue, they never decrease
//   - BOM quantities keep the raw catalog text and are parsed leniently
package hanger
