// Package services holds domain logic that spans aggregates and does not
// belong to any single one of them.
//
// The package includes:
//   - DemandCalculator: BOM expansion into per-SKU demand and the join against stock
//   - AssignmentGenerator: one assignment per hanger of a routable package, idempotently
//   - CheckHangerExclusivity: the rule that a hanger belongs to at most one open package
package services
