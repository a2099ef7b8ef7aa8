// Package kernel holds the value objects shared by every aggregate of the
// shop-floor model.
//
// The package includes:
//   - Code: identifier of catalog-supplied entities (hangers, packages, teams, SKUs, projects)
//   - UUID: identifier of engine-generated records (assignments, exceptions, pick lists, audit records)
//   - Quantity: non-negative decimal amount used for material, hours and cost
//   - Location: level/grid/zone/elevation address inside a building
//
// All values are immutable. Zero values fail Validate and must be obtained
// through the constructors.
package kernel
