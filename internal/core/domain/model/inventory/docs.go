// Package inventory models stock on hand per SKU, the pick lists produced by
// kitting, and the demand and shortfall lines derived from package BOMs.
//
// On-hand never drops below zero: Reserve takes at most what is available and
// reports the remainder as backordered.
package inventory
