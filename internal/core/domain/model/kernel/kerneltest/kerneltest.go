// Package kerneltest builds kernel values from literals in tests. Its helpers
// panic on invalid input and are not meant for production code.
package kerneltest

import "hangerflow/internal/core/domain/model/kernel"

// Code is kernel.NewCode for a literal identifier.
func Code(s string) kernel.Code {
	c, err := kernel.NewCode(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Quantity parses a literal strictly.
func Quantity(s string) kernel.Quantity {
	q, err := kernel.ParseQuantityStrict(s)
	if err != nil {
		panic(err)
	}
	return q
}
