package kerneltest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hangerflow/internal/core/domain/model/kernel"
	"hangerflow/internal/core/domain/model/kernel/kerneltest"
)

func TestCode(t *testing.T) {
	assert.Equal(t, kernel.Code("H-1"), kerneltest.Code(" H-1 "))
	assert.Panics(t, func() { kerneltest.Code("  ") })
}

func TestQuantity(t *testing.T) {
	assert.True(t, kerneltest.Quantity("2.50").Equal(kernel.ParseQuantity("2.5")))
	assert.Panics(t, func() { kerneltest.Quantity("-1") })
	assert.Panics(t, func() { kerneltest.Quantity("lots") })
}
