package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hmmselect/model"
)

// constModel scores every input with a fixed value.
type constModel float64

func (m constModel) Score(_ [][]float64, _ []int) (float64, error) {
	return float64(m), nil
}

// TestCollection_InsertionOrder verifies that Labels preserves first-insert
// order and that replacement keeps a label's position.
func TestCollection_InsertionOrder(t *testing.T) {
	c := model.NewCollection()
	c.Put("B", constModel(1))
	c.Put("A", constModel(2))
	c.Put("C", constModel(3))
	c.Put("A", constModel(9)) // replace, keep position

	assert.Equal(t, []string{"B", "A", "C"}, c.Labels())
	assert.Equal(t, 3, c.Len())

	m, ok := c.Get("A")
	require.True(t, ok)
	assert.Equal(t, constModel(9), m, "replacement must take effect")
}

// TestCollection_NilModelIgnored verifies that an absent model never enters
// the collection.
func TestCollection_NilModelIgnored(t *testing.T) {
	c := model.NewCollection()
	c.Put("A", nil)

	assert.Zero(t, c.Len())
	_, ok := c.Get("A")
	assert.False(t, ok)
}

// TestCollection_LabelsIsCopy verifies callers cannot reorder the collection
// through the returned slice.
func TestCollection_LabelsIsCopy(t *testing.T) {
	c := model.NewCollection()
	c.Put("A", constModel(1))
	c.Put("B", constModel(2))

	labels := c.Labels()
	labels[0] = "Z"

	assert.Equal(t, []string{"A", "B"}, c.Labels())
}
