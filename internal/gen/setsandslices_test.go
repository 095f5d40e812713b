//    OCRTopics
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSet(t *testing.T) {
	s := ToSet([]string{"a", "b", "a"})
	assert.Len(t, s, 2)
	assert.Contains(t, s, "a")
	assert.Contains(t, s, "b")
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"fox": 1, "calm": 2, "away": 3}
	assert.Equal(t, []string{"away", "calm", "fox"}, SortedKeys(m))
}

func TestFirstN(t *testing.T) {
	sl := []int{1, 2, 3, 4}
	assert.Equal(t, []int{1, 2}, FirstN(sl, 2))
	assert.Equal(t, sl, FirstN(sl, 10))
	assert.Equal(t, sl, FirstN(sl, -1))
	assert.Empty(t, FirstN(sl, 0))
}

func TestTopNIndices(t *testing.T) {
	vals := []float64{0.1, 0.5, 0.3, 0.5, 0.0}
	assert.Equal(t, []int{1, 3, 2}, TopNIndices(vals, 3))
	assert.Equal(t, []int{1, 3, 2, 0, 4}, TopNIndices(vals, 99))
	assert.Equal(t, []int{0, 1}, TopNIndices([]int{4, 4, 2}, 2))
}
