package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex() *Index[int] {
	return NewIndex(map[string]int{
		"cobblestone": 4,
		"cobble":      4,
		"stone":       1,
		"stonebrick":  98,
		"glass":       20,
		"glasspane":   102,
	})
}

func TestFold(t *testing.T) {
	assert.Equal(t, "stone", Fold("  STONE "))
	assert.Equal(t, "stone brick", Fold("Stone Brick"))
}

func TestSqueeze(t *testing.T) {
	assert.Equal(t, "stonebrick", Squeeze("Stone_Brick"))
	assert.Equal(t, "glasspane", Squeeze(" glass-pane. "))
}

func TestLookupExact(t *testing.T) {
	ix := newTestIndex()

	v, ok := ix.Lookup("COBBLE", false)
	require.True(t, ok)
	assert.Equal(t, 4, v)

	_, ok = ix.Lookup("stone brick", false)
	assert.False(t, ok, "точный поиск не должен убирать пробелы")

	_, ok = ix.Lookup("", false)
	assert.False(t, ok)
}

func TestLookupFuzzy(t *testing.T) {
	ix := newTestIndex()

	tests := []struct {
		name  string
		input string
		want  int
		found bool
	}{
		{"пробелы и регистр", "Stone Brick", 98, true},
		{"подчёркивание", "glass_pane", 102, true},
		{"одна опечатка", "glas", 20, true},
		{"лишняя буква", "stonee", 1, true},
		{"две опечатки", "stn", 0, false},
		{"другая первая буква", "ztone", 0, false},
		{"только пунктуация", "__ --", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := ix.Lookup(tt.input, true)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, v)
			}
		})
	}
}

func TestLookupPrefersExact(t *testing.T) {
	ix := NewIndex(map[string]int{
		"stone":  1,
		"stones": 2,
	})

	v, ok := ix.Lookup("stones", true)
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestLookupFuzzyTieIsDeterministic(t *testing.T) {
	ix := NewIndex(map[string]int{
		"glass": 1,
		"grass": 2,
	})

	for i := 0; i < 20; i++ {
		v, ok := ix.Lookup("gass", true)
		require.True(t, ok)
		assert.Equal(t, 1, v, "при равном расстоянии выбирается первый ключ по алфавиту")
	}
}

func TestKeysSorted(t *testing.T) {
	ix := newTestIndex()
	keys := ix.Keys()
	assert.Equal(t, 6, ix.Len())
	assert.IsIncreasing(t, keys)
}
