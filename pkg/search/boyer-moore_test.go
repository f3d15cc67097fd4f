package search

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottcagno/stringsearch/pkg/util"
)

// bruteGoodSuffix computes the strong good-suffix shifts straight from their
// definition, one mismatch position at a time.
func bruteGoodSuffix(p []byte) []int {
	m := len(p)
	table := make([]int, m)
	for j := m - 1; j >= 0; j-- {
		if j == m-1 {
			table[j] = 1
			continue
		}
		suffix := p[j+1:]
		l := len(suffix)
		shift := 0
		// rightmost reoccurrence not preceded by p[j]
		for start := j; start >= 0; start-- {
			if bytes.Equal(p[start:start+l], suffix) && (start == 0 || p[start-1] != p[j]) {
				shift = (m - 1) - (start + l - 1)
				break
			}
		}
		// otherwise the longest border shorter than the suffix
		if shift == 0 {
			for q := 1; q < m; q++ {
				if m-q < l && bytes.Equal(p[q:], p[:m-q]) {
					shift = q
					break
				}
			}
		}
		if shift == 0 {
			shift = m
		}
		table[j] = shift
	}
	return table
}

func TestBadCharacterTable(t *testing.T) {
	table := BadCharacterTable([]byte("abracadabra"))
	assert.Equal(t, 10, table['a'])
	assert.Equal(t, 8, table['b'])
	assert.Equal(t, 9, table['r'])
	assert.Equal(t, 4, table['c'])
	assert.Equal(t, 6, table['d'])
	assert.Equal(t, -1, table['z'])
	assert.Equal(t, -1, table[0])
	assert.Equal(t, -1, table[255])
}

func TestGoodSuffixTable(t *testing.T) {
	tests := []struct {
		pattern string
		want    []int
	}{
		{"A", []int{1}},
		{"ABA", []int{2, 2, 1}},
		{"AAAA", []int{1, 2, 3, 1}},
		{"ABCD", []int{4, 4, 4, 1}},
		{"ANPANMAN", []int{6, 6, 6, 6, 6, 3, 8, 1}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GoodSuffixTable([]byte(tt.pattern)), tt.pattern)
	}
	assert.Nil(t, GoodSuffixTable(nil))
}

func TestGoodSuffixTable_MatchesDefinition(t *testing.T) {
	patterns := append(words("ab", 8), words("abc", 6)...)
	patterns = append(patterns, "abracadabra", "GCAGAGAG", "ANPANMAN", "AAAAB", "BAAAA")
	for _, w := range patterns {
		p := []byte(w)
		got := GoodSuffixTable(p)
		require.Equal(t, bruteGoodSuffix(p), got, w)
		for _, shift := range got {
			require.GreaterOrEqual(t, shift, 1, w)
			require.LessOrEqual(t, shift, len(p), w)
		}
	}
}

func TestSuffixes(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4}, suffixes("AAAA"))
	assert.Equal(t, []int{1, 0, 3}, suffixes("ABA"))
	assert.Equal(t, []int{0, 2, 0, 0, 2, 0, 0, 8}, suffixes("ANPANMAN"))
}

func TestBoyerMoore_SkipsText(t *testing.T) {
	text, err := util.RepetitiveText(10000)
	require.NoError(t, err)

	// every alignment fails on its last character and the bad-character
	// rule jumps the whole pattern
	res, err := NewBoyerMoore().Match(text, []byte("BBBBB"))
	require.NoError(t, err)
	assert.Empty(t, res.Positions)
	assert.Equal(t, uint64(10000/5), res.Comparisons)
}
