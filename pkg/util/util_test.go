package util

import (
	"math/rand"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomText(t *testing.T) {
	for _, size := range []int{0, 1, 6, 10000} {
		text, err := RandomText(size)
		require.NoError(t, err)
		require.NotNil(t, text)
		assert.Len(t, text, size)
		for _, c := range text {
			assert.True(t, c >= 'A' && c <= 'Z', "unexpected byte %q", c)
		}
	}
}

func TestRandomText_NegativeSize(t *testing.T) {
	text, err := RandomText(-5)
	assert.Nil(t, text)
	assert.True(t, errors.Is(err, ErrNegativeSize))
}

func TestRandomTextFrom_Reproducible(t *testing.T) {
	a, err := RandomTextFrom(rand.New(rand.NewSource(42)).Int63, 256)
	require.NoError(t, err)
	b, err := RandomTextFrom(rand.New(rand.NewSource(42)).Int63, 256)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRepetitiveText(t *testing.T) {
	for _, size := range []int{0, 6, 10000} {
		text, err := RepetitiveText(size)
		require.NoError(t, err)
		require.NotNil(t, text)
		assert.Len(t, text, size)
		for _, c := range text {
			require.Equal(t, byte(RepeatByte), c)
		}
	}

	text, err := RepetitiveText(-5)
	assert.Nil(t, text)
	assert.True(t, errors.Is(err, ErrNegativeSize))
}

func TestRandString(t *testing.T) {
	s := RandString(64)
	assert.Len(t, s, 64)
	for _, c := range s {
		assert.Contains(t, letterBytes, string(c))
	}
	assert.Len(t, RandBytes(17), 17)
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "0.001250s", FormatTime(1250*time.Microsecond))
	assert.Equal(t, "2.000000s", FormatTime(2*time.Second))
}
