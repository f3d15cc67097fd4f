package util

import (
	"bytes"
	"math/rand"

	"github.com/pkg/errors"
)

// ErrNegativeSize is returned by the text generators for a size below zero.
var ErrNegativeSize = errors.New("size is negative")

const (
	letterBytes   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	upperBytes    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	letterIdxBits = 6                    // 6 bits to represent a letter index
	letterIdxMask = 1<<letterIdxBits - 1 // All 1-bits, as many as letterIdxBits
	letterIdxMax  = 63 / letterIdxBits   // # of letter indices fitting in 63 bits
)

// RepeatByte is the only character RepetitiveText produces.
const RepeatByte = 'A'

// RandomText returns size characters drawn uniformly from A-Z.
func RandomText(size int) ([]byte, error) {
	return RandomTextFrom(rand.Int63, size)
}

// RandomTextFrom is RandomText with an explicit source of random bits, so
// callers can reproduce a text from a seed.
func RandomTextFrom(int63 func() int64, size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.Wrapf(ErrNegativeSize, "random text of size %d", size)
	}
	return randLetters(int63, size, upperBytes), nil
}

// RepetitiveText returns size copies of RepeatByte. Searching it for
// "AAAAB" is the worst case for the naive scan.
func RepetitiveText(size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.Wrapf(ErrNegativeSize, "repetitive text of size %d", size)
	}
	return bytes.Repeat([]byte{RepeatByte}, size), nil
}

func RandString(n int) string {
	return string(randLetters(rand.Int63, n, letterBytes))
}

func RandBytes(n int) []byte {
	return randLetters(rand.Int63, n, letterBytes)
}

// randLetters picks n bytes from letters, which must hold at most
// 1<<letterIdxBits entries.
func randLetters(int63 func() int64, n int, letters string) []byte {
	bb := bytes.Buffer{}
	bb.Grow(n)
	// A src.Int63() generates 63 random bits, enough for letterIdxMax characters!
	for i, cache, remain := n-1, int63(), letterIdxMax; i >= 0; {
		if remain == 0 {
			cache, remain = int63(), letterIdxMax
		}
		if idx := int(cache & letterIdxMask); idx < len(letters) {
			bb.WriteByte(letters[idx])
			i--
		}
		cache >>= letterIdxBits
		remain--
	}
	if bb.Len() == 0 {
		return []byte{}
	}
	return bb.Bytes()
}
