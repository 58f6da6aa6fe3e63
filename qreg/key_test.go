package qreg_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/qsim/qreg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestZeroKey_Width verifies the all-zero key has the requested width.
func TestZeroKey_Width(t *testing.T) {
	k := qreg.ZeroKey(4)
	assert.Equal(t, qreg.Key("0000"), k, "ZeroKey(4) must be four zero bits")
	assert.Equal(t, 4, k.Len(), "width must match the request")
}

// TestZeroKey_BadWidthPanics verifies widths below one are rejected.
func TestZeroKey_BadWidthPanics(t *testing.T) {
	assert.Panics(t, func() { qreg.ZeroKey(0) }, "width 0 must panic")
	assert.Panics(t, func() { qreg.ZeroKey(-3) }, "negative width must panic")
}

// TestParseKey_Valid accepts well-formed bitstrings of any width.
func TestParseKey_Valid(t *testing.T) {
	k, err := qreg.ParseKey("0110")
	require.NoError(t, err)
	assert.Equal(t, qreg.Key("0110"), k)
	assert.Equal(t, "0110", k.String())
}

// TestParseKey_Malformed rejects empty strings and foreign bytes.
func TestParseKey_Malformed(t *testing.T) {
	_, err := qreg.ParseKey("")
	assert.ErrorIs(t, err, qreg.ErrMalformedKey, "empty key must error")

	_, err = qreg.ParseKey("01x0")
	assert.ErrorIs(t, err, qreg.ErrMalformedKey, "non-binary byte must error")
}

// TestKey_Bit reads individual bits without mutating the key.
func TestKey_Bit(t *testing.T) {
	k := qreg.Key("0101")
	assert.Equal(t, 0, k.Bit(0))
	assert.Equal(t, 1, k.Bit(1))
	assert.Equal(t, 0, k.Bit(2))
	assert.Equal(t, 1, k.Bit(3))
}

// TestKey_FlipReturnsFreshValue verifies Flip inverts one bit and leaves the
// receiver untouched.
func TestKey_FlipReturnsFreshValue(t *testing.T) {
	k := qreg.Key("000")
	f := k.Flip(1)
	assert.Equal(t, qreg.Key("010"), f, "bit 1 must be inverted")
	assert.Equal(t, qreg.Key("000"), k, "receiver must stay unchanged")
	assert.Equal(t, qreg.Key("000"), f.Flip(1), "flipping twice restores the original")
}

// TestKey_With sets a bit to an explicit value and is a no-op when the bit
// already holds it.
func TestKey_With(t *testing.T) {
	k := qreg.Key("010")
	assert.Equal(t, qreg.Key("011"), k.With(2, 1))
	assert.Equal(t, qreg.Key("000"), k.With(1, 0))
	assert.Equal(t, k, k.With(1, 1), "setting a bit to its current value changes nothing")
}

// TestKey_WithBadBitPanics rejects bit values outside {0, 1}.
func TestKey_WithBadBitPanics(t *testing.T) {
	assert.Panics(t, func() { qreg.Key("0").With(0, 2) })
	assert.Panics(t, func() { qreg.Key("0").With(0, -1) })
}

// TestKey_IndexPanicsWrapSentinel verifies out-of-range bit positions panic
// with an error matching ErrQubitOutOfRange.
func TestKey_IndexPanicsWrapSentinel(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok, "panic value must be an error")
		assert.True(t, errors.Is(err, qreg.ErrQubitOutOfRange))
	}()
	qreg.Key("01").Bit(2)
}
