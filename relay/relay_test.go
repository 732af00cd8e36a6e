package relay_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relaypad/codes"
	"github.com/katalvlaran/relaypad/keypad"
	"github.com/katalvlaran/relaypad/relay"
)

// exampleCodes is the canonical five-code batch.
var exampleCodes = []codes.Code{"029A", "980A", "179A", "456A", "379A"}

// TestSum_Canonical pins the end-to-end totals at the default depths.
func TestSum_Canonical(t *testing.T) {
	totals, err := relay.Sum(exampleCodes, relay.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 126384, totals.Shallow)
	require.Equal(t, 154115708116294, totals.Deep)
}

// TestSum_Parallel verifies the worker pool reproduces the sequential
// totals over one shared engine.
func TestSum_Parallel(t *testing.T) {
	opts := relay.DefaultOptions()
	opts.Workers = 4
	totals, err := relay.Sum(exampleCodes, opts)
	require.NoError(t, err)
	require.Equal(t, 126384, totals.Shallow)
	require.Equal(t, 154115708116294, totals.Deep)
}

// TestSum_Empty: an empty batch yields zero totals.
func TestSum_Empty(t *testing.T) {
	totals, err := relay.Sum(nil, relay.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, relay.Totals{}, totals)
}

// TestSum_DepthZeroEqualsLengths: at depth 0 each code costs its length.
func TestSum_DepthZeroEqualsLengths(t *testing.T) {
	opts := relay.Options{ShallowDepth: 0, DeepDepth: 0, Workers: 1}
	totals, err := relay.Sum([]codes.Code{"029A"}, opts)
	require.NoError(t, err)
	require.Equal(t, 4*29, totals.Shallow)
	require.Equal(t, totals.Shallow, totals.Deep)
}

// TestSum_OptionViolation rejects negative depths and worker counts; a zero
// worker count falls back to sequential.
func TestSum_OptionViolation(t *testing.T) {
	opts := relay.DefaultOptions()
	opts.ShallowDepth = -1
	_, err := relay.Sum(exampleCodes, opts)
	require.ErrorIs(t, err, relay.ErrOptionViolation)

	opts = relay.DefaultOptions()
	opts.Workers = -2
	_, err = relay.Sum(exampleCodes, opts)
	require.ErrorIs(t, err, relay.ErrOptionViolation)

	opts = relay.DefaultOptions()
	opts.Workers = 0
	totals, err := relay.Sum([]codes.Code{"029A"}, opts)
	require.NoError(t, err)
	require.NotZero(t, totals.Shallow)
}

// TestSum_BadCode: a code fabricated outside codes.Parse must abort the
// batch loudly, never contribute a silent wrong number.
func TestSum_BadCode(t *testing.T) {
	bad := []codes.Code{"029A", codes.Code("0<9A")}
	_, err := relay.Sum(bad, relay.DefaultOptions())
	require.ErrorIs(t, err, keypad.ErrUnknownButton)
	require.Contains(t, err.Error(), `"0<9A"`)
}
