package fmtutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	n, err := ParseSize("10MB")
	require.NoError(t, err)
	assert.Equal(t, int64(10_000_000), n)
}

func TestParseSize_Suffixes(t *testing.T) {
	cases := map[string]int64{
		"1B":   1,
		"2KB":  2_000,
		"3GB":  3_000_000_000,
		"1TB":  1_000_000_000_000,
	}
	for in, want := range cases {
		n, err := ParseSize(in)
		require.NoError(t, err)
		assert.Equal(t, want, n, in)
	}
}

func TestHumanizeSize(t *testing.T) {
	assert.Equal(t, "1.0KiB", HumanizeSize(1024))
	assert.Equal(t, "500B", HumanizeSize(500))
	assert.Equal(t, "1.0MiB", HumanizeSize(1024*1024))
}

func TestHumanizeDuration(t *testing.T) {
	assert.Equal(t, "0:59", HumanizeDuration(59))
	assert.Equal(t, "1:01:01", HumanizeDuration(3661))
}
