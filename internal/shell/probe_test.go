package shell

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketizePeaks_ResamplesToRequestedBucketCount(t *testing.T) {
	raw := []byte("lavfi.astats.Overall.Peak_level=-6.000000\n" +
		"lavfi.astats.Overall.Peak_level=-30.000000\n" +
		"lavfi.astats.Overall.Peak_level=-60.000000\n")
	got := bucketizePeaks(raw, 3)
	assert.Len(t, got, 3)
	assert.Greater(t, got[0], got[2], "louder peak should bucketize to a larger byte value")
}

func TestBucketizePeaks_ClampsOutOfRangeDecibels(t *testing.T) {
	raw := []byte("lavfi.astats.Overall.Peak_level=5.000000\n" +
		"lavfi.astats.Overall.Peak_level=-200.000000\n")
	got := bucketizePeaks(raw, 2)
	assert.Equal(t, byte(255), got[0])
	assert.Equal(t, byte(0), got[1])
}

func TestBucketizePeaks_NoMatchesReturnsNil(t *testing.T) {
	got := bucketizePeaks([]byte("nothing relevant here\n"), 10)
	assert.Nil(t, got)
}

func TestProbeDuration_MissingBinaryReturnsZero(t *testing.T) {
	got := ProbeDuration(context.Background(), "/nonexistent/path/to/file.ogg")
	assert.Equal(t, int32(0), got)
}
