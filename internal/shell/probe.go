package shell

import (
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/paul-nameless/tg/internal/logger"
)

// ProbeDuration shells out to ffprobe to get a media file's duration in
// whole seconds, matching the original's waveform/duration probing for
// voice messages. A missing/failing ffprobe yields 0 rather than an error,
// since duration is advisory metadata, not required for the send to proceed.
func ProbeDuration(ctx context.Context, path string) int32 {
	out, err := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	).Output()
	if err != nil {
		logger.Debug("shell: ffprobe duration failed", "path", path, "error", err)
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0
	}
	return int32(f)
}

// waveformBuckets is the number of amplitude samples packed into a voice
// note's waveform byte array, matching the original's crude resolution.
const waveformBuckets = 100

// ProbeWaveform shells out to ffmpeg to extract a crude amplitude envelope
// for a voice note, downsampled to waveformBuckets single-byte buckets
// (0-255). Returns nil on any failure; the caller sends without a waveform.
func ProbeWaveform(ctx context.Context, path string) []byte {
	out, err := exec.CommandContext(ctx, "ffmpeg",
		"-i", path,
		"-af", "astats=metadata=1:reset=1,ametadata=print:key=lavfi.astats.Overall.Peak_level:file=-",
		"-f", "null", "-",
	).Output()
	if err != nil {
		logger.Debug("shell: ffmpeg waveform probe failed", "path", path, "error", err)
		return nil
	}
	return bucketizePeaks(out, waveformBuckets)
}

// bucketizePeaks parses "lavfi.astats.Overall.Peak_level=<dB>" lines out of
// ffmpeg's metadata dump and resamples them into n buckets scaled to a byte
// range, clamping dB values below -60 to silence.
func bucketizePeaks(raw []byte, n int) []byte {
	const marker = "lavfi.astats.Overall.Peak_level="
	var peaks []float64
	for _, line := range strings.Split(string(raw), "\n") {
		idx := strings.Index(line, marker)
		if idx < 0 {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(line[idx+len(marker):]), 64)
		if err != nil {
			continue
		}
		peaks = append(peaks, v)
	}
	if len(peaks) == 0 {
		return nil
	}

	buckets := make([]byte, n)
	for i := 0; i < n; i++ {
		srcIdx := i * len(peaks) / n
		db := peaks[srcIdx]
		if db < -60 {
			db = -60
		}
		if db > 0 {
			db = 0
		}
		buckets[i] = byte((db + 60) / 60 * 255)
	}
	return buckets
}
