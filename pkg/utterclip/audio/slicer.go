// Package audio slices spans out of WAV files and probes their parameters.
package audio

import (
	"fmt"
	"math"
	"os"
	"time"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// RangeError reports a slice window that falls outside the source waveform's
// valid frame range. It is the only error class the extraction fallback
// recovers from.
type RangeError struct {
	Path        string
	StartFrame  int
	EndFrame    int
	TotalFrames int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("slice window [%d, %d) outside valid frame range [0, %d] of %s",
		e.StartFrame, e.EndFrame, e.TotalFrames, e.Path)
}

// Info describes a WAV file's format parameters and length.
type Info struct {
	SampleRate  int
	NumChannels int
	BitDepth    int
	AudioFormat int
	Frames      int
	Duration    time.Duration
}

func decode(path string) (*gaudio.IntBuffer, *Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if buf.Format == nil || buf.Format.NumChannels == 0 {
		return nil, nil, fmt.Errorf("decoding %s: missing format information", path)
	}

	frames := len(buf.Data) / buf.Format.NumChannels
	info := &Info{
		SampleRate:  buf.Format.SampleRate,
		NumChannels: buf.Format.NumChannels,
		BitDepth:    int(dec.BitDepth),
		AudioFormat: int(dec.WavAudioFormat),
		Frames:      frames,
	}
	if info.SampleRate > 0 {
		info.Duration = time.Duration(float64(frames) / float64(info.SampleRate) * float64(time.Second))
	}
	return buf, info, nil
}

// Probe reads a WAV file's format parameters without keeping the samples.
func Probe(path string) (Info, error) {
	_, info, err := decode(path)
	if err != nil {
		return Info{}, err
	}
	return *info, nil
}

// Slice extracts [startSec, endSec) from srcPath into a new WAV at dstPath,
// preserving the source's sample rate, channel count, bit depth and audio
// format. Frame offsets are the rounded product of time and sample rate.
//
// Returns *RangeError when the window falls outside the source's valid frame
// range. dstPath is created (or overwritten) only after the window validates;
// a failure during encoding may still leave a truncated file behind.
func Slice(srcPath string, startSec, endSec float64, dstPath string) error {
	buf, info, err := decode(srcPath)
	if err != nil {
		return err
	}

	startFrame := int(math.Round(startSec * float64(info.SampleRate)))
	endFrame := int(math.Round(endSec * float64(info.SampleRate)))
	if startFrame < 0 || startFrame > info.Frames || endFrame > info.Frames || endFrame-startFrame <= 0 {
		return &RangeError{
			Path:        srcPath,
			StartFrame:  startFrame,
			EndFrame:    endFrame,
			TotalFrames: info.Frames,
		}
	}

	ch := info.NumChannels
	segment := &gaudio.IntBuffer{
		Format:         buf.Format,
		Data:           buf.Data[startFrame*ch : endFrame*ch],
		SourceBitDepth: info.BitDepth,
	}

	out, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dstPath, err)
	}

	enc := wav.NewEncoder(out, info.SampleRate, info.BitDepth, ch, info.AudioFormat)
	if err := enc.Write(segment); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", dstPath, err)
	}
	if err := enc.Close(); err != nil {
		out.Close()
		return fmt.Errorf("finalizing %s: %w", dstPath, err)
	}
	return out.Close()
}
