// This file is part of Snescore.
//
// Snescore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Snescore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Snescore.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// on program end. It is therefore probably only suitable for testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/hardware/clocks"
	"github.com/snescore/snescore/hardware/output"
	"github.com/snescore/snescore/logger"
)

// the WAV file is stereo 16 bit PCM.
const (
	numChannels = 2
	bitDepth    = 16
	formatPCM   = 1
)

// WavWriter consumes the samples in an audio ring and writes them to a WAV
// file when EndMixing() is called.
type WavWriter struct {
	filename string
	ring     *output.AudioRing

	// interleaved left and right samples
	buffer []int

	scratch []output.Sample
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, ring *output.AudioRing) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		ring:     ring,
		buffer:   make([]int, 0),
		scratch:  make([]output.Sample, ring.Cap()),
	}

	return aw, nil
}

// Drain moves all waiting samples from the ring into the buffer. It must be
// called often enough that the ring does not fill. Only one goroutine may
// call Drain().
func (aw *WavWriter) Drain() {
	for {
		n := aw.ring.Pop(aw.scratch)
		if n == 0 {
			return
		}
		for _, s := range aw.scratch[:n] {
			aw.buffer = append(aw.buffer, int(s.Left), int(s.Right))
		}
	}
}

// Len returns the number of stereo samples in the buffer.
func (aw *WavWriter) Len() int {
	return len(aw.buffer) / numChannels
}

// EndMixing drains the ring a final time and writes the buffer to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	aw.Drain()

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, clocks.AudioRate, bitDepth, numChannels, formatPCM)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  clocks.AudioRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	// Close() writes the header and must happen before the file is closed
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
