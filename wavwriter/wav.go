// This file is part of mdcore.
//
// mdcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mdcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mdcore.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter captures the combined YM2612+PSG sample stream to a
// standard stereo WAV file. Audio is buffered in memory in its entirety and
// written to disk at the end of a run, so this is a test tool for headless
// comparison runs, not a real-time audio device.
package wavwriter

import (
	"os"

	"github.com/mdcore/mdcore/curated"
	"github.com/mdcore/mdcore/logger"
	"github.com/youpy/go-wav"
)

// SampleFreq is the rate, in Hz, samples are expected to arrive at via
// AddSample. The YM2612/PSG mixer in hardware/console drives this.
const SampleFreq = 53267

// WavWriter accumulates stereo samples and writes them to a WAV file on
// EndCapture.
type WavWriter struct {
	filename string
	buffer   []wav.Sample
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) *WavWriter {
	return &WavWriter{
		filename: filename,
		buffer:   make([]wav.Sample, 0),
	}
}

// AddSample appends one stereo sample pair, as returned by combining
// ym2612.YM2612.Sample and psg.PSG.Sample, to the capture buffer.
func (aw *WavWriter) AddSample(left, right int16) {
	w := wav.Sample{}
	w.Values[0] = int(left)
	w.Values[1] = int(right)
	aw.buffer = append(aw.buffer, w)
}

// EndCapture writes every sample accumulated so far to the WAV file named
// at construction.
func (aw *WavWriter) EndCapture() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 2, uint32(SampleFreq), 16)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)
	return enc.WriteSamples(aw.buffer)
}
