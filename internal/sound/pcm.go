package sound

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

// BytesPerSample is the size of one stereo 16-bit frame.
const BytesPerSample = 4

const renderChunk = 512

// Render drains up to maxSamples stereo frames from s into 16-bit
// little-endian PCM. Samples outside [-1, 1] are clipped.
func Render(s beep.Streamer, maxSamples int) []byte {
	out := make([]byte, 0, maxSamples*BytesPerSample)
	buf := make([][2]float64, renderChunk)
	for remaining := maxSamples; remaining > 0; {
		n, ok := s.Stream(buf[:min(renderChunk, remaining)])
		for _, smp := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(smp[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(smp[1])))
		}
		remaining -= n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
