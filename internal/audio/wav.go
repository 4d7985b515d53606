package audio

import (
	"bytes"
	"encoding/binary"
	"time"
)

const (
	bytesPerSample = 2 // S16
	wavHeaderSize  = 44
)

// EncodeWAV wraps little-endian S16 PCM in a canonical 44-byte WAV header.
func EncodeWAV(pcm []byte, sampleRate, channels int) []byte {
	var buf bytes.Buffer
	buf.Grow(wavHeaderSize + len(pcm))

	blockAlign := channels * bytesPerSample
	le := binary.LittleEndian

	buf.WriteString("RIFF")
	_ = binary.Write(&buf, le, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(&buf, le, uint32(16))
	_ = binary.Write(&buf, le, uint16(1)) // PCM
	_ = binary.Write(&buf, le, uint16(channels))
	_ = binary.Write(&buf, le, uint32(sampleRate))
	_ = binary.Write(&buf, le, uint32(sampleRate*blockAlign))
	_ = binary.Write(&buf, le, uint16(blockAlign))
	_ = binary.Write(&buf, le, uint16(8*bytesPerSample))

	buf.WriteString("data")
	_ = binary.Write(&buf, le, uint32(len(pcm)))
	buf.Write(pcm)
	return buf.Bytes()
}

// PCMDuration returns the playback length of n bytes of S16 PCM.
func PCMDuration(n, sampleRate, channels int) time.Duration {
	frame := channels * bytesPerSample
	if sampleRate <= 0 || frame <= 0 {
		return 0
	}
	return time.Duration(n/frame) * time.Second / time.Duration(sampleRate)
}
