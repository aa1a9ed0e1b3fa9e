package adts

import "fmt"

// Header byte lengths. The 12-bit sync word plus the fixed and variable
// header fields occupy 7 bytes; a 16-bit CRC extends that to 9 when the
// protection bit is clear.
const (
	FixedHeaderLength = 7
	MaxHeaderLength   = 9

	syncWord   = 0xfff
	syncLength = 2
)

// vbrFullness is the reserved all-ones adts_buffer_fullness pattern that
// marks a variable bit rate stream.
const vbrFullness = 0x7ff

// BufferFullness is the classified 11-bit adts_buffer_fullness value: the
// reserved all-ones pattern marks a variable bit rate stream, any other
// value is the encoder's buffer occupancy estimate for a constant bit rate
// stream. All 11 bits are preserved.
type BufferFullness uint16

// VBR reports whether the stream is variable bit rate, in which case the
// fullness level carries no meaning.
func (bf BufferFullness) VBR() bool {
	return bf == vbrFullness
}

// Level returns the constant bit rate fullness level in the range 0-2046.
// The second return value is false for a variable bit rate stream.
func (bf BufferFullness) Level() (uint16, bool) {
	if bf.VBR() {
		return 0, false
	}
	return uint16(bf), true
}

// String returns the human-readable string representation of a BufferFullness.
func (bf BufferFullness) String() string {
	if bf.VBR() {
		return "VBR"
	}
	return fmt.Sprintf("CBR(%d)", uint16(bf))
}

// Header holds the decoded fields of one ADTS frame header.
//
// The two copyright identification fields present in the bitstream layout are
// consumed but not decoded; no observed encoder populates them meaningfully.
type Header struct {
	MpegVersion          MpegVersion
	ProtectionAbsent     bool // when false, a CRC follows the variable header
	AudioObjectType      AudioObjectType
	SamplingFrequency    SamplingFrequency
	PrivateBit           uint8 // either 1 or 0, passed through
	ChannelConfiguration ChannelConfiguration
	IsOriginal           bool   // true when the originality bit marks original content
	Home                 uint8  // either 1 or 0, passed through
	FrameLength          uint16 // total frame length in bytes, header included
	BufferFullness       BufferFullness
	NumberOfBlocks       uint8  // raw data blocks in the payload, 1-4
	CRC                  uint16 // raw 16 bits, only meaningful when !ProtectionAbsent
}

// Length returns the header length in bytes: 7, or 9 when a CRC is present.
func (h Header) Length() int {
	if h.ProtectionAbsent {
		return FixedHeaderLength
	}
	return FixedHeaderLength + 2
}

// PayloadLength returns the number of payload bytes following the header.
func (h Header) PayloadLength() int {
	return int(h.FrameLength) - h.Length()
}

// EncoderConfiguration returns the subset of header fields a downstream
// decoder must be reconfigured for when it changes.
func (h Header) EncoderConfiguration() EncoderConfiguration {
	return EncoderConfiguration{
		MpegVersion:          h.MpegVersion,
		AudioObjectType:      h.AudioObjectType,
		SamplingFrequency:    h.SamplingFrequency,
		ChannelConfiguration: h.ChannelConfiguration,
	}
}

// ParseHeader decodes one ADTS frame header from the start of frame using the
// standard frequency table. The buffer must hold the whole header: 7 bytes,
// or 9 when the protection bit announces a CRC. Arbitrary input is safe; a
// malformed header yields an error, never a panic.
func ParseHeader(frame []byte) (Header, error) {
	return parseHeader(frame, StandardFrequencies{})
}

// Bit layout, sync word first (ISO/IEC 13818-7):
//
//	AAAAAAAA AAAABCCD EEFFFFGH HHIJKLMM MMMMMMMM MMMOOOOO OOOOOOPP (QQQQQQQQ QQQQQQQQ)
//
// A sync, B version, C layer, D protection absent, E object type, F frequency
// index, G private, H channel config, I original, J home, K/L copyright id,
// M frame length, O buffer fullness, P block count, Q optional CRC.
func parseHeader(frame []byte, freq FrequencyTable) (hdr Header, err error) {
	if len(frame) < FixedHeaderLength {
		return hdr, &NotEnoughDataError{Expected: FixedHeaderLength, Actual: len(frame)}
	}

	if word := uint16(frame[0])<<4 | uint16(frame[1])>>4; word != syncWord {
		return hdr, &InvalidSyncWordError{Word: word}
	}

	if frame[1]&0x08 != 0 {
		hdr.MpegVersion = Mpeg2
	}
	// The 2-bit layer field between version and protection is always zero
	// for ADTS and is not surfaced.
	hdr.ProtectionAbsent = frame[1]&0x01 != 0
	if !hdr.ProtectionAbsent && len(frame) < MaxHeaderLength {
		return hdr, &NotEnoughDataError{Expected: MaxHeaderLength, Actual: len(frame)}
	}

	hdr.AudioObjectType = AudioObjectType(frame[2] >> 6)
	hdr.SamplingFrequency = SamplingFrequency(frame[2] >> 2 & 0x0f)
	if _, err = freq.Frequency(hdr.SamplingFrequency); err != nil {
		return hdr, err
	}
	hdr.PrivateBit = frame[2] >> 1 & 0x01
	hdr.ChannelConfiguration = ChannelConfiguration(frame[2]<<2&0x04 | frame[3]>>6&0x03)
	hdr.IsOriginal = frame[3]&0x20 != 0
	hdr.Home = frame[3] >> 4 & 0x01
	// Bits 3 and 2 of frame[3] are the copyright identification fields,
	// consumed but not decoded.
	hdr.FrameLength = uint16(frame[3]&0x03)<<11 | uint16(frame[4])<<3 | uint16(frame[5])>>5
	hdr.BufferFullness = BufferFullness(frame[5]&0x1f)<<6 | BufferFullness(frame[6])>>2
	hdr.NumberOfBlocks = frame[6]&0x03 + 1

	if !hdr.ProtectionAbsent {
		hdr.CRC = uint16(frame[7])<<8 | uint16(frame[8])
	}

	if int(hdr.FrameLength) < hdr.Length() {
		return hdr, &FrameTooShortError{FrameLength: int(hdr.FrameLength), HeaderLength: hdr.Length()}
	}

	return hdr, nil
}
