package adts

import "fmt"

// SamplingFrequency represents the 4-bit sampling frequency index of an ADTS
// header. Indices 13 and 14 are reserved; index 15 marks an explicit
// frequency, which ADTS cannot carry. All three are rejected during decoding.
type SamplingFrequency uint8

var sampleRateTable = [...]int{
	96000, 88200, 64000, 48000, 44100, 32000,
	24000, 22050, 16000, 12000, 11025, 8000, 7350,
}

// Frequency returns the sampling frequency in Hz, or 0 for a reserved index.
func (sf SamplingFrequency) Frequency() int {
	if int(sf) >= len(sampleRateTable) {
		return 0
	}
	return sampleRateTable[sf]
}

// String returns the human-readable string representation of a SamplingFrequency.
func (sf SamplingFrequency) String() string {
	if f := sf.Frequency(); f != 0 {
		return fmt.Sprintf("%dHz", f)
	}
	return "RESERVED"
}

// FrequencyTable resolves a sampling frequency index to a frequency in Hz.
// The parser only consults it to accept or reject an index, so callers may
// swap in their own table without touching the bitstream logic.
type FrequencyTable interface {
	// Frequency returns the frequency in Hz for the given index, or a
	// *ReservedFrequencyError when the index has no ADTS meaning.
	Frequency(index SamplingFrequency) (int, error)
}

// StandardFrequencies is the FrequencyTable defined by ISO/IEC 14496-3,
// covering indices 0-12.
type StandardFrequencies struct{}

// Frequency implements FrequencyTable.
func (StandardFrequencies) Frequency(index SamplingFrequency) (int, error) {
	if int(index) >= len(sampleRateTable) {
		return 0, &ReservedFrequencyError{Index: index}
	}
	return sampleRateTable[index], nil
}
