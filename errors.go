package adts

import "fmt"

// InvalidSyncWordError represents an error indicating that the expected
// 12-bit sync word pattern was absent where a frame should begin.
type InvalidSyncWordError struct {
	Word uint16 // the 12-bit value found in place of 0xfff
}

// Error returns the error message for InvalidSyncWordError.
func (e *InvalidSyncWordError) Error() string {
	return fmt.Sprintf("adts: invalid sync word: %#03x", e.Word)
}

// ReservedFrequencyError represents an error indicating that a header carried
// a sampling frequency index with no ADTS meaning: 13 and 14 are reserved,
// 15 marks an explicit frequency that ADTS cannot express.
type ReservedFrequencyError struct {
	Index SamplingFrequency
}

// Error returns the error message for ReservedFrequencyError.
func (e *ReservedFrequencyError) Error() string {
	return fmt.Sprintf("adts: reserved sampling frequency index: %d", e.Index)
}

// FrameTooShortError represents an error indicating an internally
// inconsistent header whose frame length is smaller than the header itself.
type FrameTooShortError struct {
	FrameLength  int
	HeaderLength int
}

// Error returns the error message for FrameTooShortError.
func (e *FrameTooShortError) Error() string {
	return fmt.Sprintf("adts: frame length %d shorter than %d-byte header", e.FrameLength, e.HeaderLength)
}

// NotEnoughDataError represents an error indicating that a buffer handed to
// ParseHeader was shorter than the header it should contain. The incremental
// parser never produces it; a header split across Push calls is accumulated,
// not rejected.
type NotEnoughDataError struct {
	Expected int
	Actual   int
}

// Error returns the error message for NotEnoughDataError.
func (e *NotEnoughDataError) Error() string {
	return fmt.Sprintf("adts: need %d header bytes, got %d", e.Expected, e.Actual)
}
