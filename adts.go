package adts

// MpegVersion represents the 1-bit MPEG version flag of an ADTS header.
type MpegVersion uint8

// Constants representing the two MPEG variants of the framing format.
const (
	Mpeg4 MpegVersion = iota
	Mpeg2
)

// String returns the human-readable string representation of an MpegVersion.
func (v MpegVersion) String() string {
	switch v {
	case Mpeg4:
		return "MPEG-4"
	case Mpeg2:
		return "MPEG-2"
	}
	return "UNKNOWN"
}

// AudioObjectType represents the 2-bit profile field of an ADTS header. All
// four values at this width are defined, so an invalid object type cannot
// occur during decoding.
type AudioObjectType uint8

// Audio object types expressible in ADTS.
const (
	AotAacMain AudioObjectType = iota // Main
	AotAacLC                          // Low Complexity
	AotAacSSR                         // Scalable Sample Rate
	AotAacLTP                         // Long Term Prediction
)

// String returns the human-readable string representation of an AudioObjectType.
func (aot AudioObjectType) String() string {
	switch aot {
	case AotAacMain:
		return "AAC_MAIN"
	case AotAacLC:
		return "AAC_LC"
	case AotAacSSR:
		return "AAC_SSR"
	case AotAacLTP:
		return "AAC_LTP"
	}
	return "UNKNOWN"
}

// Consumer receives the parsing events produced by a Parser. Implementations
// are invoked synchronously from Push, in stream order.
type Consumer interface {
	// NewConfig is called before the first frame of a stream and thereafter
	// whenever the encoder configuration differs from the last one delivered.
	NewConfig(config EncoderConfiguration)
	// FrameStart is called with the decoded header of the frame about to
	// stream, after any NewConfig call for the same frame.
	FrameStart(header Header)
	// Payload delivers a view into the caller's input chunk. It may be called
	// zero or more times per frame and the slice must not be retained past
	// the call.
	Payload(data []byte)
	// FrameComplete signals that all payload bytes of the most recently
	// started frame have been delivered.
	FrameComplete()
}
