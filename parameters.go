package adts

import "fmt"

// EncoderConfiguration is the subset of header fields that describe the
// encoder setup. A downstream decoder keeps working across frames as long as
// the configuration stays equal; any field change requires reconfiguration.
// Values are comparable with ==.
type EncoderConfiguration struct {
	MpegVersion          MpegVersion
	AudioObjectType      AudioObjectType
	SamplingFrequency    SamplingFrequency
	ChannelConfiguration ChannelConfiguration
}

// SampleRate returns the sampling frequency in Hz. It is never 0 for a
// configuration produced by the parser, which rejects reserved indices
// before emitting one.
func (c EncoderConfiguration) SampleRate() int {
	return c.SamplingFrequency.Frequency()
}

// ChannelLayout returns the speaker layout, or 0 when the channel
// configuration defers to a program config element.
func (c EncoderConfiguration) ChannelLayout() ChannelLayout {
	return c.ChannelConfiguration.Layout()
}

// Channels returns the channel count, or 0 when the channel configuration
// defers to a program config element.
func (c EncoderConfiguration) Channels() int {
	return c.ChannelConfiguration.Count()
}

// Tag returns the RFC 6381 codec tag for the configuration, e.g. "mp4a.40.2"
// for AAC-LC. ADTS profiles map to MPEG-4 audio object types 1-4.
func (c EncoderConfiguration) Tag() string {
	return fmt.Sprintf("mp4a.40.%d", uint8(c.AudioObjectType)+1)
}

// String returns the human-readable string representation of an EncoderConfiguration.
func (c EncoderConfiguration) String() string {
	return fmt.Sprintf("%v %v %v %v", c.MpegVersion, c.AudioObjectType, c.SamplingFrequency, c.ChannelConfiguration)
}
