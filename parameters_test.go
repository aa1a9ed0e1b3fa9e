package adts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncoderConfiguration_Equality(t *testing.T) {
	t.Parallel()

	base := EncoderConfiguration{
		MpegVersion:          Mpeg4,
		AudioObjectType:      AotAacLC,
		SamplingFrequency:    4,
		ChannelConfiguration: 2,
	}

	// Every constituent field must take part in the comparison.
	tests := []struct {
		name   string
		mutate func(*EncoderConfiguration)
	}{
		{"mpeg_version", func(c *EncoderConfiguration) { c.MpegVersion = Mpeg2 }},
		{"audio_object_type", func(c *EncoderConfiguration) { c.AudioObjectType = AotAacLTP }},
		{"sampling_frequency", func(c *EncoderConfiguration) { c.SamplingFrequency = 5 }},
		{"channel_configuration", func(c *EncoderConfiguration) { c.ChannelConfiguration = 6 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			changed := base
			tt.mutate(&changed)
			require.NotEqual(t, base, changed)
		})
	}

	require.Equal(t, base, EncoderConfiguration{
		MpegVersion:          Mpeg4,
		AudioObjectType:      AotAacLC,
		SamplingFrequency:    4,
		ChannelConfiguration: 2,
	})
}

func TestEncoderConfiguration_Derivations(t *testing.T) {
	t.Parallel()

	config := EncoderConfiguration{
		MpegVersion:          Mpeg4,
		AudioObjectType:      AotAacLC,
		SamplingFrequency:    4,
		ChannelConfiguration: 6,
	}
	require.Equal(t, 44100, config.SampleRate())
	require.Equal(t, 6, config.Channels())
	require.Equal(t, ChFrontCenter|ChFrontLeft|ChFrontRight|ChBackLeft|ChBackRight|ChLowFreq, config.ChannelLayout())
	require.Equal(t, "mp4a.40.2", config.Tag())

	config.AudioObjectType = AotAacMain
	require.Equal(t, "mp4a.40.1", config.Tag())
}

func TestStandardFrequencies(t *testing.T) {
	t.Parallel()

	want := []int{96000, 88200, 64000, 48000, 44100, 32000, 24000, 22050, 16000, 12000, 11025, 8000, 7350}
	table := StandardFrequencies{}
	for index, freq := range want {
		got, err := table.Frequency(SamplingFrequency(index))
		require.NoError(t, err)
		require.Equal(t, freq, got)
		require.Equal(t, freq, SamplingFrequency(index).Frequency())
	}
	for index := SamplingFrequency(13); index <= 15; index++ {
		_, err := table.Frequency(index)
		var reserved *ReservedFrequencyError
		require.ErrorAs(t, err, &reserved)
		require.Equal(t, 0, index.Frequency())
		require.Equal(t, "RESERVED", index.String())
	}
}

func TestChannelConfiguration_Layouts(t *testing.T) {
	t.Parallel()

	counts := []int{0, 1, 2, 3, 4, 5, 6, 8}
	for config, want := range counts {
		require.Equal(t, want, ChannelConfiguration(config).Count(), "configuration %d", config)
	}
	require.Equal(t, ChMono, ChannelConfiguration(1).Layout())
	require.Equal(t, ChStereo, ChannelConfiguration(2).Layout())
	require.Equal(t, "PCE", ChannelConfiguration(0).String())
	require.Equal(t, "2ch", ChannelConfiguration(2).String())
}
