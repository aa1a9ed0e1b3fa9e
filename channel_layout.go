package adts

import "fmt"

// ChannelLayout represents the set of speakers addressed by a stream.
type ChannelLayout uint16

// String returns the human-readable string representation of a ChannelLayout.
func (ch ChannelLayout) String() string {
	return fmt.Sprintf("%dch", ch.Count())
}

// Constants representing individual speaker positions.
const (
	ChFrontCenter = ChannelLayout(1 << iota)
	ChFrontLeft
	ChFrontRight
	ChBackCenter
	ChBackLeft
	ChBackRight
	ChSideLeft
	ChSideRight
	ChLowFreq

	ChMono   = (ChFrontCenter)
	ChStereo = (ChFrontLeft | ChFrontRight)
)

// Count returns the number of channels in the ChannelLayout.
func (ch ChannelLayout) Count() (n int) {
	for ch != 0 {
		n++
		ch = (ch - 1) & ch
	}
	return
}

// ChannelConfiguration represents the 3-bit channel configuration field of an
// ADTS header. Value 0 means the layout is defined by an in-band program
// config element and cannot be resolved here; values 1-7 map to fixed
// speaker layouts.
type ChannelConfiguration uint8

/*
These are the channel configurations:
0: Defined in AOT Specific Config
1: 1 channel: front-center
2: 2 channels: front-left, front-right
3: 3 channels: front-center, front-left, front-right
4: 4 channels: front-center, front-left, front-right, back-center
5: 5 channels: front-center, front-left, front-right, back-left, back-right
6: 6 channels: front-center, front-left, front-right, back-left, back-right, LFE-channel
7: 8 channels: front-center, front-left, front-right, side-left, side-right, back-left, back-right, LFE-channel
*/
var chanConfigTable = [8]ChannelLayout{
	0,
	ChFrontCenter,
	ChFrontLeft | ChFrontRight,
	ChFrontCenter | ChFrontLeft | ChFrontRight,
	ChFrontCenter | ChFrontLeft | ChFrontRight | ChBackCenter,
	ChFrontCenter | ChFrontLeft | ChFrontRight | ChBackLeft | ChBackRight,
	ChFrontCenter | ChFrontLeft | ChFrontRight | ChBackLeft | ChBackRight | ChLowFreq,
	ChFrontCenter | ChFrontLeft | ChFrontRight | ChSideLeft | ChSideRight | ChBackLeft | ChBackRight | ChLowFreq,
}

// Layout returns the speaker layout for the configuration, or 0 when the
// layout is defined by a program config element (configuration 0).
func (cc ChannelConfiguration) Layout() ChannelLayout {
	if int(cc) >= len(chanConfigTable) {
		return 0
	}
	return chanConfigTable[cc]
}

// Count returns the number of channels in the configuration, or 0 when the
// layout is defined by a program config element.
func (cc ChannelConfiguration) Count() int {
	return cc.Layout().Count()
}

// String returns the human-readable string representation of a ChannelConfiguration.
func (cc ChannelConfiguration) String() string {
	if cc == 0 {
		return "PCE"
	}
	return cc.Layout().String()
}
