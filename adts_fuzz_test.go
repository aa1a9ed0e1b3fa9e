package adts

import (
	"bytes"
	"testing"
)

// nullConsumer discards every event.
type nullConsumer struct{}

func (nullConsumer) NewConfig(EncoderConfiguration) {}
func (nullConsumer) FrameStart(Header)              {}
func (nullConsumer) Payload([]byte)                 {}
func (nullConsumer) FrameComplete()                 {}

func FuzzParseHeader(f *testing.F) {
	// Seed: valid unprotected header, stereo AAC-LC at 48kHz
	f.Add([]byte{0xff, 0xf1, 0x4c, 0x80, 0x01, 0x7f, 0xfc})
	// Seed: protected header with trailing CRC
	f.Add([]byte{0xff, 0xf0, 0x4c, 0x80, 0x01, 0x7f, 0xfc, 0xde, 0xad})
	// Seed: sync word only
	f.Add([]byte{0xff, 0xf1})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		header, err := ParseHeader(data) // must not panic
		if err != nil {
			return
		}
		if int(header.FrameLength) < header.Length() {
			t.Errorf("frame length %d below header length %d", header.FrameLength, header.Length())
		}
		if header.BufferFullness > 0x7ff {
			t.Errorf("buffer fullness %d exceeds 11 bits", header.BufferFullness)
		}
		if header.NumberOfBlocks < 1 || header.NumberOfBlocks > 4 {
			t.Errorf("block count %d out of range", header.NumberOfBlocks)
		}
	})
}

// FuzzParserPush feeds arbitrary bytes under an arbitrary chunking and
// checks both that nothing panics and that chunking never changes what a
// consumer observes.
func FuzzParserPush(f *testing.F) {
	valid := buildFrame(headerSpec{freqIndex: 4, chanConfig: 2, blocks: 1}, []byte{0x01, 0x02, 0x03})
	f.Add(valid, uint8(1))
	f.Add(append(bytes.Repeat([]byte{0x55}, 16), valid...), uint8(3))
	f.Add(bytes.Repeat([]byte{0xff}, 64), uint8(7))
	f.Add(bytes.Repeat([]byte{0x00}, 64), uint8(2))

	f.Fuzz(func(t *testing.T, data []byte, chunk uint8) {
		whole := &recordConsumer{}
		NewParser(whole).Push(data)

		chunked := &recordConsumer{}
		parser := NewParser(chunked)
		size := int(chunk%13) + 1
		for rest := data; len(rest) > 0; {
			n := min(size, len(rest))
			parser.Push(rest[:n])
			rest = rest[n:]
		}

		wholeEvents := whole.normalized()
		chunkedEvents := chunked.normalized()
		if len(wholeEvents) != len(chunkedEvents) {
			t.Fatalf("chunking changed event count: %d vs %d", len(wholeEvents), len(chunkedEvents))
		}
		for i := range wholeEvents {
			a, b := wholeEvents[i], chunkedEvents[i]
			if a.kind != b.kind || a.config != b.config || a.header != b.header || !bytes.Equal(a.payload, b.payload) {
				t.Fatalf("event %d differs: %+v vs %+v", i, a, b)
			}
		}

		// The parser must remain usable after arbitrary input. Zeros drain
		// any frame still streaming (the 13-bit frame length bounds its
		// payload) without ever forming a new sync word themselves.
		parser.Push(make([]byte, 2*8192))
		before := len(chunked.frames())
		parser.Push(valid)
		if got := len(chunked.frames()); got != before+1 {
			t.Fatalf("parser unusable after fuzz input: %d frames, want %d", got, before+1)
		}
	})
}
