package adts

import (
	"errors"

	"github.com/dholroyd/adts-reader/utils/logger"
)

const logTag = "ADTS"

// Parser is an incremental ADTS parser. It consumes a contiguous elementary
// stream as a sequence of arbitrarily sized, arbitrarily aligned chunks and
// drives a Consumer with configuration, header and payload events.
//
// The only state kept between calls is a carry-over buffer bounded by the
// 9-byte maximum header size, the number of payload bytes still owed to the
// current frame, and the last emitted encoder configuration. Payload bytes
// are never buffered; they are forwarded as views into the caller's chunk.
//
// One Parser serves exactly one elementary stream. It is not safe for
// concurrent use.
type Parser struct {
	consumer    Consumer
	frequencies FrequencyTable

	carry    [MaxHeaderLength]byte
	carryLen int
	// remaining counts payload bytes of the current frame not yet delivered;
	// inFrame distinguishes a finished frame from no frame at all.
	remaining int
	inFrame   bool

	config    EncoderConfiguration
	hasConfig bool

	// lostSync suppresses repeated sync errors while scanning garbage so a
	// desynchronized run reports exactly one InvalidSyncWordError no matter
	// how the input is chunked.
	lostSync bool
}

// NewParser returns a Parser delivering events to consumer, validating
// sampling frequency indices against the standard ISO table.
func NewParser(consumer Consumer) *Parser {
	return NewParserWithFrequencies(consumer, StandardFrequencies{})
}

// NewParserWithFrequencies returns a Parser using a caller-supplied frequency
// table, for streams whose index semantics differ from the standard table.
func NewParserWithFrequencies(consumer Consumer, frequencies FrequencyTable) *Parser {
	return &Parser{
		consumer:    consumer,
		frequencies: frequencies,
	}
}

// Push consumes the next chunk of the elementary stream and synchronously
// invokes the consumer callbacks for everything the chunk completes. The
// whole chunk is always consumed; bytes of an incomplete header are carried
// over to the next call, which is never an error by itself.
//
// Decode errors are returned joined, one entry per occurrence, after the
// chunk has been processed. After an error the parser advances one byte and
// resumes sync-word search, so subsequent valid input keeps parsing; a
// desynchronized run of garbage reports a single InvalidSyncWordError.
// Push never panics, whatever the input.
func (p *Parser) Push(data []byte) error {
	var errs []error

	data = p.streamPayload(data)

	for {
		// A sync word can only be judged with two bytes in hand.
		if p.carryLen+len(data) < syncLength {
			p.stash(data)
			return errors.Join(errs...)
		}
		b0, b1 := p.byteAt(data, 0), p.byteAt(data, 1)
		if word := uint16(b0)<<4 | uint16(b1)>>4; word != syncWord {
			if !p.lostSync {
				p.lostSync = true
				errs = append(errs, &InvalidSyncWordError{Word: word})
				logger.Tracef(logTag, "sync lost at word %#03x", word)
			}
			data = p.skip(data)
			continue
		}

		// The protection bit in the second byte decides whether the header
		// runs 7 or 9 bytes.
		need := FixedHeaderLength
		if b1&0x01 == 0 {
			need = MaxHeaderLength
		}
		if p.carryLen+len(data) < need {
			p.stash(data)
			return errors.Join(errs...)
		}

		var window []byte
		if p.carryLen == 0 {
			window = data[:need]
		} else {
			// A resync can leave the carry holding more than this header
			// class needs; top it up only when it is short.
			if p.carryLen < need {
				n := copy(p.carry[p.carryLen:need], data)
				p.carryLen += n
				data = data[n:]
			}
			window = p.carry[:need]
		}

		header, err := parseHeader(window, p.frequencies)
		if err != nil {
			errs = append(errs, err)
			logger.Tracef(logTag, "resync after decode error: %v", err)
			data = p.skip(data)
			continue
		}

		p.lostSync = false
		if config := header.EncoderConfiguration(); !p.hasConfig || config != p.config {
			p.config = config
			p.hasConfig = true
			logger.Debugf(logTag, "new configuration: %v", config)
			p.consumer.NewConfig(config)
		}
		p.consumer.FrameStart(header)

		if p.carryLen > 0 {
			// Resync can leave more carried bytes than this header consumed;
			// the tail belongs to the payload or the next frame.
			copy(p.carry[:], p.carry[need:p.carryLen])
			p.carryLen -= need
		} else {
			data = data[need:]
		}
		p.remaining = header.PayloadLength()
		p.inFrame = true
		data = p.streamPayload(data)
	}
}

// streamPayload forwards pending payload bytes of the current frame to the
// consumer and returns the unconsumed tail of data.
func (p *Parser) streamPayload(data []byte) []byte {
	if !p.inFrame {
		return data
	}
	// Bytes that entered the carry buffer as header candidates and turned
	// out to be payload after a resync are drained first. At most two.
	if n := min(p.remaining, p.carryLen); n > 0 {
		p.consumer.Payload(p.carry[:n])
		p.remaining -= n
		copy(p.carry[:], p.carry[n:p.carryLen])
		p.carryLen -= n
	}
	if n := min(p.remaining, len(data)); n > 0 {
		p.consumer.Payload(data[:n])
		p.remaining -= n
		data = data[n:]
	}
	if p.remaining == 0 {
		p.inFrame = false
		p.consumer.FrameComplete()
	}
	return data
}

// byteAt reads the i-th byte of the logical stream position, which starts
// with any carried-over bytes and continues into data.
func (p *Parser) byteAt(data []byte, i int) byte {
	if i < p.carryLen {
		return p.carry[i]
	}
	return data[i-p.carryLen]
}

// skip advances the logical stream position by one byte, draining the carry
// buffer before touching data.
func (p *Parser) skip(data []byte) []byte {
	if p.carryLen > 0 {
		copy(p.carry[:], p.carry[1:p.carryLen])
		p.carryLen--
		return data
	}
	return data[1:]
}

// stash copies the remainder of data into the carry buffer. Callers only
// reach it when carry and data together cannot complete a header, so the
// total always fits the 9-byte bound.
func (p *Parser) stash(data []byte) {
	p.carryLen += copy(p.carry[p.carryLen:], data)
}
