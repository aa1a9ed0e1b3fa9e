// Package adts parses the Audio Data Transport Stream framing format that
// wraps AAC audio access units.
//
// The package decodes ADTS frame headers and hands the raw AAC payload to a
// caller-supplied Consumer without buffering or decoding it. Input arrives as
// byte chunks of arbitrary size and alignment, the way an MPEG transport
// stream demuxer produces them:
//
//	parser := adts.NewParser(consumer)
//	for chunk := range chunks {
//		if err := parser.Push(chunk); err != nil {
//			// decode errors are reported per occurrence; the parser
//			// resynchronizes on its own and stays usable.
//		}
//	}
//
// Headers split across chunks are reassembled transparently. Payload bytes
// are delivered as zero-copy views into the caller's chunk and are only valid
// for the duration of the Payload callback.
//
// A Parser instance serves exactly one elementary stream and is not safe for
// concurrent use.
package adts
