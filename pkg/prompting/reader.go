package prompting

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"golang.org/x/text/encoding"
)

// LineSource is the interface to which line providers used by Prompter must
// adhere. Implementations are not required to be safe for concurrent usage.
type LineSource interface {
	// ReadLine should block until a complete line is available and return it
	// without its line terminator. If the source is exhausted before a line
	// terminator is found, it should return ErrEndOfInput (possibly wrapped).
	ReadLine() (string, error)
}

// LineReader is a LineSource that reads newline-delimited text from a stream.
// A carriage return immediately preceding a newline is treated as part of the
// delimiter. LineReader buffers its input, so no other reader should consume
// the underlying stream while it's in use.
type LineReader struct {
	// reader is the buffered input stream.
	reader *bufio.Reader
	// decoder is the text decoder applied to each line. If nil, line content is
	// treated as UTF-8 and returned unmodified.
	decoder *encoding.Decoder
}

// NewLineReader creates a new line reader around the specified stream. If the
// specified encoding is non-nil, then each line is decoded from that encoding
// to UTF-8. Only encodings in which '\r' and '\n' are encoded as single bytes
// (e.g. UTF-8 or the ISO-8859 and Windows code pages) are supported. The reader
// does not take ownership of the stream and will never close it.
func NewLineReader(reader io.Reader, textEncoding encoding.Encoding) *LineReader {
	// Set up the decoder, if any.
	var decoder *encoding.Decoder
	if textEncoding != nil {
		decoder = textEncoding.NewDecoder()
	}

	// Create the reader.
	return &LineReader{
		reader:  bufio.NewReader(reader),
		decoder: decoder,
	}
}

// trimCarriageReturn trims any single trailing carriage return from the end of
// a byte slice.
func trimCarriageReturn(buffer []byte) []byte {
	if len(buffer) > 0 && buffer[len(buffer)-1] == '\r' {
		return buffer[:len(buffer)-1]
	}
	return buffer
}

// ReadLine implements LineSource.ReadLine. Any unterminated content at the end
// of the stream is discarded and ErrEndOfInput is returned.
func (r *LineReader) ReadLine() (string, error) {
	// Read through the next newline.
	line, err := r.reader.ReadBytes('\n')
	if err == io.EOF {
		return "", ErrEndOfInput
	} else if err != nil {
		return "", errors.Wrap(err, "unable to read input")
	}

	// Strip the delimiter.
	line = trimCarriageReturn(line[:len(line)-1])

	// Decode the line if necessary.
	if r.decoder != nil {
		decoded, err := r.decoder.Bytes(line)
		if err != nil {
			return "", errors.Wrap(err, "unable to decode input")
		}
		line = decoded
	}

	// Success.
	return string(line), nil
}
