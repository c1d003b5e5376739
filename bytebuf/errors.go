package bytebuf

import "errors"

var (
	// ErrNegativeSize indicates the stream reported a negative size when
	// seeking to its end.
	ErrNegativeSize = errors.New("bytebuf: stream reported negative size")

	// ErrShortRead indicates the stream delivered fewer bytes than the
	// size it reported. Ingestion never retries; a short read is terminal.
	ErrShortRead = errors.New("bytebuf: short read")

	// ErrTooLarge indicates the stream is too large for the buffer to
	// address on this platform.
	ErrTooLarge = errors.New("bytebuf: stream too large")
)
