package bytebuf

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadAll replaces the buffer's content with the entire content of f.
//
// The stream's size is obtained by seeking to its end, then the stream is
// rewound, capacity is grown in a single step, and one full-length read is
// performed. Ingestion is all-or-nothing: a seek error, a negative or
// unaddressable size, or a short read (concurrent truncation, device
// error) fails the operation and leaves the buffer logically empty, with
// no retry. Opening and closing the stream is the caller's responsibility.
func (b *Buffer) ReadAll(f io.ReadSeeker) error {
	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("bytebuf: size stream: %w", err)
	}
	if size < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSize, size)
	}
	if size > int64(^uint(0)>>1) {
		return fmt.Errorf("%w: %d bytes", ErrTooLarge, size)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("bytebuf: rewind stream: %w", err)
	}

	b.gen++
	b.vec.TruncateBy(b.vec.Len())
	if size == 0 {
		return nil
	}

	w := b.vec.Extend(int(size))
	n, err := io.ReadFull(f, w)
	if err != nil {
		b.vec.TruncateBy(b.vec.Len())
		if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: got %d of %d bytes", ErrShortRead, n, size)
		}
		return fmt.Errorf("bytebuf: read stream: %w", err)
	}
	return nil
}

// ReadFile opens the file at path and ingests it with ReadAll.
func (b *Buffer) ReadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return b.ReadAll(f)
}
