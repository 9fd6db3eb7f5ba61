package source

// reader.go provides the input filters applied to every CSV before parsing:
//
//   - bomReader: Removes the UTF-8 BOM (0xEF 0xBB 0xBF) written by Windows tools
//   - sanitizer: Replaces invalid UTF-8 bytes with '?' without buffering the file
//
// Use cleanReader to apply both in the correct order.

import (
	"bufio"
	"bytes"
	"io"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// bomReader skips a leading UTF-8 BOM.
type bomReader struct {
	r       *bufio.Reader
	checked bool
}

func newBOMReader(r io.Reader) *bomReader {
	return &bomReader{r: bufio.NewReader(r)}
}

// Read implements io.Reader. The first call peeks at the first three bytes.
func (b *bomReader) Read(p []byte) (int, error) {
	if !b.checked {
		b.checked = true
		head, err := b.r.Peek(len(utf8BOM))
		if err != nil && err != io.EOF {
			return 0, err
		}
		if bytes.Equal(head, utf8BOM) {
			if _, err := b.r.Discard(len(utf8BOM)); err != nil {
				return 0, err
			}
		}
	}
	return b.r.Read(p)
}

// sanitizer replaces invalid UTF-8 bytes on the fly. A multi-byte sequence
// split across two reads is held back until the next call.
type sanitizer struct {
	r       io.Reader
	pending []byte
}

func newSanitizer(r io.Reader) *sanitizer {
	return &sanitizer{r: r, pending: make([]byte, 0, utf8.UTFMax)}
}

// Read implements io.Reader.
func (s *sanitizer) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	offset := copy(p, s.pending)
	s.pending = s.pending[:0]

	n, err := s.r.Read(p[offset:])
	n += offset
	if n == 0 {
		return 0, err
	}

	return s.sanitize(p[:n], err == io.EOF), err
}

// sanitize rewrites data in place and returns the number of bytes to emit.
func (s *sanitizer) sanitize(data []byte, atEOF bool) int {
	if !atEOF {
		if tail := incompleteTail(data); tail > 0 {
			s.pending = append(s.pending, data[len(data)-tail:]...)
			data = data[:len(data)-tail]
		}
	}
	if utf8.Valid(data) {
		return len(data)
	}

	w := 0
	for r := 0; r < len(data); {
		ch, size := utf8.DecodeRune(data[r:])
		if ch == utf8.RuneError && size == 1 {
			data[w] = '?'
			w++
			r++
			continue
		}
		copy(data[w:], data[r:r+size])
		w += size
		r += size
	}
	return w
}

// incompleteTail returns how many trailing bytes start a multi-byte sequence
// that is not finished yet.
func incompleteTail(data []byte) int {
	for i := 1; i <= utf8.UTFMax-1 && i <= len(data); i++ {
		c := data[len(data)-i]
		if c&0xC0 == 0x80 {
			continue // continuation byte
		}
		if c >= 0xC0 && i < expectedLen(c) {
			return i
		}
		return 0
	}
	return 0
}

// expectedLen returns the length of the sequence introduced by lead byte c.
func expectedLen(c byte) int {
	switch {
	case c < 0x80:
		return 1
	case c < 0xE0:
		return 2
	case c < 0xF0:
		return 3
	default:
		return 4
	}
}

// cleanReader strips the BOM first, then sanitizes.
func cleanReader(r io.Reader) io.Reader {
	return newSanitizer(newBOMReader(r))
}
