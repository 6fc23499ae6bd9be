package vfs

import (
	"fmt"
	"io"
	"os"
)

// Handle is a bounded window onto a resolved file
// Archive-backed handles share the container's descriptor and never close it;
// loose handles own their descriptor exclusively
type Handle struct {
	file   *os.File
	pak    bool  // true when the window lives inside a packed archive
	start  int64 // window start within the descriptor
	pos    int64 // read position relative to the window
	length int64
}

// FromPak reports whether the handle is an archive member window
func (h *Handle) FromPak() bool { return h.pak }

// Length returns the window size in bytes
func (h *Handle) Length() int64 { return h.length }

// Tell returns the current position relative to the window start
func (h *Handle) Tell() int64 { return h.pos }

// Read fills p from the window, stopping at the window end
func (h *Handle) Read(p []byte) (int, error) {
	remain := h.length - h.pos
	if remain <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > remain {
		p = p[:remain]
	}
	n, err := h.file.ReadAt(p, h.start+h.pos)
	h.pos += int64(n)
	if err == io.EOF && h.pos < h.length {
		err = io.ErrUnexpectedEOF
	}
	return n, err
}

// Seek repositions within the window; offsets are clamped to [0, length]
// Whence values follow io.SeekStart/Current/End
func (h *Handle) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = h.pos + offset
	case io.SeekEnd:
		abs = h.length + offset
	default:
		return h.pos, fmt.Errorf("vfs: invalid seek whence %d", whence)
	}
	if abs < 0 {
		abs = 0
	}
	if abs > h.length {
		abs = h.length
	}
	h.pos = abs
	return abs, nil
}

// Close releases the wrapper
// Loose handles close their descriptor; archive-backed handles leave the
// shared container descriptor open. Using the handle after Close is undefined
func (h *Handle) Close() error {
	f := h.file
	h.file = nil
	if h.pak || f == nil {
		return nil
	}
	return f.Close()
}
