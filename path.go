package rabbitsearch

import "errors"

// ErrBufferTooSmall is returned by [ReconstructPath] when buf is too small
// to hold the reconstructed path plus tail byte.
var ErrBufferTooSmall = errors.New("rabbitsearch: buffer too small for path")

// ReconstructPath walks node's parent chain backward, writing the
// '/'-joined path into buf from its tail working forward-to-back, followed
// by tail (typically '\n'). A '/' is written unconditionally before every
// node's name, including the outermost one, so the result always carries a
// leading separator (matching original_source/bin/result.hpp's
// ComputePathStr, which writes '/' after every node regardless of whether
// its parent is null). It returns the occupied suffix of buf.
//
// This is used only for output formatting on the result-draining side, not
// on any hot path: a worker never reconstructs a path, it only ever passes
// the *FsNode itself down to the result queue.
func ReconstructPath(node *FsNode, buf []byte, tail byte) ([]byte, error) {
	pos := len(buf)

	if pos == 0 {
		return nil, ErrBufferTooSmall
	}

	pos--
	buf[pos] = tail

	for n := node; n != nil; n = n.Parent() {
		name := n.Name()

		if pos < len(name) {
			return nil, ErrBufferTooSmall
		}

		pos -= len(name)
		copy(buf[pos:], name)

		if pos == 0 {
			return nil, ErrBufferTooSmall
		}

		pos--
		buf[pos] = '/'
	}

	return buf[pos:], nil
}

// PathString is a convenience wrapper around [ReconstructPath] for callers
// that just want a string and are not on a hot path (tests, one-off
// diagnostics). It allocates a buffer sized generously and grows once on
// overflow.
func PathString(node *FsNode) string {
	buf := make([]byte, 256)

	for {
		out, err := ReconstructPath(node, buf, '\n')
		if err == nil {
			return string(out[:len(out)-1])
		}

		buf = make([]byte, len(buf)*2)
	}
}
