//go:build unix

package rabbitsearch

import (
	"io"

	"golang.org/x/sys/unix"
)

// unixFileHandle is the fileHandle implementation shared by
// dirent_linux.go and dirent_other.go: an open regular file identified by
// raw file descriptor, using pread(2) so concurrent readers (the chunked
// fallback) never race on a shared file offset.
type unixFileHandle struct {
	rawFD int
}

func (f *unixFileHandle) fd() uintptr { return uintptr(f.rawFD) }

func (f *unixFileHandle) size() (int64, error) {
	var st unix.Stat_t
	if err := unix.Fstat(f.rawFD, &st); err != nil {
		return 0, err
	}

	return st.Size, nil
}

func (f *unixFileHandle) readAt(buf []byte, off int) (int, error) {
	n, err := unix.Pread(f.rawFD, buf, int64(off))
	if n == 0 && err == nil {
		return 0, io.EOF
	}

	return n, err
}

func (f *unixFileHandle) close() error {
	return unix.Close(f.rawFD)
}
