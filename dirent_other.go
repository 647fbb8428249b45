//go:build unix && !linux

package rabbitsearch

// dirent_other.go implements the internal I/O backend contract (see
// io_contract.go) for non-Linux Unix (darwin, freebsd, etc.) using
// portable APIs: (*os.File).ReadDir for the inline d_type-equivalent
// discriminator (os.DirEntry.Type() reports it without an extra stat on
// platforms that support it) and unix.Openat for relative-fd opens.
//
// Grounded on the teacher's io_other.go (portable os.* backend) and
// other_examples/smoofra-fastfind__walk_unix.go's Openat-relative walk
// shape.

import (
	"io"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

type otherDirHandle struct {
	fd int
	f  *os.File
}

func openRootDir(path string) (dirHandle, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, err
	}

	f := os.NewFile(uintptr(fd), path)

	return &otherDirHandle{fd: fd, f: f}, nil
}

func (h *otherDirHandle) openChildDir(name []byte) (dirHandle, error) {
	fd, err := unix.Openat(h.fd, string(name), unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC|unix.O_NOFOLLOW, 0)
	if err != nil {
		return nil, err
	}

	return &otherDirHandle{fd: fd, f: os.NewFile(uintptr(fd), string(name))}, nil
}

func (h *otherDirHandle) openChildFile(name []byte) (fileHandle, error) {
	fd, err := unix.Openat(h.fd, string(name), unix.O_RDONLY|unix.O_CLOEXEC|unix.O_NOFOLLOW, 0)
	if err != nil {
		return nil, err
	}

	return &unixFileHandle{rawFD: fd}, nil
}

func (h *otherDirHandle) statUnknown(name []byte) (dirEntryType, error) {
	var st unix.Stat_t

	if err := unix.Fstatat(h.fd, string(name), &st, unix.AT_SYMLINK_NOFOLLOW); err != nil {
		return direntUnknown, err
	}

	switch st.Mode & unix.S_IFMT {
	case unix.S_IFDIR:
		return direntDirectory, nil
	case unix.S_IFREG:
		return direntRegular, nil
	case unix.S_IFLNK:
		return direntSymlink, nil
	default:
		return direntOther, nil
	}
}

func (h *otherDirHandle) close() error {
	return h.f.Close()
}

func (h *otherDirHandle) readdir() ([]dirEntry, error) {
	entries, err := h.f.ReadDir(4096)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, io.EOF
	}

	out := make([]dirEntry, 0, len(entries))

	for _, e := range entries {
		name := e.Name()
		if name == "." || name == ".." {
			continue
		}

		out = append(out, dirEntry{name: []byte(name), typ: fsModeToEntryType(e.Type())})
	}

	return out, nil
}

func fsModeToEntryType(m fs.FileMode) dirEntryType {
	switch {
	case m&fs.ModeSymlink != 0:
		return direntSymlink
	case m.IsDir():
		return direntDirectory
	case m.IsRegular():
		return direntRegular
	case m == 0:
		return direntUnknown
	default:
		return direntOther
	}
}
