package rabbitsearch

// This file documents the internal I/O backend contract implemented by
// dirent_linux.go (the Linux fast path, grounded on the teacher's
// io_linux.go getdents64/openat backend) and dirent_other.go (the portable
// fallback for other Unix platforms, grounded on the teacher's io_other.go
// and other_examples/smoofra-fastfind__walk_unix.go).
//
// A backend provides:
//
//   - dirHandle: an open directory, from which entries can be read (with
//     an inline d_type-equivalent discriminator per spec.md §6) and
//     relative to which child directories/files can be opened.
//   - fileHandle: an open regular file, from which size/fd/chunked reads
//     are available for the scanner.
//
// Windows is out of scope (spec.md §1 Non-goals: "Windows path
// semantics"), so there is no io_windows.go backend; the build constraints
// on dirent_linux.go/dirent_other.go cover every Unix this module targets.

// dirEntryType mirrors the DT_* discriminator spec.md §6 requires readdir
// to surface inline.
type dirEntryType uint8

const (
	direntUnknown dirEntryType = iota
	direntRegular
	direntDirectory
	direntSymlink
	direntOther
)

// dirEntry is one raw entry read from a directory, before any FsNode is
// allocated for it.
type dirEntry struct {
	name []byte
	typ  dirEntryType
}

// dirHandle is an open directory, positioned for enumeration and capable of
// opening children relative to itself (openat semantics — spec.md §6 "no
// recomputation of absolute paths per entry").
type dirHandle interface {
	// readdir reads the next batch of entries. It returns io.EOF-shaped
	// termination via ok=false, err=nil when the directory is exhausted.
	readdir() (entries []dirEntry, err error)
	// openChildDir opens name (a child of this directory) as a new
	// dirHandle.
	openChildDir(name []byte) (dirHandle, error)
	// openChildFile opens name (a child of this directory) read-only.
	openChildFile(name []byte) (fileHandle, error)
	// statUnknown resolves a DT_UNKNOWN entry's real type via fstatat,
	// used only when WithStatFallback is set.
	statUnknown(name []byte) (dirEntryType, error)
	close() error
}

// fileHandle is an open regular file.
type fileHandle interface {
	fd() uintptr
	size() (int64, error)
	readAt(buf []byte, off int) (int, error)
	close() error
}
