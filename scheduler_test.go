package rabbitsearch_test

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	rabbitsearch "github.com/markovejnovic/rabbit-search"
)

// Test_Search_S3_Needle_Padded_Across_A_Large_File exercises spec scenario
// S3: a 10 MiB run of 'X', the needle, then 5 MiB of 'Y'. This is large
// enough to force the real SearchFile mmap path (scanner_mmap.go) rather
// than the chunked fallback, and big enough that a scanner bug touching
// only the first or last window would not show up in scanner_test.go's
// in-memory boundary cases.
func Test_Search_S3_Needle_Padded_Across_A_Large_File(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	var content bytes.Buffer
	content.Write(bytes.Repeat([]byte{'X'}, 10<<20))
	content.WriteString("needle")
	content.Write(bytes.Repeat([]byte{'Y'}, 5<<20))

	writeFile(t, root, "big", content.Bytes())

	sched, err := rabbitsearch.Search(root, []byte("needle"))
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	got := drainAll(t, sched)
	sched.Close()

	if len(got) != 1 || got[0] != "/big" {
		t.Fatalf("got %v, want [/big]", got)
	}
}

// Test_Search_S4_Ten_Thousand_Empty_Files exercises spec scenario S4: a
// tree of many empty files must produce no results and IsBusy must settle
// to false in finite time (bounded by drainAll's own deadline).
func Test_Search_S4_Ten_Thousand_Empty_Files(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	const n = 10_000

	for i := 0; i < n; i++ {
		writeFile(t, root, fmt.Sprintf("empty-%05d.txt", i), nil)
	}

	sched, err := rabbitsearch.Search(root, []byte("anything"))
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	got := drainAll(t, sched)
	sched.Close()

	if len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}

// Test_Search_S5_Needle_Split_Across_64th_Byte_Boundary exercises spec
// scenario S5 through the real job path: a file whose needle occurrence
// spans bytes 62..67, straddling the 64-byte SIMD window boundary the
// AVX512 tier uses, serviced by the actual SearchFile job (mmap + Find)
// rather than scanner_test.go's synthetic in-memory-only boundary check.
func Test_Search_S5_Needle_Split_Across_64th_Byte_Boundary(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	needle := []byte("needle")

	content := bytes.Repeat([]byte{'z'}, 62)
	content = append(content, needle...)
	content = append(content, bytes.Repeat([]byte{'z'}, 64)...)

	writeFile(t, root, "boundary.txt", content)

	sched, err := rabbitsearch.Search(root, needle, rabbitsearch.WithSIMD(rabbitsearch.ISAAVX512))
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	got := drainAll(t, sched)
	sched.Close()

	if len(got) != 1 || got[0] != "/boundary.txt" {
		t.Fatalf("got %v, want [/boundary.txt]", got)
	}
}

// Test_Search_S6_Deeply_Nested_Path_Has_Exact_Separator_Count exercises
// spec scenario S6: a match 26 directories deep must reconstruct with an
// exact, deterministic separator count before the leaf name.
func Test_Search_S6_Deeply_Nested_Path_Has_Exact_Separator_Count(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	segments := make([]string, 0, 26)
	for c := 'a'; c <= 'z'; c++ {
		segments = append(segments, string(c))
	}

	rel := filepath.Join(append(append([]string{}, segments...), "match.txt")...)
	writeFile(t, root, rel, []byte("contains needle"))

	sched, err := rabbitsearch.Search(root, []byte("needle"))
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	got := drainAll(t, sched)
	sched.Close()

	if len(got) != 1 {
		t.Fatalf("got %v, want exactly one match", got)
	}

	path := got[0]
	if !strings.HasSuffix(path, "/match.txt") {
		t.Fatalf("got %q, want suffix /match.txt", path)
	}

	// ReconstructPath writes one '/' per node in the chain, including the
	// mandatory leading separator (path.go): 26 named directory levels plus
	// match.txt itself is 27 nodes, hence 27 separators.
	const wantSeparators = 27
	if got := strings.Count(path, "/"); got != wantSeparators {
		t.Fatalf("got %d separators in %q, want %d", got, path, wantSeparators)
	}
}
