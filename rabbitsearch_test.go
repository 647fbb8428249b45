package rabbitsearch_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	rabbitsearch "github.com/markovejnovic/rabbit-search"
)

func writeFile(t *testing.T, dir, name string, content []byte) {
	t.Helper()

	full := filepath.Join(dir, name)

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := os.WriteFile(full, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", full, err)
	}
}

func drainAll(t *testing.T, sched *rabbitsearch.Scheduler) []string {
	t.Helper()

	var got []string

	drainOnce := func() {
		for {
			res, ok := sched.TryNextResult()
			if !ok {
				return
			}

			got = append(got, rabbitsearch.PathString(res.Node))
		}
	}

	deadline := time.After(10 * time.Second)

	for sched.IsBusy() {
		drainOnce()

		select {
		case <-deadline:
			t.Fatal("search did not terminate in time")
		default:
		}
	}

	drainOnce()
	sched.Wait()
	drainOnce()

	sort.Strings(got)

	return got
}

func Test_Search_Finds_File_Containing_Needle(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "a.txt", []byte("hello world"))
	writeFile(t, root, "b.txt", []byte("goodbye"))

	sched, err := rabbitsearch.Search(root, []byte("world"), rabbitsearch.WithWorkers(2))
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	got := drainAll(t, sched)
	sched.Close()

	if len(got) != 1 || got[0] != "/a.txt" {
		t.Fatalf("got %v, want [/a.txt]", got)
	}
}

func Test_Search_Recurses_Into_Subdirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "top.txt", []byte("nope"))
	writeFile(t, root, "nested/deep/hit.txt", []byte("contains needle here"))
	writeFile(t, root, "nested/miss.txt", []byte("nothing"))

	sched, err := rabbitsearch.Search(root, []byte("needle"), rabbitsearch.WithWorkers(4))
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	got := drainAll(t, sched)
	sched.Close()

	if len(got) != 1 || got[0] != "/"+filepath.Join("nested", "deep", "hit.txt") {
		t.Fatalf("got %v", got)
	}
}

func Test_Search_Skips_Empty_Files(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "empty.txt", nil)

	sched, err := rabbitsearch.Search(root, []byte("x"))
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	got := drainAll(t, sched)
	sched.Close()

	if len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}

func Test_Search_Emits_File_Exactly_Equal_To_Needle(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "exact.txt", []byte("needle"))

	sched, err := rabbitsearch.Search(root, []byte("needle"))
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	got := drainAll(t, sched)
	sched.Close()

	if len(got) != 1 || got[0] != "/exact.txt" {
		t.Fatalf("got %v", got)
	}
}

func Test_Search_Does_Not_Follow_Symlinks(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	target := filepath.Join(root, "target.txt")
	writeFile(t, root, "target.txt", []byte("needle in target"))

	link := filepath.Join(root, "link.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	sched, err := rabbitsearch.Search(root, []byte("needle"))
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	got := drainAll(t, sched)
	sched.Close()

	if len(got) != 1 || got[0] != "/target.txt" {
		t.Fatalf("got %v, symlink should not have been followed", got)
	}
}

func Test_Search_Is_Idempotent_Across_Repeated_Runs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "a/one.txt", []byte("aneedleb"))
	writeFile(t, root, "b/two.txt", []byte("no match"))
	writeFile(t, root, "c/three.txt", []byte("needle again"))

	var runs [][]string

	for i := 0; i < 3; i++ {
		sched, err := rabbitsearch.Search(root, []byte("needle"))
		if err != nil {
			t.Fatalf("Search: %v", err)
		}

		runs = append(runs, drainAll(t, sched))
		sched.Close()
	}

	for i := 1; i < len(runs); i++ {
		if len(runs[i]) != len(runs[0]) {
			t.Fatalf("run %d produced %v, run 0 produced %v", i, runs[i], runs[0])
		}

		for j := range runs[0] {
			if runs[i][j] != runs[0][j] {
				t.Fatalf("run %d mismatch at %d: %v vs %v", i, j, runs[i], runs[0])
			}
		}
	}
}
