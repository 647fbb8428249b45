package rabbitsearch

import (
	"sync"
	"testing"
)

func Test_Arena_New_Publishes_Name_And_Parent(t *testing.T) {
	t.Parallel()

	var a Arena

	root := a.New([]byte("root"), nil)
	child := a.New([]byte("child.txt"), root)

	if string(child.Name()) != "child.txt" {
		t.Fatalf("got name %q", child.Name())
	}

	if child.Parent() != root {
		t.Fatal("expected child's parent to be root")
	}

	if root.Parent() != nil {
		t.Fatal("expected root's parent to be nil")
	}
}

func Test_Arena_New_Copies_Name_Bytes(t *testing.T) {
	t.Parallel()

	var a Arena

	buf := []byte("mutable")
	node := a.New(buf, nil)

	buf[0] = 'X'

	if string(node.Name()) != "mutable" {
		t.Fatalf("expected arena to own a copy, got %q", node.Name())
	}
}

func Test_Arena_Publish_Is_Safe_For_Concurrent_Writers(t *testing.T) {
	t.Parallel()

	var a Arena

	const n = 2000

	var wg sync.WaitGroup

	wg.Add(n)

	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()

			a.New([]byte{byte(i % 256)}, nil)
		}(i)
	}

	wg.Wait()

	count := 0
	for node := a.tail.Load(); node != nil; node = node.previous {
		count++
	}

	if count != n {
		t.Fatalf("expected %d published nodes, walked %d", n, count)
	}
}

func Test_ReconstructPath_Joins_Parent_Chain(t *testing.T) {
	t.Parallel()

	var a Arena

	root := a.New([]byte("root"), nil)
	dir := a.New([]byte("sub"), root)
	file := a.New([]byte("leaf.txt"), dir)

	got := PathString(file)
	want := "/root/sub/leaf.txt"

	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func Test_ReconstructPath_Reports_Buffer_Too_Small(t *testing.T) {
	t.Parallel()

	var a Arena

	node := a.New([]byte("somewhat-long-name.txt"), nil)

	_, err := ReconstructPath(node, make([]byte, 3), '\n')
	if err != ErrBufferTooSmall {
		t.Fatalf("expected ErrBufferTooSmall, got %v", err)
	}
}
