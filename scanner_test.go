package rabbitsearch

import (
	"bytes"
	"math/rand"
	"testing"
)

func Test_Find_Matches_Naive_Reference_On_Random_Inputs(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	alphabet := []byte("ab") // deliberately narrow to force repeated bytes

	needleLens := []int{0, 1, 2, 3, 63, 64, 65, 127, 128, 129}

	for trial := 0; trial < 200; trial++ {
		haystack := randomBytes(rng, alphabet, rng.Intn(400))

		for _, nl := range needleLens {
			if nl > len(haystack) {
				continue
			}

			needle := randomBytes(rng, alphabet, nl)

			got := Find(haystack, needle)
			want := bytes.Contains(haystack, needle)

			if got != want {
				t.Fatalf("Find mismatch: haystack=%q needle=%q got=%v want=%v", haystack, needle, got, want)
			}
		}
	}
}

func Test_Find_Empty_Needle_Matches_Any_Nonempty_Haystack(t *testing.T) {
	t.Parallel()

	if !Find([]byte("anything"), nil) {
		t.Fatal("expected empty needle to match")
	}
}

func Test_Find_Needle_Longer_Than_Haystack_Never_Matches(t *testing.T) {
	t.Parallel()

	if Find([]byte("hi"), []byte("hello")) {
		t.Fatal("expected no match")
	}
}

func Test_Find_Handles_Embedded_NUL_Bytes(t *testing.T) {
	t.Parallel()

	haystack := []byte("abc\x00def\x00ghi")
	needle := []byte("\x00def\x00")

	if !Find(haystack, needle) {
		t.Fatal("expected match spanning NUL bytes")
	}
}

func Test_Find_Matches_At_Every_SIMD_Window_Boundary(t *testing.T) {
	t.Parallel()

	for _, isa := range []ISA{ISAGeneric, ISANEON, ISAAVX2, ISAAVX512} {
		prev := activeISA
		SetISA(isa)

		width := isa.windowWidth()
		for _, offset := range []int{0, width - 1, width, width + 1, 2*width - 1} {
			haystack := bytes.Repeat([]byte{'x'}, offset+10)
			needle := []byte("NEEDLE")
			copy(haystack[offset:], needle)

			if !Find(haystack, needle) {
				t.Fatalf("isa=%v offset=%d: expected match", isa, offset)
			}
		}

		SetISA(prev)
	}
}

func Test_ParseISA_Round_Trips_String(t *testing.T) {
	t.Parallel()

	for _, isa := range []ISA{ISAGeneric, ISANEON, ISAAVX2, ISAAVX512} {
		got, ok := ParseISA(isa.String())
		if !ok || got != isa {
			t.Fatalf("ParseISA(%q) = %v, %v", isa.String(), got, ok)
		}
	}

	if _, ok := ParseISA("bogus"); ok {
		t.Fatal("expected ParseISA to reject unknown ISA name")
	}
}

func Test_ChooseAnchors_Picks_Distinct_Bytes_When_Possible(t *testing.T) {
	t.Parallel()

	first, mid, last := chooseAnchors([]byte("abcdefgh"))
	if first == mid || mid == last || first == last {
		t.Fatalf("expected distinct anchor offsets, got %d %d %d", first, mid, last)
	}
}

func Test_ChooseAnchors_Degrades_Gracefully_On_Repetitive_Needle(t *testing.T) {
	t.Parallel()

	// Should not panic or loop forever even though every byte is identical.
	chooseAnchors([]byte("aaaaaaaa"))
}

func randomBytes(rng *rand.Rand, alphabet []byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[rng.Intn(len(alphabet))]
	}

	return out
}
