package mayo

import (
	"reflect"
	"testing"

	"mayo-go/field"
)

func TestShiftAndReduceAppliesFTailOnOverflow(t *testing.T) {
	f := field.InitField()
	r := &mayoRing{m: 4, k: 2, fTail: [4]byte{1, 2, 3, 4}, field: f}

	elem := []byte{5, 6, 7, 8}
	out := r.shiftAndReduce(elem)

	want := []byte{
		0 ^ f.Gf16Mul(8, 1),
		5 ^ f.Gf16Mul(8, 2),
		6 ^ f.Gf16Mul(8, 3),
		7 ^ f.Gf16Mul(8, 4),
	}
	if !reflect.DeepEqual(out, want) {
		t.Error("shiftAndReduce mismatch", out, want)
	}
}

func TestWalkPairsVisitsEveryUpperPairOnce(t *testing.T) {
	r := &mayoRing{k: 3}
	var seen [][2]int
	r.walkPairs(func(a, b int) { seen = append(seen, [2]int{a, b}) })

	if len(seen) != 6 {
		t.Fatalf("expected 6 pairs for k=3, got %d", len(seen))
	}
	want := [][2]int{{2, 2}, {1, 1}, {1, 2}, {0, 0}, {0, 1}, {0, 2}}
	if !reflect.DeepEqual(seen, want) {
		t.Error("walkPairs order mismatch", seen, want)
	}
}

func TestReduceToTargetAddsMirroredOffDiagonalPairs(t *testing.T) {
	f := field.InitField()
	r := &mayoRing{m: 1, k: 2, fTail: [4]byte{0, 0, 0, 0}, field: f}

	bilinear := [][][]byte{
		{{1, 2}, {3, 4}},
	}
	target := []byte{0}

	got := r.reduceToTarget(bilinear, target)

	// With m=1 and an all-zero f_m tail, X reduces to 0, so every shift
	// clears the accumulator and only the last visited pair, (0,1),
	// survives: an off-diagonal pair counted from both sides, 2 ^ 3.
	want := byte(2) ^ byte(3)
	if got[0] != want {
		t.Error("reduceToTarget mismatch", got[0], want)
	}
}

func TestBuildLinearSystemColumnsMatchMFamily(t *testing.T) {
	f := field.InitField()
	r := &mayoRing{m: 1, k: 2, fTail: [4]byte{0, 0, 0, 0}, field: f}

	// k=2, o=1: a single equation's M matrix is a 2x1 matrix.
	mFamily := [][][]byte{
		{{5}, {9}},
	}

	a := r.buildLinearSystem(mFamily, 1)

	// Column layout is k*o wide: unknown-block 0's column gets M's row 0
	// (from pair (0,0)) plus M's row 1 contributed by the (0,1) cross
	// pair; unknown-block 1's column gets M's row 1 (from pair (1,1))
	// plus M's row 0 from that same cross pair.
	if len(a) != 1 || len(a[0]) != 2 {
		t.Fatalf("expected a 1x2 matrix, got %dx%d", len(a), len(a[0]))
	}

	// With m=1 and an all-zero f_m tail every shift clears the
	// accumulators, so only the last visited pair, (0,1), survives:
	// block 0 holds M's row 1 and block 1 holds M's row 0.
	if a[0][0] != 9 || a[0][1] != 5 {
		t.Error("buildLinearSystem column mismatch", a[0])
	}
}

func TestRingColumnExtractsAcrossEquations(t *testing.T) {
	mFamily := [][][]byte{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7, 8}},
	}

	col := ringColumn(mFamily, 1, 0)
	want := []byte{3, 7}
	if !reflect.DeepEqual(col, want) {
		t.Error("ringColumn mismatch", col, want)
	}
}
