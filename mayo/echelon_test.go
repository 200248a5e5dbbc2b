package mayo

import (
	"testing"

	"mayo-go/field"
)

func TestCtByteEqAndNonZero(t *testing.T) {
	if ctByteEq(3, 3) != 0xFF {
		t.Error("ctByteEq(3,3) should be 0xFF")
	}
	if ctByteEq(3, 4) != 0x00 {
		t.Error("ctByteEq(3,4) should be 0x00")
	}
	if ctByteNonZero(0) != 0x00 {
		t.Error("ctByteNonZero(0) should be 0x00")
	}
	if ctByteNonZero(5) != 0xFF {
		t.Error("ctByteNonZero(5) should be 0xFF")
	}
}

func TestCtSelect(t *testing.T) {
	if got := ctSelect(0xFF, 7, 9); got != 7 {
		t.Error("ctSelect with 0xFF mask should return a", got)
	}
	if got := ctSelect(0x00, 7, 9); got != 9 {
		t.Error("ctSelect with 0x00 mask should return b", got)
	}
}

func TestCtIntGreaterAndEq(t *testing.T) {
	if ctIntGreater(5, 3) != 0xFF {
		t.Error("5 > 3 should be 0xFF")
	}
	if ctIntGreater(3, 5) != 0x00 {
		t.Error("3 > 5 should be 0x00")
	}
	if ctIntGreater(3, 3) != 0x00 {
		t.Error("3 > 3 should be 0x00")
	}
	if ctIntEq(3, 3) != 0xFF {
		t.Error("3 == 3 should be 0xFF")
	}
	if ctIntEq(3, 4) != 0x00 {
		t.Error("3 == 4 should be 0x00")
	}
}

func TestEchelonFormSolvesSimpleSystem(t *testing.T) {
	f := field.InitField()

	// x + y = 3, 2x + y = 1 over GF(16) (unique solution x=15, y=12):
	// row-reduce [A|b] and check that both pivots are leading ones and the
	// entry below the first pivot is cleared.
	a := [][]byte{
		{1, 1, 3},
		{2, 1, 1},
	}

	echelonForm(f, a)

	if a[0][0] != 1 || a[1][0] != 0 || a[1][1] != 1 {
		t.Error("echelonForm should leave leading ones on the pivot diagonal", a)
	}
}

func TestEchelonFormLeavesSingularRowsZero(t *testing.T) {
	f := field.InitField()

	a := [][]byte{
		{1, 1, 1},
		{1, 1, 1},
	}

	echelonForm(f, a)

	if a[1][0] != 0 || a[1][1] != 0 {
		t.Error("a dependent row should reduce to all zero", a[1])
	}
}
