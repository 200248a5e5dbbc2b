package mayo

import (
	"reflect"
	"testing"

	"mayo-go/field"
)

func TestTransposeMatrixForSquareMatrix(t *testing.T) {
	A := [][]byte{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	expected := [][]byte{
		{1, 4, 7},
		{2, 5, 8},
		{3, 6, 9},
	}

	if result := transposeMatrix(A); !reflect.DeepEqual(result, expected) {
		t.Error("transpose failed", result)
	}
}

func TestTransposeMatrixForNonSquareMatrix(t *testing.T) {
	A := [][]byte{
		{1, 2, 3},
		{4, 5, 6},
	}
	expected := [][]byte{
		{1, 4},
		{2, 5},
		{3, 6},
	}

	if result := transposeMatrix(A); !reflect.DeepEqual(result, expected) {
		t.Error("transpose failed", result)
	}
}

func TestMatVecMul(t *testing.T) {
	f := field.InitField()
	matrix := [][]byte{
		{1, 2},
		{3, 4},
	}
	v := []byte{1, 1}

	expected := make([]byte, 2)
	for i, row := range matrix {
		var acc byte
		for j, a := range row {
			acc ^= f.Gf16Mul(a, v[j])
		}
		expected[i] = acc
	}

	if result := matVecMul(f, matrix, v); !reflect.DeepEqual(result, expected) {
		t.Error("matVecMul failed", result, expected)
	}
}

func TestVecMatMulAgreesWithMatVecMulOfTranspose(t *testing.T) {
	f := field.InitField()
	matrix := [][]byte{
		{1, 2, 3},
		{4, 5, 6},
	}
	v := []byte{1, 2}

	left := vecMatMul(f, v, matrix)
	right := matVecMul(f, transposeMatrix(matrix), v)

	if !reflect.DeepEqual(left, right) {
		t.Error("v*M should equal M^T*v", left, right)
	}
}

func TestSymmetrizeUpperKeepsDiagonalZerosBelow(t *testing.T) {
	m := [][]byte{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	out := symmetrizeUpper(m)

	for i := 0; i < 3; i++ {
		for j := 0; j < i; j++ {
			if out[i][j] != 0 {
				t.Errorf("expected zero strictly below the diagonal at (%d,%d), got %d", i, j, out[i][j])
			}
		}
	}
	if out[0][0] != 1 || out[1][1] != 5 || out[2][2] != 9 {
		t.Error("diagonal should be unchanged", out)
	}
	if out[0][1] != m[0][1]^m[1][0] {
		t.Error("off-diagonal should fold in the transpose", out[0][1])
	}
}

func TestUpperTriangleFlatRoundTrip(t *testing.T) {
	m := fillUpperTriangleFrom(4, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	flat := upperTriangleFlat(m)
	back := fillUpperTriangleFrom(4, flat)

	if !reflect.DeepEqual(m, back) {
		t.Error("upper-triangle flatten/restore round trip failed", m, back)
	}
}

func TestPackEquationMajorUpperTriangleRoundTrip(t *testing.T) {
	mats := [][][]byte{
		fillUpperTriangleFrom(3, []byte{1, 2, 3, 4, 5, 6}),
		fillUpperTriangleFrom(3, []byte{7, 8, 9, 10, 11, 12}),
		fillUpperTriangleFrom(3, []byte{13, 14, 15, 0, 1, 2}),
	}

	packed := packEquationMajorUpperTriangle(mats, 3)
	back := unpackEquationMajorUpperTriangle(packed, 3, 3)

	if !reflect.DeepEqual(mats, back) {
		t.Error("equation-major upper-triangle pack round trip failed")
	}
}

func TestPackEquationMajorDenseRoundTrip(t *testing.T) {
	mats := [][][]byte{
		{{1, 2, 3}, {4, 5, 6}},
		{{7, 8, 9}, {10, 11, 12}},
	}

	packed := packEquationMajorDense(mats, 2, 3)
	back := unpackEquationMajorDense(packed, 2, 2, 3)

	if !reflect.DeepEqual(mats, back) {
		t.Error("equation-major dense pack round trip failed")
	}
}
