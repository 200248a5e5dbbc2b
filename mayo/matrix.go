package mayo

import (
	"fmt"

	"mayo-go/field"
)

// newMatrix allocates a dense rows x cols matrix of GF(16) nibbles.
func newMatrix(rows, cols int) [][]byte {
	m := make([][]byte, rows)
	backing := make([]byte, rows*cols)
	for i := range m {
		m[i] = backing[i*cols : (i+1)*cols]
	}
	return m
}

// appendVecToMatrix appends b as a new last column of A.
func appendVecToMatrix(A [][]byte, b []byte) [][]byte {
	rows, cols := len(A), len(A[0])
	if rows != len(b) {
		panic(fmt.Sprintf("cannot append vector of length %d to matrix with %d rows", len(b), rows))
	}

	C := make([][]byte, rows)
	for i := 0; i < rows; i++ {
		C[i] = make([]byte, cols+1)
		copy(C[i], A[i])
		C[i][cols] = b[i]
	}

	return C
}

// extractVecFromMatrix splits off the last column of A as a vector.
func extractVecFromMatrix(A [][]byte) ([][]byte, []byte) {
	rows, cols := len(A), len(A[0])
	if cols < 1 {
		panic("cannot extract vector from matrix with no columns")
	}

	B := make([][]byte, rows)
	y := make([]byte, rows)

	for i, row := range A {
		B[i] = row[:cols-1]
		y[i] = row[cols-1]
	}

	return B, y
}

// transposeMatrix returns a new matrix with rows and columns swapped.
func transposeMatrix(A [][]byte) [][]byte {
	rows, cols := len(A), len(A[0])
	T := newMatrix(cols, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			T[j][i] = A[i][j]
		}
	}
	return T
}

// matVecMul computes M*v over GF(16): M is rows x cols, v has length cols.
func matVecMul(f *field.Field, matrix [][]byte, v []byte) []byte {
	out := make([]byte, len(matrix))
	for i, row := range matrix {
		var acc byte
		for j, a := range row {
			acc ^= f.Gf16Mul(a, v[j])
		}
		out[i] = acc
	}
	return out
}

// vecMatMul computes v*M over GF(16): v has length rows, M is rows x cols.
func vecMatMul(f *field.Field, v []byte, matrix [][]byte) []byte {
	if len(matrix) == 0 {
		return nil
	}
	cols := len(matrix[0])
	out := make([]byte, cols)
	for i, a := range v {
		if a == 0 {
			continue
		}
		row := matrix[i]
		for j, b := range row {
			out[j] ^= f.Gf16Mul(a, b)
		}
	}
	return out
}

// symmetrizeUpper returns UT(M + M^T): the diagonal is M's own diagonal,
// each strictly-upper entry (i<j) absorbs its mirrored lower entry via
// XOR, and everything strictly below the diagonal is zero. This is how
// a quadratic form's oil-oil cross term is folded into canonical upper-
// triangular storage at key generation (4.E).
func symmetrizeUpper(matrix [][]byte) [][]byte {
	size := len(matrix)
	out := newMatrix(size, size)
	for i := 0; i < size; i++ {
		out[i][i] = matrix[i][i]
		for j := i + 1; j < size; j++ {
			out[i][j] = matrix[i][j] ^ matrix[j][i]
		}
	}
	return out
}

// addMatrices XORs two equal-shaped matrices element-wise.
func addMatrices(a, b [][]byte) [][]byte {
	out := newMatrix(len(a), len(a[0]))
	for i := range a {
		for j := range a[i] {
			out[i][j] = a[i][j] ^ b[i][j]
		}
	}
	return out
}

// upperTriangleFlat flattens the i<=j entries of a square matrix, row-major.
func upperTriangleFlat(matrix [][]byte) []byte {
	size := len(matrix)
	out := make([]byte, 0, size*(size+1)/2)
	for i := 0; i < size; i++ {
		out = append(out, matrix[i][i:]...)
	}
	return out
}

// fillUpperTriangleFrom builds a size x size matrix whose i<=j entries come
// from flat (row-major) and whose i>j entries are zero.
func fillUpperTriangleFrom(size int, flat []byte) [][]byte {
	out := newMatrix(size, size)
	pos := 0
	for i := 0; i < size; i++ {
		n := size - i
		copy(out[i][i:], flat[pos:pos+n])
		pos += n
	}
	return out
}

// packEquationMajorUpperTriangle packs m upper-triangular size x size
// matrices, equation-major then row-major (6. byte layout): the outer
// dimension walks equations, the inner dimension walks upper-triangle
// positions row-major. The whole nibble stream is packed with a single
// encodeVec call, so only the very last byte (if the total count is odd)
// carries a padding nibble.
func packEquationMajorUpperTriangle(mats [][][]byte, size int) []byte {
	perEq := size * (size + 1) / 2
	flat := make([]byte, 0, len(mats)*perEq)
	for _, m := range mats {
		flat = append(flat, upperTriangleFlat(m)...)
	}
	return encodeVec(flat)
}

// unpackEquationMajorUpperTriangle inverts packEquationMajorUpperTriangle.
func unpackEquationMajorUpperTriangle(packed []byte, m, size int) [][][]byte {
	perEq := size * (size + 1) / 2
	flat := decodeVec(m*perEq, packed)

	out := make([][][]byte, m)
	for i := 0; i < m; i++ {
		out[i] = fillUpperTriangleFrom(size, flat[i*perEq:(i+1)*perEq])
	}
	return out
}

// packEquationMajorDense packs m dense rows x cols matrices, equation-major
// then row-major, as a single flat nibble stream (6. byte layout).
func packEquationMajorDense(mats [][][]byte, rows, cols int) []byte {
	flat := make([]byte, 0, len(mats)*rows*cols)
	for _, m := range mats {
		for _, row := range m {
			flat = append(flat, row...)
		}
	}
	return encodeVec(flat)
}

// unpackEquationMajorDense inverts packEquationMajorDense.
func unpackEquationMajorDense(packed []byte, m, rows, cols int) [][][]byte {
	flat := decodeVec(m*rows*cols, packed)

	out := make([][][]byte, m)
	for i := 0; i < m; i++ {
		out[i] = make([][]byte, rows)
		base := i * rows * cols
		for r := 0; r < rows; r++ {
			out[i][r] = flat[base+r*cols : base+(r+1)*cols]
		}
	}
	return out
}
