package mayo

import "mayo-go/field"

// sampleSolution solves A*x = y for the k*o oil unknowns x, given the m x
// (k*o) coefficient matrix a and the m-element target y. Free variables
// (columns with no pivot) are left at zero rather than randomized: 4.F
// fixes them for determinism instead of drawing an extra randomizer
// vector, unlike the upstream construction this core is modeled on.
//
// Returns the solution and true, or nil and false if the system turns out
// to be singular (the caller is expected to retry with fresh vinegar).
func sampleSolution(f *field.Field, a [][]byte, y []byte, k, o int) ([]byte, bool) {
	m := len(a)
	ko := k * o

	augmented := appendVecToMatrix(a, y)
	echelonForm(f, augmented)

	var fullRank byte
	for c := 0; c < ko; c++ {
		fullRank |= augmented[m-1][c]
	}
	if fullRank == 0 {
		return nil, false
	}

	x := make([]byte, ko)
	for row := m - 1; row >= 0; row-- {
		var finished byte
		for col := row; col < ko; col++ {
			isPivotCol := ctByteNonZero(augmented[row][col]) &^ finished
			u := isPivotCol & augmented[row][ko]
			x[col] ^= u

			for i := 0; i < row; i++ {
				augmented[i][ko] ^= f.Gf16Mul(u, augmented[i][col])
			}

			finished |= isPivotCol
		}
	}

	return x, true
}
