package mayo

import "mayo-go/field"

// ctByteEq returns 0xFF if a == b, else 0x00.
func ctByteEq(a, b byte) byte {
	diff := uint32(a) ^ uint32(b)
	diff |= diff >> 1
	diff |= diff >> 2
	diff |= diff >> 4
	return byte(diff&1 - 1)
}

// ctByteNonZero returns 0xFF if b != 0, else 0x00.
func ctByteNonZero(b byte) byte {
	return ^ctByteEq(b, 0)
}

// ctSelect returns a if mask is 0xFF, b if mask is 0x00.
func ctSelect(mask, a, b byte) byte {
	return (mask & a) | (^mask & b)
}

// ctIntGreater returns 0xFF if a > b, else 0x00, without branching on the
// comparison outcome.
func ctIntGreater(a, b int) byte {
	diff := int64(b) - int64(a)
	return byte(diff >> 63)
}

// ctIntEq returns 0xFF if a == b, else 0x00, without branching on the
// comparison outcome (both inputs may depend on secret matrix content via
// the tracked pivot row).
func ctIntEq(a, b int) byte {
	diff := uint64(int64(a) ^ int64(b))
	diff |= diff >> 32
	diff |= diff >> 16
	diff |= diff >> 8
	diff |= diff >> 4
	diff |= diff >> 2
	diff |= diff >> 1
	return byte(diff&1 - 1)
}

// echelonForm reduces a in place to row echelon form with leading ones,
// working column by column: for each pivot column it builds the pivot row
// out of every candidate row via a mask (so which row actually held the
// pivot is never branched on), scales it by the pivot's inverse, writes
// it back into the tracked pivot slot, and eliminates every row below. The
// field's table-driven Gf16Inv/Gf16Mul keep all value-dependent lookups
// over public (non-secret) tables (4.F, 8. constant-time invariants).
//
// This is a scalar, row-major transliteration of the bitsliced algorithm:
// correctness matters here far more than matching the original's u64
// packing trick, and a scalar fallback is explicitly permitted.
func echelonForm(f *field.Field, a [][]byte) {
	nrows := len(a)
	if nrows == 0 {
		return
	}
	ncols := len(a[0])
	pivotRow := 0

	pivotRowVals := make([]byte, ncols)
	scaledPivotRow := make([]byte, ncols)

	for pivotCol := 0; pivotCol < ncols; pivotCol++ {
		lowerBound := max(0, pivotCol+nrows-ncols)
		upperBound := min(nrows-1, pivotCol)

		for j := range pivotRowVals {
			pivotRowVals[j] = 0
		}
		var pivotIsZero byte = 0xFF

		for row := lowerBound; row <= upperBound; row++ {
			isPivotRow := ctIntEq(row, pivotRow)
			belowPivotRow := ctIntGreater(row, pivotRow)
			sel := isPivotRow | (belowPivotRow & pivotIsZero)
			for j := 0; j < ncols; j++ {
				pivotRowVals[j] ^= sel & a[row][j]
			}
			pivotIsZero = ctByteEq(pivotRowVals[pivotCol], 0)
		}

		// Gf16Inv(0) reads the table's zero entry, which is left at its
		// zero-value default, so this never needs to branch on whether a
		// pivot was actually found.
		inverse := f.Gf16Inv(pivotRowVals[pivotCol])
		for j := range scaledPivotRow {
			scaledPivotRow[j] = f.Gf16Mul(pivotRowVals[j], inverse)
		}

		for row := lowerBound; row <= upperBound; row++ {
			doCopy := ctIntEq(row, pivotRow) & ^pivotIsZero
			for col := 0; col < ncols; col++ {
				a[row][col] = ctSelect(doCopy, scaledPivotRow[col], a[row][col])
			}
		}

		for row := lowerBound; row < nrows; row++ {
			// belowPivot & 1 turns the mask into the GF(16) element 0 or
			// 1, so multiplying by it is a branch-free select between
			// "eliminate" and "skip".
			belowPivot := ctIntGreater(row, pivotRow) & 1
			elim := f.Gf16Mul(belowPivot, a[row][pivotCol])
			for col := 0; col < ncols; col++ {
				a[row][col] ^= f.Gf16Mul(elim, scaledPivotRow[col])
			}
		}

		pivotRow += int(^pivotIsZero & 1)
	}
}
