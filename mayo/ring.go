package mayo

import "mayo-go/field"

// mayoRing implements the "whipping" ring R_m = GF16[X]/(f_m(X)), where
// f_m(X) = X^m + fTail[3]X^3 + fTail[2]X^2 + fTail[1]X + fTail[0]. A ring
// element is represented the same way everywhere in this file: as an
// m-length slice of GF(16) nibbles, one per signature equation, component
// i holding the coefficient of X^i.
type mayoRing struct {
	m     int
	k     int
	fTail [4]byte
	field *field.Field
}

func newMayoRing(f *field.Field, params Parameters) *mayoRing {
	return &mayoRing{m: params.M, k: params.K, fTail: params.FTail, field: f}
}

// shiftAndReduce multiplies a ring element by X and reduces the overflow
// coefficient through f_m's tail: X^m = fTail[0] + fTail[1]X + fTail[2]X^2
// + fTail[3]X^3 (4.C). For m < 4 only the tail coefficients below X^m are
// applied.
func (r *mayoRing) shiftAndReduce(elem []byte) []byte {
	top := elem[r.m-1]
	out := make([]byte, r.m)
	copy(out[1:], elem[:r.m-1])
	for j := 0; j < len(r.fTail) && j < r.m; j++ {
		out[j] ^= r.field.Gf16Mul(top, r.fTail[j])
	}
	return out
}

// pairVector extracts the length-m vector of per-equation values at
// position (a, b) out of a [m][k][k] family of bilinear matrices.
func pairVector(bilinear [][][]byte, a, b int) []byte {
	m := len(bilinear)
	out := make([]byte, m)
	for i := 0; i < m; i++ {
		out[i] = bilinear[i][a][b]
	}
	return out
}

// walkPairs calls visit once for every (a, b) with 0 <= a <= b < k, in the
// Horner order the whipping construction depends on: a descending from
// k-1 to 0, b ascending from a to k-1. The pair processed first ends up
// shifted by the most powers of X, matching the canonical f_m-reduction
// used throughout this ring (4.C, 4.F, 4.G).
func (r *mayoRing) walkPairs(visit func(a, b int)) {
	for a := r.k - 1; a >= 0; a-- {
		for b := a; b < r.k; b++ {
			visit(a, b)
		}
	}
}

// reduceToTarget folds a [m][k][k] family of bilinear evaluations (one
// k x k matrix per equation) through the whipping ring and XORs the
// result onto target, producing the m-element right-hand side used by
// both signing (4.F) and verification (4.G): Verify calls this with an
// all-zero target and compares the result directly against the message
// target.
func (r *mayoRing) reduceToTarget(bilinear [][][]byte, target []byte) []byte {
	acc := make([]byte, r.m)
	r.walkPairs(func(a, b int) {
		acc = r.shiftAndReduce(acc)
		term := pairVector(bilinear, a, b)
		if a != b {
			term = field.AddVec(term, pairVector(bilinear, b, a))
		}
		acc = field.AddVec(acc, term)
	})
	return field.AddVec(acc, target)
}

// buildLinearSystem constructs the signer's m x (k*o) coefficient matrix
// A directly from the M family (m[i] = V*L_i, a k x o matrix per
// equation): it runs the exact same Horner/shift schedule as
// reduceToTarget, but keeps k*o independent ring-element accumulators
// (one per oil unknown) instead of a single scalar one, shifting all of
// them together at each step and then folding in M's row b into the
// columns belonging to unknown-block a (and, when a != b, M's row a into
// unknown-block b's columns). Because the f_m reduction is GF(16)-linear,
// this is equivalent to reducing the whole system in one batch at the
// end, but lets the signer skip a bespoke batch-transpose step entirely.
func (r *mayoRing) buildLinearSystem(mFamily [][][]byte, o int) [][]byte {
	cols := r.k * o
	columns := make([][]byte, cols)
	for c := range columns {
		columns[c] = make([]byte, r.m)
	}

	r.walkPairs(func(a, b int) {
		for c := range columns {
			columns[c] = r.shiftAndReduce(columns[c])
		}
		for c := 0; c < o; c++ {
			mb := ringColumn(mFamily, b, c)
			columns[a*o+c] = field.AddVec(columns[a*o+c], mb)
		}
		if a != b {
			for c := 0; c < o; c++ {
				ma := ringColumn(mFamily, a, c)
				columns[b*o+c] = field.AddVec(columns[b*o+c], ma)
			}
		}
	})

	a := newMatrix(r.m, cols)
	for c := 0; c < cols; c++ {
		for i := 0; i < r.m; i++ {
			a[i][c] = columns[c][i]
		}
	}
	return a
}

// ringColumn extracts the length-m ring element made of mFamily[i][row][col]
// for i in 0..m: the M matrices are per-equation k x o matrices, and this
// reads one oil column of one k-row across every equation.
func ringColumn(mFamily [][][]byte, row, col int) []byte {
	m := len(mFamily)
	out := make([]byte, m)
	for i := 0; i < m; i++ {
		out[i] = mFamily[i][row][col]
	}
	return out
}
