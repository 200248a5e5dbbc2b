package mayo

import "mayo-go/field"

// computeL computes, for each of the m equations, L_i = (P1_i + P1_i^T)*O +
// P2_i (v x o). P1_i is stored dense with zero strictly below the diagonal,
// so P1_i + P1_i^T mirrors its upper triangle below the diagonal and, in
// characteristic 2, has a zero diagonal (4.E).
func computeL(f *field.Field, p1, p2 [][][]byte, o [][]byte) [][][]byte {
	l := make([][][]byte, len(p1))
	for i := range p1 {
		sym := addMatrices(p1[i], transposeMatrix(p1[i]))
		l[i] = addMatrices(f.MultiplyMatrices(sym, o), p2[i])
	}
	return l
}

// computeP3 computes, for each of the m equations, P3_i = O^T*(P1_i*O +
// P2_i) (o x o). The oil-oil term is defined this way precisely so it
// cancels against the hidden quadratic map's own oil-oil contribution.
func computeP3(f *field.Field, p1, p2 [][][]byte, o [][]byte) [][][]byte {
	oT := transposeMatrix(o)
	p3 := make([][][]byte, len(p1))
	for i := range p1 {
		p2Updated := addMatrices(f.MultiplyMatrices(p1[i], o), p2[i])
		p3[i] = f.MultiplyMatrices(oT, p2Updated)
	}
	return p3
}

// computeM computes, for each of the m equations, M_i = rows * quad_i,
// where rows is k x c and quad_i is c x o. Used to build the M matrices
// (V*L) the signer linearizes against the oil unknowns.
func computeM(f *field.Field, rows [][]byte, quad [][][]byte) [][][]byte {
	m := make([][][]byte, len(quad))
	for i := range quad {
		m[i] = f.MultiplyMatrices(rows, quad[i])
	}
	return m
}

// computeVPV computes, for each of the m equations, rows * quad_i *
// rows^T (a k x k matrix of bilinear evaluations). Signing calls this
// with the vinegar vectors and P1; verification calls it with the full
// assignment S and the assembled full quadratic map (4.F, 4.G) - the
// contraction is the same bilinear operation either way.
func computeVPV(f *field.Field, rows [][]byte, quad [][][]byte) [][][]byte {
	rowsT := transposeMatrix(rows)
	vpv := make([][][]byte, len(quad))
	for i := range quad {
		vpv[i] = f.MultiplyMatrices(f.MultiplyMatrices(rows, quad[i]), rowsT)
	}
	return vpv
}

// assembleFullQuadratic embeds P1_i (v x v, upper), P2_i (v x o) and P3_i
// (o x o, upper) into a single dense n x n matrix per equation, n = v+o:
// P1 in the top-left block, P2 in the top-right block, P3 in the
// bottom-right block, zero elsewhere. This is the hidden quadratic map's
// matrix form, used directly by evalPublicMap (4.G).
func assembleFullQuadratic(p1, p2, p3 [][][]byte, v, o int) [][][]byte {
	n := v + o
	full := make([][][]byte, len(p1))
	for i := range p1 {
		m := newMatrix(n, n)
		for r := 0; r < v; r++ {
			copy(m[r][:v], p1[i][r])
			copy(m[r][v:], p2[i][r])
		}
		for r := 0; r < o; r++ {
			copy(m[v+r][v:], p3[i][r])
		}
		full[i] = m
	}
	return full
}

// evalPublicMap evaluates the hidden quadratic map at the k rows of s (an
// n-vector each) and folds the resulting k x k bilinear matrices, per
// equation, through the whipping reduction against a zero target,
// producing the m-element evaluation vector used by Verify (4.G).
func evalPublicMap(rng *mayoRing, f *field.Field, s [][]byte, p1, p2, p3 [][][]byte, v, o int) []byte {
	full := assembleFullQuadratic(p1, p2, p3, v, o)
	sps := computeVPV(f, s, full)
	zero := make([]byte, rng.m)
	return rng.reduceToTarget(sps, zero)
}
