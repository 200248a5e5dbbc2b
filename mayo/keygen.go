package mayo

import "io"

// expandP1P2 deterministically expands pk_seed into the m upper-
// triangular v x v matrices P1 and the m dense v x o matrices P2, via
// AES-128-CTR keystream reinterpreted as packed GF(16) nibbles (4.E
// step 2).
func (mayo *Mayo) expandP1P2(pkSeed []byte) (p1, p2 [][][]byte) {
	p := mayo.params
	raw := aes128ctr(pkSeed, p.P1Bytes+p.P2Bytes)
	p1 = unpackEquationMajorUpperTriangle(raw[:p.P1Bytes], p.M, p.V)
	p2 = unpackEquationMajorDense(raw[p.P1Bytes:], p.M, p.V, p.O)
	return p1, p2
}

// deriveFromSeedSK runs the seed-to-(pk_seed, O) expansion shared by
// CompactKeyGen, ExpandSecretKey and DerivePublicKey (4.E step 1).
func (mayo *Mayo) deriveFromSeedSK(seedSK []byte) (pkSeed []byte, o [][]byte) {
	p := mayo.params
	s := shake256(p.PkSeedBytes+p.OBytes, seedSK)
	pkSeed = s[:p.PkSeedBytes]
	o = decodeMatrix(p.V, p.O, s[p.PkSeedBytes:])
	return pkSeed, o
}

// publicKeyFromSeedSK computes the compact public key deterministically
// derived from seedSK, without touching any randomness (shared by
// CompactKeyGen and DerivePublicKey).
func (mayo *Mayo) publicKeyFromSeedSK(seedSK []byte) CompactPublicKey {
	p := mayo.params
	pkSeed, o := mayo.deriveFromSeedSK(seedSK)
	p1, p2 := mayo.expandP1P2(pkSeed)

	p3 := computeP3(mayo.field, p1, p2, o)
	p3Upper := make([][][]byte, len(p3))
	for i := range p3 {
		p3Upper[i] = symmetrizeUpper(p3[i])
	}

	return CompactPublicKey{
		PkSeed:  append([]byte(nil), pkSeed...),
		P3Bytes: packEquationMajorUpperTriangle(p3Upper, p.O),
	}
}

// CompactKeyGen draws a fresh sk_seed from rng and derives the matching
// compact key pair (4.E CompactGen).
func (mayo *Mayo) CompactKeyGen(rng io.Reader) (CompactPublicKey, CompactSecretKey, error) {
	seedSK := make([]byte, mayo.params.SkSeedBytes)
	if err := fillRandom(rng, seedSK); err != nil {
		return CompactPublicKey{}, CompactSecretKey{}, err
	}

	cpk := mayo.publicKeyFromSeedSK(seedSK)
	return cpk, CompactSecretKey{SeedSK: seedSK}, nil
}

// DerivePublicKey recomputes the compact public key matching csk,
// without drawing any new randomness (6. external interfaces, derive_pk).
func (mayo *Mayo) DerivePublicKey(csk CompactSecretKey) (CompactPublicKey, error) {
	if len(csk.SeedSK) != mayo.params.SkSeedBytes {
		return CompactPublicKey{}, errInputLength("secret key seed: want %d bytes, got %d", mayo.params.SkSeedBytes, len(csk.SeedSK))
	}
	return mayo.publicKeyFromSeedSK(csk.SeedSK), nil
}

// ExpandSecretKey computes the signer's working form of csk: O, P1 and
// L = (P1+P1^T)*O + P2 (4.E ExpandSK).
func (mayo *Mayo) ExpandSecretKey(csk CompactSecretKey) (*ExpandedSecretKey, error) {
	p := mayo.params
	if len(csk.SeedSK) != p.SkSeedBytes {
		return nil, errInputLength("secret key seed: want %d bytes, got %d", p.SkSeedBytes, len(csk.SeedSK))
	}

	pkSeed, o := mayo.deriveFromSeedSK(csk.SeedSK)
	p1, p2 := mayo.expandP1P2(pkSeed)
	l := computeL(mayo.field, p1, p2, o)

	return &ExpandedSecretKey{Params: p, O: o, P1: p1, L: l}, nil
}

// ExpandPublicKey regenerates P1 and P2 from pk_seed and unpacks P3 from
// cpk (4.E ExpandPK).
func (mayo *Mayo) ExpandPublicKey(cpk CompactPublicKey) (*ExpandedPublicKey, error) {
	p := mayo.params
	if len(cpk.PkSeed) != p.PkSeedBytes || len(cpk.P3Bytes) != p.P3Bytes {
		return nil, errInputLength("compact public key: malformed for this parameter set")
	}

	p1, p2 := mayo.expandP1P2(cpk.PkSeed)
	p3 := unpackEquationMajorUpperTriangle(cpk.P3Bytes, p.M, p.O)

	return &ExpandedPublicKey{Params: p, P1: p1, P2: p2, P3: p3}, nil
}
