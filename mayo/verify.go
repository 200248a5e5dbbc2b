package mayo

import "bytes"

// Verify checks sig against message under cpk (4.G). The comparison uses
// a plain byte-slice equality check: both t and t' are derived from
// public data only, so there is nothing to hide in how long the compare
// takes (4.G, "comparison may short-circuit").
func (mayo *Mayo) Verify(cpk CompactPublicKey, message []byte, sig Signature) error {
	p := mayo.params

	epk, err := mayo.ExpandPublicKey(cpk)
	if err != nil {
		return err
	}
	if len(sig.Salt) != p.SaltBytes || len(sig.SBytes) != p.SigBytes-p.SaltBytes {
		return errInputLength("signature: malformed for this parameter set")
	}

	pkDigest := shake256(p.DigestBytes, cpk.Bytes())
	msgDigest := shake256(p.DigestBytes, message)
	t := decodeVec(p.M, shake256(p.MBytes, msgDigest, sig.Salt, pkDigest))

	sFlat := decodeVec(p.N*p.K, sig.SBytes)
	s := make([][]byte, p.K)
	for i := 0; i < p.K; i++ {
		s[i] = sFlat[i*p.N : (i+1)*p.N]
	}

	ring := newMayoRing(mayo.field, p)
	tPrime := evalPublicMap(ring, mayo.field, s, epk.P1, epk.P2, epk.P3, p.V, p.O)

	if !bytes.Equal(tPrime, t) {
		return ErrVerificationFailed
	}
	return nil
}

// APISignOpen is a convenience wrapper over Verify taking wire-encoded
// signature bytes. Unlike the combined-message convention this core's
// teacher codebase favors, MAYO signatures here are detached (salt ‖
// s_bytes only), so the original message must be supplied explicitly
// rather than recovered from the signature itself.
func (mayo *Mayo) APISignOpen(sigBytes []byte, message []byte, cpk CompactPublicKey) (bool, error) {
	sig, err := ParseSignature(mayo.params, sigBytes)
	if err != nil {
		return false, err
	}
	if err := mayo.Verify(cpk, message, sig); err != nil {
		if err == ErrVerificationFailed {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
