package mayo

import (
	"io"

	"mayo-go/field"
)

// Sign produces a detached MAYO signature over message under csk (4.F).
// On ctr=0 the salt is drawn from rng; every subsequent retry derives a
// fresh salt deterministically from (sk_seed, msg_digest, ctr) so the
// whole attempt sequence stays reproducible from the randomness consumed
// on the very first draw.
func (mayo *Mayo) Sign(csk CompactSecretKey, message []byte, rng io.Reader) (Signature, error) {
	p := mayo.params

	esk, err := mayo.ExpandSecretKey(csk)
	if err != nil {
		return Signature{}, err
	}
	cpk, err := mayo.DerivePublicKey(csk)
	if err != nil {
		return Signature{}, err
	}
	pkDigest := shake256(p.DigestBytes, cpk.Bytes())
	msgDigest := shake256(p.DigestBytes, message)

	salt := make([]byte, p.SaltBytes)
	if err := fillRandom(rng, salt); err != nil {
		return Signature{}, err
	}

	ring := newMayoRing(mayo.field, p)
	vecBytes := (p.V + 1) / 2

	for ctr := 0; ctr < mayo.retryCap; ctr++ {
		ctrByte := []byte{byte(ctr)}
		if ctr > 0 {
			salt = shake256(p.SaltBytes, csk.SeedSK, msgDigest, ctrByte)
		}

		t := decodeVec(p.M, shake256(p.MBytes, msgDigest, salt, pkDigest))

		vRaw := shake256(p.K*vecBytes, csk.SeedSK, msgDigest, salt, ctrByte)
		v := make([][]byte, p.K)
		for a := 0; a < p.K; a++ {
			v[a] = decodeVec(p.V, vRaw[a*vecBytes:(a+1)*vecBytes])
		}

		mFamily := computeM(mayo.field, v, esk.L)
		vpv := computeVPV(mayo.field, v, esk.P1)

		y := ring.reduceToTarget(vpv, t)
		a := ring.buildLinearSystem(mFamily, p.O)

		x, ok := sampleSolution(mayo.field, a, y, p.K, p.O)
		if !ok {
			continue
		}

		sFlat := make([]byte, 0, p.N*p.K)
		for i := 0; i < p.K; i++ {
			xi := x[i*p.O : (i+1)*p.O]
			ox := matVecMul(mayo.field, esk.O, xi)
			sFlat = append(sFlat, field.AddVec(v[i], ox)...)
			sFlat = append(sFlat, xi...)
		}

		return Signature{Salt: salt, SBytes: encodeVec(sFlat)}, nil
	}

	return Signature{}, errSigningExhausted(mayo.retryCap)
}

// APISign is a convenience wrapper returning the wire-encoded signature
// bytes directly, matching the scheme's compact-signature convention.
func (mayo *Mayo) APISign(message []byte, csk CompactSecretKey, rng io.Reader) ([]byte, error) {
	sig, err := mayo.Sign(csk, message, rng)
	if err != nil {
		return nil, err
	}
	return sig.Bytes(), nil
}
