package mayo

import "golang.org/x/crypto/cryptobyte"

// CompactSecretKey is the wire form of a MAYO secret key: just sk_seed
// (3. data model). It is the only thing that needs to be kept secret and
// persisted between calls.
type CompactSecretKey struct {
	SeedSK []byte
}

// Bytes returns the wire encoding of k.
func (k CompactSecretKey) Bytes() []byte {
	out := make([]byte, len(k.SeedSK))
	copy(out, k.SeedSK)
	return out
}

// ParseCompactSecretKey validates and wraps a wire-format secret key.
func ParseCompactSecretKey(params Parameters, data []byte) (CompactSecretKey, error) {
	if len(data) != params.SkSeedBytes {
		return CompactSecretKey{}, errInputLength("compact secret key: want %d bytes, got %d", params.SkSeedBytes, len(data))
	}
	return CompactSecretKey{SeedSK: append([]byte(nil), data...)}, nil
}

// CompactPublicKey is the wire form of a MAYO public key: pk_seed ‖
// P3_bytes (6. byte layouts).
type CompactPublicKey struct {
	PkSeed  []byte
	P3Bytes []byte
}

// Bytes returns the wire encoding of k.
func (k CompactPublicKey) Bytes() []byte {
	var b cryptobyte.Builder
	b.AddBytes(k.PkSeed)
	b.AddBytes(k.P3Bytes)
	out, _ := b.Bytes()
	return out
}

// ParseCompactPublicKey validates and splits a wire-format public key.
func ParseCompactPublicKey(params Parameters, data []byte) (CompactPublicKey, error) {
	if len(data) != params.CpkBytes {
		return CompactPublicKey{}, errInputLength("compact public key: want %d bytes, got %d", params.CpkBytes, len(data))
	}
	s := cryptobyte.String(data)
	var pkSeed, p3 []byte
	if !s.ReadBytes(&pkSeed, params.PkSeedBytes) || !s.ReadBytes(&p3, params.P3Bytes) {
		return CompactPublicKey{}, errInputLength("compact public key: malformed")
	}
	return CompactPublicKey{PkSeed: pkSeed, P3Bytes: p3}, nil
}

// Signature is the wire form of a MAYO signature: salt ‖ s_bytes (3. data
// model, 6. byte layouts).
type Signature struct {
	Salt   []byte
	SBytes []byte
}

// Bytes returns the wire encoding of s.
func (s Signature) Bytes() []byte {
	var b cryptobyte.Builder
	b.AddBytes(s.Salt)
	b.AddBytes(s.SBytes)
	out, _ := b.Bytes()
	return out
}

// ParseSignature validates and splits a wire-format signature.
func ParseSignature(params Parameters, data []byte) (Signature, error) {
	if len(data) != params.SigBytes {
		return Signature{}, errInputLength("signature: want %d bytes, got %d", params.SigBytes, len(data))
	}
	s := cryptobyte.String(data)
	var salt, sBytes []byte
	if !s.ReadBytes(&salt, params.SaltBytes) || !s.ReadBytes(&sBytes, params.SigBytes-params.SaltBytes) {
		return Signature{}, errInputLength("signature: malformed")
	}
	return Signature{Salt: salt, SBytes: sBytes}, nil
}

// ExpandedSecretKey is the in-memory form a signer actually computes
// against: O (the secret oil basis), P1 (the m upper-triangular v x v
// matrices), and L = (P1+P1^T)*O + P2, the matrix of partial derivatives
// the signer linearizes against (3. data model, 4.E).
type ExpandedSecretKey struct {
	Params Parameters
	O      [][]byte
	P1     [][][]byte
	L      [][][]byte
}

// ExpandedPublicKey is the in-memory form a verifier evaluates against:
// the full (P1, P2, P3) triple (4.E, 4.G).
type ExpandedPublicKey struct {
	Params Parameters
	P1     [][][]byte
	P2     [][][]byte
	P3     [][][]byte
}
