package mayo

import (
	"crypto/aes"
	"crypto/cipher"

	"golang.org/x/crypto/sha3"
)

// shake256 is the single XOF abstraction (4.B): it absorbs each of inputs
// in order and squeezes outputLength bytes. Every call site below uses a
// distinct, fixed-length input shape, so no domain-separation tag is
// needed beyond the shape itself (9. open questions).
func shake256(outputLength int, inputs ...[]byte) []byte {
	output := make([]byte, outputLength)

	h := sha3.NewShake256()
	for _, input := range inputs {
		_, _ = h.Write(input)
	}
	_, _ = h.Read(output)

	return output
}

// aes128ctr expands seed (the 16-byte public key seed) into l bytes of
// AES-128-CTR keystream against an all-zero IV. This is the deterministic
// expander for P1 || P2 (4.E step 2): the "ciphertext" is never decrypted,
// only used as pseudorandom output.
func aes128ctr(seed []byte, l int) []byte {
	var nonce [16]byte
	block, err := aes.NewCipher(seed)
	if err != nil {
		// seed is always exactly 16 bytes (PkSeedBytes); a key-size
		// mismatch here is a parameter bug, not a runtime condition.
		panic(err)
	}
	ctr := cipher.NewCTR(block, nonce[:])
	dst := make([]byte, l)
	ctr.XORKeyStream(dst, dst)
	return dst
}
