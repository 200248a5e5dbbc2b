package mayo

// encodeVec packs a slice of GF(16) nibbles (one element per byte, only
// the low 4 bits significant) into half as many bytes, low nibble first.
func encodeVec(bytes []byte) []byte {
	encoded := make([]byte, (len(bytes)+1)/2)

	for i := 0; i < len(bytes)-1; i += 2 {
		encoded[i/2] = bytes[i+1]<<4 | bytes[i]&0xf
	}

	if (len(bytes) % 2) == 1 {
		encoded[(len(bytes)-1)/2] = bytes[len(bytes)-1] & 0xf
	}

	return encoded
}

// decodeVec unpacks n GF(16) nibbles (low nibble first) out of a packed
// byte string, returning one element per output byte.
func decodeVec(n int, byteString []byte) []byte {
	decoded := make([]byte, n)

	for i := 0; i < n/2; i++ {
		firstNibble := byteString[i] & 0xf
		secondNibble := byteString[i] >> 4

		decoded[i*2] = firstNibble
		decoded[i*2+1] = secondNibble
	}

	// If n is odd there is no second nibble present in the last byte.
	if n%2 == 1 {
		decoded[n-1] = byteString[n/2] & 0xf
	}

	return decoded
}

// decodeMatrix unpacks a packed byte slice into a rows x columns matrix
// of GF(16) nibbles, one element per byte, row-major.
func decodeMatrix(rows, columns int, bytes []byte) [][]byte {
	flat := decodeVec(rows*columns, bytes)

	matrix := make([][]byte, rows)
	for i := 0; i < rows; i++ {
		matrix[i] = flat[i*columns : (i+1)*columns]
	}

	return matrix
}

// encodeMatrix packs a rows x columns matrix of GF(16) nibbles into
// bytes, row-major, low nibble first. Each row is packed independently so
// an odd column count leaves a single zero padding nibble at the end of
// every row rather than bleeding into the next row (3. padding-nibble
// invariant).
func encodeMatrix(matrix [][]byte) []byte {
	if len(matrix) == 0 {
		return nil
	}
	rowBytes := (len(matrix[0]) + 1) / 2
	out := make([]byte, len(matrix)*rowBytes)
	for i, row := range matrix {
		copy(out[i*rowBytes:(i+1)*rowBytes], encodeVec(row))
	}
	return out
}
