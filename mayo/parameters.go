package mayo

import "fmt"

// SecurityLevel selects one of the four NIST categories a Parameters
// record may be built for.
type SecurityLevel int

const (
	LevelOne SecurityLevel = iota + 1
	LevelTwo
	LevelThree
	LevelFive
)

// Parameters is the immutable constant bundle for one MAYO parameter set.
// Rather than specializing the core at compile time per set (four
// monomorphized copies of the algorithm), every operation in this package
// threads a Parameters value through, trading some peak throughput for a
// single code path that is easier to keep constant-time and correct. See
// DESIGN.md for the rationale.
type Parameters struct {
	Name string

	N, M, O, K, V int // V = N - O

	SaltBytes   int
	DigestBytes int
	PkSeedBytes int
	SkSeedBytes int

	OBytes  int // packed V*O nibbles
	MBytes  int // packed M nibbles
	P1Bytes int // packed upper-triangular V*V*M nibbles
	P2Bytes int // packed V*O*M nibbles
	P3Bytes int // packed upper-triangular O*O*M nibbles

	CskBytes int
	CpkBytes int
	SigBytes int

	ACols int // columns of the signer's linear system, K*O + 1

	// FTail holds the four low-degree coefficients of the sparse
	// polynomial f(X) = X^M + FTail[3]*X^3 + FTail[2]*X^2 + FTail[1]*X + FTail[0]
	// defining the whipping ring R_M = GF(16)[X]/(f(X)).
	FTail [4]byte
}

var (
	Mayo1 = Parameters{
		Name: "MAYO_1",
		N: 86, M: 78, O: 8, K: 10, V: 86 - 8,
		SaltBytes: 24, DigestBytes: 32, PkSeedBytes: 16, SkSeedBytes: 24,
		OBytes: 312, MBytes: 39, P1Bytes: 120159, P2Bytes: 24336, P3Bytes: 1404,
		CskBytes: 24, CpkBytes: 1420, SigBytes: 454,
		ACols: 10*8 + 1,
		FTail: [4]byte{8, 1, 1, 0},
	}
	Mayo2 = Parameters{
		Name: "MAYO_2",
		N: 81, M: 64, O: 17, K: 4, V: 81 - 17,
		SaltBytes: 24, DigestBytes: 32, PkSeedBytes: 16, SkSeedBytes: 24,
		OBytes: 544, MBytes: 32, P1Bytes: 66560, P2Bytes: 34816, P3Bytes: 4896,
		CskBytes: 24, CpkBytes: 4912, SigBytes: 186,
		ACols: 4*17 + 1,
		FTail: [4]byte{8, 0, 2, 8},
	}
	Mayo3 = Parameters{
		Name: "MAYO_3",
		N: 118, M: 108, O: 10, K: 11, V: 118 - 10,
		SaltBytes: 32, DigestBytes: 48, PkSeedBytes: 16, SkSeedBytes: 32,
		OBytes: 540, MBytes: 54, P1Bytes: 317844, P2Bytes: 58320, P3Bytes: 2970,
		CskBytes: 32, CpkBytes: 2986, SigBytes: 681,
		ACols: 11*10 + 1,
		FTail: [4]byte{8, 0, 1, 7},
	}
	Mayo5 = Parameters{
		Name: "MAYO_5",
		N: 154, M: 142, O: 12, K: 12, V: 154 - 12,
		SaltBytes: 40, DigestBytes: 64, PkSeedBytes: 16, SkSeedBytes: 40,
		OBytes: 852, MBytes: 71, P1Bytes: 720863, P2Bytes: 120984, P3Bytes: 5538,
		CskBytes: 40, CpkBytes: 5554, SigBytes: 964,
		ACols: 12*12 + 1,
		FTail: [4]byte{4, 0, 8, 1},
	}
)

// ParametersFor returns the constant bundle for a security level.
func ParametersFor(level SecurityLevel) (Parameters, error) {
	switch level {
	case LevelOne:
		return Mayo1, nil
	case LevelTwo:
		return Mayo2, nil
	case LevelThree:
		return Mayo3, nil
	case LevelFive:
		return Mayo5, nil
	default:
		return Parameters{}, fmt.Errorf("mayo: unknown security level %d", level)
	}
}
