// Package mayo implements the cryptographic core of the MAYO
// multivariate-quadratic signature scheme: GF(16) packed-matrix algebra,
// XOF-driven key expansion, constant-time signing via linear-system
// solving, and public-map evaluation for verification.
package mayo

import (
	"fmt"

	"mayo-go/field"
)

// defaultRetryCap bounds the signer's ctr loop (4.F); exceeding it returns
// a SigningExhausted error rather than looping forever.
const defaultRetryCap = 256

// Mayo is a parameter-set-bound instance of the scheme. It holds no
// secret state of its own: a Mayo value is safe to share and reuse across
// any number of independent key generations, signs, and verifications.
type Mayo struct {
	params   Parameters
	field    *field.Field
	retryCap int
}

// InitMayo builds a Mayo instance for one of the four NIST security
// levels, with the default retry cap (256).
func InitMayo(level SecurityLevel) (*Mayo, error) {
	params, err := ParametersFor(level)
	if err != nil {
		return nil, err
	}
	return NewMayo(params), nil
}

// NewMayo builds a Mayo instance from an explicit Parameters record,
// letting callers supply a non-standard set (e.g. in tests).
func NewMayo(params Parameters) *Mayo {
	return &Mayo{
		params:   params,
		field:    field.InitField(),
		retryCap: defaultRetryCap,
	}
}

// WithRetryCap overrides the signer's retry bound (4.F, §6 configuration).
func (mayo *Mayo) WithRetryCap(cap int) *Mayo {
	mayo.retryCap = cap
	return mayo
}

// Params returns the parameter bundle this instance was built with.
func (mayo *Mayo) Params() Parameters {
	return mayo.params
}

func (mayo *Mayo) String() string {
	return fmt.Sprintf("mayo(%s)", mayo.params.Name)
}
