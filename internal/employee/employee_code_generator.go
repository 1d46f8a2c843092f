package employee

import (
	"context"
	"math/rand/v2"

	employeeerrors "go-hrms/internal/employee/errors"
)

const (
	MinEmployeeCode = 1000
	MaxEmployeeCode = 9999

	// MaxCodeAttempts bounds the sampling loop so a saturated code space
	// fails fast instead of spinning.
	MaxCodeAttempts = 10000
)

// CodeChecker is the existence predicate the generator consults.
type CodeChecker interface {
	ExistsByCode(ctx context.Context, code int) (bool, error)
}

// CodeGenerator picks random four digit employee codes that are free at call
// time. Two concurrent callers can still pick the same code; the unique index
// on employee_code is what finally rejects one of them.
type CodeGenerator struct {
	checker     CodeChecker
	intN        func(n int) int
	maxAttempts int
}

type CodeGeneratorOption func(*CodeGenerator)

// WithIntN replaces the random source; intN must return a value in [0, n).
func WithIntN(intN func(n int) int) CodeGeneratorOption {
	return func(g *CodeGenerator) { g.intN = intN }
}

func WithMaxAttempts(n int) CodeGeneratorOption {
	return func(g *CodeGenerator) { g.maxAttempts = n }
}

func NewCodeGenerator(checker CodeChecker, opts ...CodeGeneratorOption) *CodeGenerator {
	g := &CodeGenerator{
		checker:     checker,
		intN:        rand.IntN,
		maxAttempts: MaxCodeAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *CodeGenerator) Generate(ctx context.Context) (int, error) {
	span := MaxEmployeeCode - MinEmployeeCode + 1

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		code := MinEmployeeCode + g.intN(span)
		exists, err := g.checker.ExistsByCode(ctx, code)
		if err != nil {
			return 0, err
		}
		if !exists {
			return code, nil
		}
	}

	return 0, employeeerrors.ErrCodeCapacityExceeded
}
