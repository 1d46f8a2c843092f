package employee_test

import (
	"context"
	"errors"
	"testing"

	"go-hrms/internal/employee"
	employeeerrors "go-hrms/internal/employee/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type setChecker struct {
	codes map[int]bool
	calls int
	err   error
}

func (s *setChecker) ExistsByCode(_ context.Context, code int) (bool, error) {
	s.calls++
	if s.err != nil {
		return false, s.err
	}
	return s.codes[code], nil
}

func TestCodeGenerator_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("code is four digits", func(t *testing.T) {
		gen := employee.NewCodeGenerator(&setChecker{})

		for i := 0; i < 200; i++ {
			code, err := gen.Generate(ctx)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, code, employee.MinEmployeeCode)
			assert.LessOrEqual(t, code, employee.MaxEmployeeCode)
		}
	})

	t.Run("never returns a taken code", func(t *testing.T) {
		taken := map[int]bool{}
		for code := employee.MinEmployeeCode; code <= employee.MaxEmployeeCode; code++ {
			if code%10 != 0 {
				taken[code] = true
			}
		}
		gen := employee.NewCodeGenerator(&setChecker{codes: taken})

		for i := 0; i < 500; i++ {
			code, err := gen.Generate(ctx)
			require.NoError(t, err)
			assert.False(t, taken[code], "generated taken code %d", code)
		}
	})

	t.Run("retries until a free code is found", func(t *testing.T) {
		picks := []int{0, 1, 2}
		i := 0
		checker := &setChecker{codes: map[int]bool{1000: true, 1001: true}}
		gen := employee.NewCodeGenerator(checker, employee.WithIntN(func(int) int {
			v := picks[i]
			i++
			return v
		}))

		code, err := gen.Generate(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1002, code)
		assert.Equal(t, 3, checker.calls)
	})

	t.Run("fails with capacity exceeded after bounded attempts", func(t *testing.T) {
		checker := &setChecker{codes: map[int]bool{1000: true}}
		gen := employee.NewCodeGenerator(checker,
			employee.WithIntN(func(int) int { return 0 }),
			employee.WithMaxAttempts(25),
		)

		_, err := gen.Generate(ctx)

		assert.ErrorIs(t, err, employeeerrors.ErrCodeCapacityExceeded)
		assert.Equal(t, 25, checker.calls)
	})

	t.Run("store error is returned as is", func(t *testing.T) {
		storeErr := errors.New("connection reset")
		gen := employee.NewCodeGenerator(&setChecker{err: storeErr})

		_, err := gen.Generate(ctx)

		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("cancelled context stops the loop", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		checker := &setChecker{}
		gen := employee.NewCodeGenerator(checker)

		_, err := gen.Generate(cctx)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, checker.calls)
	})
}
