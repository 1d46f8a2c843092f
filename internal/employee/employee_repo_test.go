package employee_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"go-hrms/internal/employee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepoTest(t *testing.T) (employee.Repository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	return employee.NewRepository(gormDB), mock, db
}

func TestEmployeeRepository_FindAllPaginated(t *testing.T) {
	repo, mock, _ := setupRepoTest(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "employees"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "employees" ORDER BY created_at DESC LIMIT $1 OFFSET $2`)).
		WithArgs(5, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_code", "employee_name"}).
			AddRow(uuid.NewString(), 1006, "Ravi Kumar").
			AddRow(uuid.NewString(), 1007, "Meera Iyer"))

	rows, total, err := repo.FindAllPaginated(ctx, 2, 5)

	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	require.Len(t, rows, 2)
	assert.Equal(t, 1006, rows[0].EmployeeCode)
	assert.Equal(t, "Meera Iyer", rows[1].EmployeeName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_UpdateByID(t *testing.T) {
	id := uuid.New()
	empl := &employee.Employee{
		ID:             id,
		EmployeeCode:   1234,
		EmployeeName:   "Asha Rao",
		EmployeeEmail:  "asha@example.com",
		EmployeeNumber: "9876543210",
		Dob:            time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		JoiningDate:    time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	updateSQL := regexp.QuoteMeta(`UPDATE "employees" SET "employee_name"=$1,"employee_email"=$2,"employee_number"=$3,"dob"=$4,"joining_date"=$5,"updated_at"=$6 WHERE id = $7`)

	t.Run("writes only the mutable columns", func(t *testing.T) {
		repo, mock, _ := setupRepoTest(t)

		mock.ExpectBegin()
		mock.ExpectExec(updateSQL).
			WithArgs("Asha Rao", "asha@example.com", "9876543210", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), id.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.UpdateByID(context.Background(), empl)

		require.NoError(t, err)
		assert.False(t, empl.UpdatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found when no row matches", func(t *testing.T) {
		repo, mock, _ := setupRepoTest(t)

		mock.ExpectBegin()
		mock.ExpectExec(updateSQL).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.UpdateByID(context.Background(), empl)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEmployeeRepository_DeleteByCode(t *testing.T) {
	deleteSQL := regexp.QuoteMeta(`DELETE FROM "employees" WHERE employee_code = $1`)

	t.Run("not found on zero rows", func(t *testing.T) {
		repo, mock, _ := setupRepoTest(t)

		mock.ExpectBegin()
		mock.ExpectExec(deleteSQL).WithArgs(1234).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.DeleteByCode(context.Background(), 1234)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("runs inside the attached transaction", func(t *testing.T) {
		repo, mock, db := setupRepoTest(t)

		// one BEGIN and one COMMIT: the repository must not open its own
		mock.ExpectBegin()
		mock.ExpectExec(deleteSQL).WithArgs(1234).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.Begin()
		require.NoError(t, err)
		require.NoError(t, repo.WithTx(tx).DeleteByCode(context.Background(), 1234))
		require.NoError(t, tx.Commit())

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
