package employee

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByCode(ctx context.Context, code int) (*Employee, error)
	FindAllPaginated(ctx context.Context, page, limit int) ([]Employee, int64, error)
	FindAllSummary(ctx context.Context) ([]EmployeeSummary, error)
	UpdateByID(ctx context.Context, empl *Employee) error
	UpdateByCode(ctx context.Context, empl *Employee) error
	DeleteByID(ctx context.Context, id string) error
	DeleteByCode(ctx context.Context, code int) error
	ExistsByCode(ctx context.Context, code int) (bool, error)
}

// mutableColumns is the whitelist written by the update statements.
var mutableColumns = []string{
	"employee_name",
	"employee_email",
	"employee_number",
	"dob",
	"joining_date",
	"updated_at",
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

// conn returns a session bound to ctx that runs on the caller's transaction
// when one was attached with WithTx.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.conn(ctx).Create(empl).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.conn(ctx).First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindByCode(ctx context.Context, code int) (*Employee, error) {
	var empl Employee
	err := r.conn(ctx).First(&empl, "employee_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindAllPaginated(ctx context.Context, page, limit int) ([]Employee, int64, error) {
	var total int64
	if err := r.conn(ctx).Model(&Employee{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var empls []Employee
	err := r.conn(ctx).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&empls).Error
	return empls, total, err
}

func (r *repository) FindAllSummary(ctx context.Context) ([]EmployeeSummary, error) {
	var rows []EmployeeSummary
	err := r.conn(ctx).
		Model(&Employee{}).
		Select("employee_code", "employee_name").
		Order("employee_name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) UpdateByID(ctx context.Context, empl *Employee) error {
	empl.UpdatedAt = time.Now()
	res := r.conn(ctx).
		Model(&Employee{}).
		Where("id = ?", empl.ID).
		Select(mutableColumns).
		Updates(empl)
	return rowsOrNotFound(res)
}

func (r *repository) UpdateByCode(ctx context.Context, empl *Employee) error {
	empl.UpdatedAt = time.Now()
	res := r.conn(ctx).
		Model(&Employee{}).
		Where("employee_code = ?", empl.EmployeeCode).
		Select(mutableColumns).
		Updates(empl)
	return rowsOrNotFound(res)
}

func (r *repository) DeleteByID(ctx context.Context, id string) error {
	return rowsOrNotFound(r.conn(ctx).Delete(&Employee{}, "id = ?", id))
}

func (r *repository) DeleteByCode(ctx context.Context, code int) error {
	return rowsOrNotFound(r.conn(ctx).Delete(&Employee{}, "employee_code = ?", code))
}

func (r *repository) ExistsByCode(ctx context.Context, code int) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&Employee{}).
		Where("employee_code = ?", code).
		Count(&count).Error
	return count > 0, err
}

func rowsOrNotFound(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
