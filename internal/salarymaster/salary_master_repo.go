package salarymaster

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_master_repo.go -destination=mock/salary_master_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, sm *SalaryMaster) error
	FindByID(ctx context.Context, id string) (*SalaryMaster, error)
	FindByEmployeeCode(ctx context.Context, code int) (*SalaryMaster, error)
	FindAllPaginated(ctx context.Context, page, limit int) ([]SalaryMaster, int64, error)
	Update(ctx context.Context, sm *SalaryMaster) error
	DeleteByID(ctx context.Context, id string) error
	DeleteByEmployeeCode(ctx context.Context, code int) error
	ExistsByEmployeeCode(ctx context.Context, code int) (bool, error)
	EmployeeExistsByCode(ctx context.Context, code int) (bool, error)
	EmployeeNameByCode(ctx context.Context, code int) (string, error)
}

// payrollColumns is everything an update rewrites; employee_code is fixed
// once the record exists.
var payrollColumns = []string{
	"basic",
	"hra",
	"conveyance",
	"other_allowance",
	"gross_salary",
	"employee_pf",
	"employer_pf",
	"eps",
	"epf",
	"employee_esic",
	"employer_esic",
	"net_salary",
	"ctc",
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

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, sm *SalaryMaster) error {
	return r.conn(ctx).Create(sm).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*SalaryMaster, error) {
	var sm SalaryMaster
	if err := r.conn(ctx).First(&sm, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sm, nil
}

func (r *repository) FindByEmployeeCode(ctx context.Context, code int) (*SalaryMaster, error) {
	var sm SalaryMaster
	if err := r.conn(ctx).First(&sm, "employee_code = ?", code).Error; err != nil {
		return nil, err
	}
	return &sm, nil
}

func (r *repository) FindAllPaginated(ctx context.Context, page, limit int) ([]SalaryMaster, int64, error) {
	var total int64
	if err := r.conn(ctx).Model(&SalaryMaster{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []SalaryMaster
	err := r.conn(ctx).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) Update(ctx context.Context, sm *SalaryMaster) error {
	sm.UpdatedAt = time.Now()
	res := r.conn(ctx).
		Model(&SalaryMaster{}).
		Where("id = ?", sm.ID).
		Select(payrollColumns).
		Updates(sm)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteByID(ctx context.Context, id string) error {
	return deleted(r.conn(ctx).Delete(&SalaryMaster{}, "id = ?", id))
}

func (r *repository) DeleteByEmployeeCode(ctx context.Context, code int) error {
	return deleted(r.conn(ctx).Delete(&SalaryMaster{}, "employee_code = ?", code))
}

func (r *repository) ExistsByEmployeeCode(ctx context.Context, code int) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&SalaryMaster{}).
		Where("employee_code = ?", code).
		Count(&count).Error
	return count > 0, err
}

// EmployeeExistsByCode reads the employees table directly; the salary master
// keeps no foreign key to it.
func (r *repository) EmployeeExistsByCode(ctx context.Context, code int) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("employees").
		Where("employee_code = ?", code).
		Count(&count).Error
	return count > 0, err
}

// EmployeeNameByCode returns "" when the employee no longer exists.
func (r *repository) EmployeeNameByCode(ctx context.Context, code int) (string, error) {
	var names []string
	err := r.conn(ctx).
		Table("employees").
		Where("employee_code = ?", code).
		Limit(1).
		Pluck("employee_name", &names).Error
	if err != nil || len(names) == 0 {
		return "", err
	}
	return names[0], nil
}

func deleted(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
