package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/employee-registry/internal/domain"
	"gorm.io/gorm"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Scan(ctx context.Context, fn func(domain.Employee) error) error
	List(ctx context.Context) ([]domain.Employee, error)
	Merge(ctx context.Context, id int64, apply func(*domain.Employee)) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	emp.ID = 0
	return writeError(r.db.WithContext(ctx).Create(emp).Error)
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return getByID(r.db.WithContext(ctx), id)
}

// Scan проходит по записям в порядке первичного ключа, по одной строке за шаг.
// Обход нельзя перезапустить; ошибка fn прерывает его и возвращается как есть.
func (r *employeeRepository) Scan(ctx context.Context, fn func(domain.Employee) error) error {
	db := r.db.WithContext(ctx)

	rows, err := db.Model(&domain.Employee{}).Order("id ASC").Rows()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRead, err)
	}
	defer rows.Close()

	for rows.Next() {
		var emp domain.Employee
		if err := db.ScanRows(rows, &emp); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrRead, err)
		}
		if err := fn(emp); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRead, err)
	}
	return nil
}

// List материализует Scan. При ошибке возвращает уже прочитанные записи.
func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	employees := make([]domain.Employee, 0)
	err := r.Scan(ctx, func(emp domain.Employee) error {
		employees = append(employees, emp)
		return nil
	})
	return employees, err
}

// Merge читает запись и записывает её обратно после apply в одной транзакции
func (r *employeeRepository) Merge(ctx context.Context, id int64, apply func(*domain.Employee)) (*domain.Employee, error) {
	var merged *domain.Employee

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		emp, err := getByID(tx, id)
		if err != nil {
			return err
		}

		apply(emp)
		emp.ID = id

		if err := writeError(tx.Save(emp).Error); err != nil {
			return err
		}
		merged = emp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

// Delete удаляет запись без проверки существования
func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	return writeError(r.db.WithContext(ctx).Delete(&domain.Employee{}, id).Error)
}

func getByID(db *gorm.DB, id int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := db.First(&emp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrRead, err)
	}
	return &emp, nil
}

func writeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", domain.ErrConstraintViolation, err)
	default:
		return fmt.Errorf("%w: %v", domain.ErrWrite, err)
	}
}
