package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-employee-registry/internal/logger"
	"github.com/sbilibin2017/gw-employee-registry/internal/models"
)

const (
	createEmployeesTableQuery = `
		CREATE TABLE IF NOT EXISTS employees (
			position      INTEGER NOT NULL,
			id            INTEGER NOT NULL,
			employee_name TEXT    NOT NULL,
			date_of_birth TEXT    NOT NULL,
			image         TEXT    NOT NULL,
			email         TEXT    NOT NULL
		)
	`

	selectEmployeesQuery = `
		SELECT id, employee_name, date_of_birth, image, email
		FROM employees
		ORDER BY position
	`

	deleteEmployeesQuery = `DELETE FROM employees`

	insertEmployeeQuery = `
		INSERT INTO employees (position, id, employee_name, date_of_birth, image, email)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
)

// EmployeeDBRepository keeps the employee collection in a Postgres table.
// Rows carry their position so the collection keeps its order across saves.
type EmployeeDBRepository struct {
	db *sqlx.DB
}

func NewEmployeeDBRepository(db *sqlx.DB) *EmployeeDBRepository {
	return &EmployeeDBRepository{db: db}
}

// EnsureSchema creates the employees table when it does not exist yet.
func (r *EmployeeDBRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createEmployeesTableQuery)

	logger.Log.Infow("query executed",
		"query", oneLine(createEmployeesTableQuery),
		"error", err,
	)

	return err
}

// Load returns every employee ordered by position.
func (r *EmployeeDBRepository) Load(ctx context.Context) ([]models.Employee, error) {
	employees := []models.Employee{}
	err := r.db.SelectContext(ctx, &employees, selectEmployeesQuery)

	logger.Log.Infow("query executed",
		"query", oneLine(selectEmployeesQuery),
		"result", len(employees),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return employees, nil
}

// Save replaces the table contents with the given collection in one transaction.
func (r *EmployeeDBRepository) Save(ctx context.Context, employees []models.Employee) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, deleteEmployeesQuery)
	logger.Log.Infow("query executed",
		"query", deleteEmployeesQuery,
		"error", err,
	)
	if err != nil {
		return err
	}

	for i, e := range employees {
		args := []any{i, e.ID, e.EmployeeName, e.DateOfBirth, e.Image, e.Email}
		_, err = tx.ExecContext(ctx, insertEmployeeQuery, args...)
		logger.Log.Infow("query executed",
			"query", oneLine(insertEmployeeQuery),
			"args", args,
			"error", err,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// oneLine collapses a query to a single line for logging.
func oneLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
