package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sbilibin2017/gw-employee-registry/internal/logger"
	"github.com/sbilibin2017/gw-employee-registry/internal/models"
)

// EmployeeFileRepository keeps the employee collection as a JSON array in a single file.
type EmployeeFileRepository struct {
	path string
}

// NewEmployeeFileRepository creates a repository backed by the file at path.
// The file and its directory are created on the first Save.
func NewEmployeeFileRepository(path string) *EmployeeFileRepository {
	return &EmployeeFileRepository{path: path}
}

// Load reads the whole collection in file order.
// A missing or empty file is an empty collection.
func (r *EmployeeFileRepository) Load(ctx context.Context) ([]models.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	employees := []models.Employee{}

	data, err := os.ReadFile(r.path)
	switch {
	case os.IsNotExist(err):
		err = nil
	case err == nil && len(data) > 0:
		err = json.Unmarshal(data, &employees)
	}

	logger.Log.Infow("employee document loaded",
		"path", r.path,
		"result", len(employees),
		"error", err,
	)

	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	return employees, nil
}

// Save replaces the file with the given collection.
// The data is written to a temporary file in the same directory and renamed over the target.
func (r *EmployeeFileRepository) Save(ctx context.Context, employees []models.Employee) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := r.save(employees)

	logger.Log.Infow("employee document saved",
		"path", r.path,
		"result", len(employees),
		"error", err,
	)

	return err
}

func (r *EmployeeFileRepository) save(employees []models.Employee) error {
	if employees == nil {
		employees = []models.Employee{}
	}

	data, err := json.MarshalIndent(employees, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), r.path)
}
