package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-employee-registry/internal/logger"
	"github.com/sbilibin2017/gw-employee-registry/internal/models"
)

//go:generate mockgen -source=employees.go -destination=mock_employees.go -package=handlers

// EmployeeLister lists every employee.
type EmployeeLister interface {
	LoadAll(ctx context.Context) ([]models.Employee, error)
}

// EmployeeCreator creates employees.
type EmployeeCreator interface {
	Create(ctx context.Context, fields models.EmployeeFields) (models.Employee, error)
}

// EmployeeGetter looks up an employee by id.
type EmployeeGetter interface {
	FindByID(ctx context.Context, id int) (models.Employee, error)
}

// EmployeeUpdater replaces an employee's fields.
type EmployeeUpdater interface {
	Update(ctx context.Context, id int, fields models.EmployeeFields) (models.Employee, error)
}

// EmployeeDeleter removes employees.
type EmployeeDeleter interface {
	Delete(ctx context.Context, id int) ([]models.Employee, error)
}

// Response messages
const (
	msgEmployeeFound   = "Employee found"
	msgEmployeeUpdated = "Employee updated successfully"
	msgEmployeeDeleted = "Employee deleted successfully"
	msgNotFound        = "Employee not found"

	errInvalidBody   = "Invalid request body"
	errInvalidID     = "Invalid employee id"
	errDuplicateMail = "Email already exists"
	errInternal      = "Internal server error"
)

// EmployeeResponse carries a message and, when found, the employee
// swagger:model EmployeeResponse
type EmployeeResponse struct {
	// Outcome message
	// example: Employee found
	Message string `json:"message"`

	// Employee record, absent when not found
	Data *models.Employee `json:"data,omitempty"`
}

// EmployeeListResponse carries a message and the remaining employees after a delete
// swagger:model EmployeeListResponse
type EmployeeListResponse struct {
	// Outcome message
	// example: Employee deleted successfully
	Message string `json:"message"`

	// Remaining employees
	Data []models.Employee `json:"data"`
}

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Email already exists
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// employeeIDParam reads the {id} URL parameter.
// It writes a 400 response and returns false when the id is not an integer.
func employeeIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		logger.Log.Warnw("invalid employee id", "id", raw)
		writeError(w, http.StatusBadRequest, errInvalidID)
		return 0, false
	}
	return id, true
}

// decodeFields reads an EmployeeFields body.
// It writes a 400 response and returns false when the body is not valid JSON.
func decodeFields(w http.ResponseWriter, r *http.Request) (models.EmployeeFields, bool) {
	var fields models.EmployeeFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		logger.Log.Warnw("invalid employee body", "error", err)
		writeError(w, http.StatusBadRequest, errInvalidBody)
		return fields, false
	}
	return fields, true
}
