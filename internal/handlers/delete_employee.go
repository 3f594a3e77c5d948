package handlers

import (
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-employee-registry/internal/logger"
	"github.com/sbilibin2017/gw-employee-registry/internal/models"
	"github.com/sbilibin2017/gw-employee-registry/internal/services"
)

// NewDeleteEmployeeHandler returns an HTTP handler deleting an employee.
// On success the response carries the remaining employees.
// @Summary Delete an employee
// @Tags employees
// @Produce json
// @Param id path int true "Employee id"
// @Success 200 {object} handlers.EmployeeListResponse "Remaining employees or not-found message"
// @Failure 400 {object} handlers.ErrorResponse "Invalid employee id"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /employees/{id} [delete]
func NewDeleteEmployeeHandler(svc EmployeeDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := employeeIDParam(w, r)
		if !ok {
			return
		}

		remaining, err := svc.Delete(r.Context(), id)
		switch {
		case err == nil:
			if remaining == nil {
				remaining = []models.Employee{}
			}
			writeJSON(w, http.StatusOK, EmployeeListResponse{Message: msgEmployeeDeleted, Data: remaining})
		case errors.Is(err, services.ErrEmployeeNotFound):
			writeJSON(w, http.StatusOK, EmployeeResponse{Message: msgNotFound})
		default:
			logger.Log.Errorw("failed to delete employee", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, errInternal)
		}
	}
}
