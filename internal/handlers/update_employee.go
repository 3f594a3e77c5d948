package handlers

import (
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-employee-registry/internal/logger"
	"github.com/sbilibin2017/gw-employee-registry/internal/services"
)

// NewUpdateEmployeeHandler returns an HTTP handler replacing an employee's fields.
// @Summary Update an employee
// @Description Replaces every field except the id
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "Employee id"
// @Param employee body models.EmployeeFields true "Employee fields"
// @Success 200 {object} handlers.EmployeeResponse "Updated employee or not-found message"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id or request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /employees/{id} [put]
func NewUpdateEmployeeHandler(svc EmployeeUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := employeeIDParam(w, r)
		if !ok {
			return
		}
		fields, ok := decodeFields(w, r)
		if !ok {
			return
		}

		employee, err := svc.Update(r.Context(), id, fields)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, EmployeeResponse{Message: msgEmployeeUpdated, Data: &employee})
		case errors.Is(err, services.ErrEmployeeNotFound):
			writeJSON(w, http.StatusOK, EmployeeResponse{Message: msgNotFound})
		case errors.Is(err, services.ErrInvalidEmployee):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			logger.Log.Errorw("failed to update employee", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, errInternal)
		}
	}
}
