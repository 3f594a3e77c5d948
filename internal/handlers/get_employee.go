package handlers

import (
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-employee-registry/internal/logger"
	"github.com/sbilibin2017/gw-employee-registry/internal/services"
)

// NewGetEmployeeHandler returns an HTTP handler fetching one employee.
// A missing employee is reported in the message with status 200.
// @Summary Get an employee
// @Tags employees
// @Produce json
// @Param id path int true "Employee id"
// @Success 200 {object} handlers.EmployeeResponse "Employee or not-found message"
// @Failure 400 {object} handlers.ErrorResponse "Invalid employee id"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /employees/{id} [get]
func NewGetEmployeeHandler(svc EmployeeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := employeeIDParam(w, r)
		if !ok {
			return
		}

		employee, err := svc.FindByID(r.Context(), id)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, EmployeeResponse{Message: msgEmployeeFound, Data: &employee})
		case errors.Is(err, services.ErrEmployeeNotFound):
			writeJSON(w, http.StatusOK, EmployeeResponse{Message: msgNotFound})
		default:
			logger.Log.Errorw("failed to get employee", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, errInternal)
		}
	}
}
