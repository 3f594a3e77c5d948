package handlers

import (
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-employee-registry/internal/logger"
	"github.com/sbilibin2017/gw-employee-registry/internal/services"
)

// NewCreateEmployeeHandler returns an HTTP handler creating an employee.
// @Summary Create an employee
// @Description Creates an employee with a generated id. The email must be unique and the birth date must not be in the future.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body models.EmployeeFields true "Employee fields"
// @Success 201 {object} models.Employee "Created employee"
// @Failure 400 {object} handlers.ErrorResponse "Duplicate email / invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /employees [post]
func NewCreateEmployeeHandler(svc EmployeeCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, ok := decodeFields(w, r)
		if !ok {
			return
		}

		employee, err := svc.Create(r.Context(), fields)
		switch {
		case err == nil:
			writeJSON(w, http.StatusCreated, employee)
		case errors.Is(err, services.ErrDuplicateEmail):
			writeError(w, http.StatusBadRequest, errDuplicateMail)
		case errors.Is(err, services.ErrInvalidEmployee):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			logger.Log.Errorw("failed to create employee", "error", err)
			writeError(w, http.StatusInternalServerError, errInternal)
		}
	}
}
