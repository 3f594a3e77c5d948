package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-employee-registry/internal/logger"
	"github.com/sbilibin2017/gw-employee-registry/internal/models"
)

// NewListEmployeesHandler returns an HTTP handler listing every employee.
// @Summary List employees
// @Description Returns every employee in storage order
// @Tags employees
// @Produce json
// @Success 200 {array} models.Employee "Employees"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /employees [get]
func NewListEmployeesHandler(svc EmployeeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employees, err := svc.LoadAll(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list employees", "error", err)
			writeError(w, http.StatusInternalServerError, errInternal)
			return
		}
		if employees == nil {
			employees = []models.Employee{}
		}

		writeJSON(w, http.StatusOK, employees)
	}
}
