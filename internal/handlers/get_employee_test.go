package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-employee-registry/internal/models"
	"github.com/sbilibin2017/gw-employee-registry/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGetEmployeeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockEmployeeGetter)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "found",
			target: "/employees/5",
			mockSetup: func(m *MockEmployeeGetter) {
				m.EXPECT().FindByID(gomock.Any(), 5).Return(models.Employee{
					ID: 5, EmployeeName: "A", DateOfBirth: "1990-01-01", Image: "u", Email: "a@x.com",
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"Employee found","data":{"id":5,"employeeName":"A","dateOfBirth":"1990-01-01","image":"u","email":"a@x.com"}}`,
		},
		{
			name:   "not found has no data",
			target: "/employees/6",
			mockSetup: func(m *MockEmployeeGetter) {
				m.EXPECT().FindByID(gomock.Any(), 6).Return(models.Employee{}, services.ErrEmployeeNotFound)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"Employee not found"}`,
		},
		{
			name:         "non integer id",
			target:       "/employees/abc",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid employee id"}`,
		},
		{
			name:   "storage failure",
			target: "/employees/5",
			mockSetup: func(m *MockEmployeeGetter) {
				m.EXPECT().FindByID(gomock.Any(), 5).Return(models.Employee{}, errors.New("read failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockEmployeeGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := serve(NewGetEmployeeHandler(mockSvc), http.MethodGet, "/employees/{id}", tt.target, "")

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
