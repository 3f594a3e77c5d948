package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-employee-registry/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestListEmployeesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(m *MockEmployeeLister)
		expectedCode int
		expectedBody string
	}{
		{
			name: "employees in order",
			mockSetup: func(m *MockEmployeeLister) {
				m.EXPECT().LoadAll(gomock.Any()).Return([]models.Employee{
					{ID: 7, EmployeeName: "B", DateOfBirth: "1991-02-02", Image: "v", Email: "b@x.com"},
					{ID: 5, EmployeeName: "A", DateOfBirth: "1990-01-01", Image: "u", Email: "a@x.com"},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[
				{"id":7,"employeeName":"B","dateOfBirth":"1991-02-02","image":"v","email":"b@x.com"},
				{"id":5,"employeeName":"A","dateOfBirth":"1990-01-01","image":"u","email":"a@x.com"}
			]`,
		},
		{
			name: "empty store",
			mockSetup: func(m *MockEmployeeLister) {
				m.EXPECT().LoadAll(gomock.Any()).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name: "storage failure",
			mockSetup: func(m *MockEmployeeLister) {
				m.EXPECT().LoadAll(gomock.Any()).Return(nil, errors.New("unexpected end of JSON input"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockEmployeeLister(ctrl)
			tt.mockSetup(mockSvc)

			rr := serve(NewListEmployeesHandler(mockSvc), http.MethodGet, "/employees", "/employees", "")

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
