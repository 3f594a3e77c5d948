package models

// Employee represents a single employee record as persisted in the store
// swagger:model Employee
type Employee struct {
	ID           int    `json:"id" db:"id"`                      // Generated identifier
	EmployeeName string `json:"employeeName" db:"employee_name"` // Full name
	DateOfBirth  string `json:"dateOfBirth" db:"date_of_birth"`  // Birth date, YYYY-MM-DD
	Image        string `json:"image" db:"image"`                // Avatar URL
	Email        string `json:"email" db:"email"`                // Unique email address
}

// EmployeeFields holds every employee field except the identifier.
// It is the body of create and update requests.
// swagger:model EmployeeFields
type EmployeeFields struct {
	// Full name
	// required: true
	// example: Jane Doe
	EmployeeName string `json:"employeeName" validate:"required"`

	// Birth date in YYYY-MM-DD format, not in the future
	// required: true
	// example: 1990-01-01
	DateOfBirth string `json:"dateOfBirth" validate:"required"`

	// Avatar URL
	// required: true
	// example: https://example.com/jane.png
	Image string `json:"image" validate:"required"`

	// Email address, unique across employees
	// required: true
	// example: jane@example.com
	Email string `json:"email" validate:"required"`
}

// WithID builds an Employee carrying the given identifier.
func (f EmployeeFields) WithID(id int) Employee {
	return Employee{
		ID:           id,
		EmployeeName: f.EmployeeName,
		DateOfBirth:  f.DateOfBirth,
		Image:        f.Image,
		Email:        f.Email,
	}
}
