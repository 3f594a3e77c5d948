package models

// Employee change operations
const (
	EmployeeCreated = "created"
	EmployeeUpdated = "updated"
	EmployeeDeleted = "deleted"
)

// EmployeeEvent describes a committed change to the employee collection.
type EmployeeEvent struct {
	EventID    string   `json:"event_id"`    // EventID is a unique identifier for the event.
	Timestamp  int64    `json:"timestamp"`   // Timestamp is the Unix time (seconds) of the change.
	Operation  string   `json:"operation"`   // Operation is one of created, updated or deleted.
	EmployeeID int      `json:"employee_id"` // EmployeeID is the identifier of the changed record.
	Employee   Employee `json:"employee"`    // Employee is the record after the change, or the removed record.
}
