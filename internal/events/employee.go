package events

import "time"

const EmployeeLifecycleTopic = "hrms.employee.lifecycle.v1"

const (
	EventEmployeeOnboarded = "employee_onboarded"
	EventEmployeeDeleted   = "employee_deleted"
)

type EmployeeLifecycleEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeCode int       `json:"employee_code"`
	OccurredAt   time.Time `json:"occurred_at"`
}
