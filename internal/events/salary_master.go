package events

import (
	"time"

	"github.com/shopspring/decimal"
)

const SalaryMasterTopic = "hrms.salary-master.v1"

const EventSalaryMasterCreated = "salary_master_created"

type SalaryMasterCreatedEvent struct {
	EventType      string          `json:"event_type"`
	RequestID      string          `json:"request_id,omitempty"`
	SalaryMasterID string          `json:"salary_master_id"`
	EmployeeCode   int             `json:"employee_code"`
	CTC            decimal.Decimal `json:"ctc"`
	OccurredAt     time.Time       `json:"occurred_at"`
}
