package kafka_test

import (
	"encoding/json"
	"testing"

	"go-hrms/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutboxEvent(t *testing.T) {
	event, err := kafka.NewOutboxEvent("rid-1", "employee", "emp-1", "employee_onboarded", "topic", map[string]int{"employee_code": 1234})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, kafka.OutboxStatusPending, event.Status)
	assert.NoError(t, kafka.ValidateOutboxEvent(event))

	var payload map[string]int
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, 1234, payload["employee_code"])
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{ID: "1", Topic: "t", Payload: []byte(`{}`), Status: kafka.OutboxStatusPending}
	assert.NoError(t, kafka.ValidateOutboxEvent(valid))

	missingTopic := valid
	missingTopic.Topic = ""
	assert.Error(t, kafka.ValidateOutboxEvent(missingTopic))

	badStatus := valid
	badStatus.Status = "queued"
	assert.Error(t, kafka.ValidateOutboxEvent(badStatus))
}

func TestOutboxRepository_CreateUsesTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs("1", "rid", "employee", "emp-1", "employee_onboarded", "topic", []byte(`{}`), kafka.OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	repo := kafka.NewOutboxRepository(db).WithTx(tx)
	err = repo.Create(t.Context(), kafka.OutboxEvent{
		ID:            "1",
		RequestID:     "rid",
		AggregateType: "employee",
		AggregateID:   "emp-1",
		EventType:     "employee_onboarded",
		Topic:         "topic",
		Payload:       []byte(`{}`),
		Status:        kafka.OutboxStatusPending,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
