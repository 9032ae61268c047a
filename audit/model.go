// audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

// Actions recorded by the console
const (
	ActionPermissionFetch = "PERMISSION_FETCH"
	ActionTestSuiteSelect = "TEST_SUITE_SELECT"
	ActionTestSuiteUpdate = "TEST_SUITE_UPDATE"
	ActionTestSuiteDelete = "TEST_SUITE_DELETE"
	ActionSessionReset    = "SESSION_RESET"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type AuditLog struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	SessionID string          `json:"session_id"`
	UserID    string          `json:"user_id"`
	Action    string          `json:"action"`
	Resource  string          `json:"resource,omitempty"`
	EntityID  string          `json:"entity_id,omitempty"`
	Outcome   string          `json:"outcome"`
	Details   json.RawMessage `json:"details,omitempty"`
}
