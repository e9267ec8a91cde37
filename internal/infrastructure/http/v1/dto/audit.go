package dto

import (
	"encoding/json"
	"time"

	"colibri/internal/domain/audit"
)

// AuditEntryResponse carries one audit-trail record.
type AuditEntryResponse struct {
	Action    string          `json:"accion"`
	UserID    string          `json:"usuario"`
	Changes   json.RawMessage `json:"cambios,omitempty"`
	CreatedAt time.Time       `json:"fecha"`
}

// FromAuditRows converts an audit trail slice.
func FromAuditRows(rows []audit.Row) []AuditEntryResponse {
	out := make([]AuditEntryResponse, len(rows))
	for i, r := range rows {
		out[i] = AuditEntryResponse{
			Action:    string(r.Action),
			UserID:    r.UserID,
			Changes:   r.Changes,
			CreatedAt: r.CreatedAt,
		}
	}
	return out
}
