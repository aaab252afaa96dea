package domain

import "time"

// AuditFields holds standard audit information for persisted records.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// Touch stamps the audit fields, setting CreatedAt on first use.
func (a *AuditFields) Touch(now time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.LastUpdatedAt = now
}
