package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// This system has no user accounts, so only timestamps are tracked.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
