package models

type AuditLog struct {
	EntityType string         `json:"entity_type"`
	EntityID   *int64         `json:"entity_id,omitempty"`
	Action     string         `json:"action"`
	Details    map[string]any `json:"details,omitempty"`
}
