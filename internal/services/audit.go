package services

import (
	"context"
	"log/slog"

	"watchparty/internal/models"
	repo "watchparty/internal/repository"
	"watchparty/internal/worker"
)

// auditor records domain events to the audit log off the request path. A
// failed write is logged and dropped; auditing never fails a request.
type auditor struct {
	logs repo.AuditLogs
	wp   *worker.Pool
}

func (a auditor) record(entityType string, entityID int64, action, details string) {
	if a.logs == nil || a.wp == nil {
		return
	}
	var det map[string]any
	if details != "" {
		det = map[string]any{"message": details}
	}
	l := models.AuditLog{
		EntityType: entityType,
		EntityID:   &entityID,
		Action:     action,
		Details:    det,
	}
	a.wp.Submit(func() {
		if err := a.logs.Create(context.Background(), l); err != nil {
			slog.Error("audit write", "entity", entityType, "action", action, "err", err)
		}
	})
}
