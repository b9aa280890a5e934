package postgres

import (
	repo "watchparty/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositories(pool *pgxpool.Pool) repo.Repositories {
	return repo.Repositories{
		Users:     &usersRepo{pool},
		Rooms:     &roomsRepo{pool},
		Messages:  &messagesRepo{pool},
		AuditLogs: &auditLogsRepo{pool},
	}
}
