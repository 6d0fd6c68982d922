package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL の undefined_column
const pgUndefinedColumn = "42703"

const tombstoneColumn = "deleted_at"

// isMissingTombstoneColumn は論理削除カラムが存在しないことによるエラーかを判定します
func isMissingTombstoneColumn(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUndefinedColumn && strings.Contains(pgErr.Message, tombstoneColumn)
	}
	// SQLite: "no such column: deleted_at"
	return strings.Contains(err.Error(), "no such column: "+tombstoneColumn)
}
