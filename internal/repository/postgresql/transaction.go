package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/database"
)

// GetQuerier returns the transaction bound to the context when one is
// running, the pool otherwise. Repositories call this so the same code
// serves both transactional and plain operations.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value("tx").(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
