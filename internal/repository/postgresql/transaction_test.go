package postgresql

import (
	"context"
	"testing"

	"github.com/akwaba-hr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

// stubTx only needs an identity; no method is ever invoked.
type stubTx struct{ pgx.Tx }

func TestGetQuerier_PrefersTransaction(t *testing.T) {
	db := &database.DB{}
	tx := stubTx{}

	ctx := context.WithValue(context.Background(), "tx", pgx.Tx(tx))
	assert.Equal(t, database.Querier(tx), GetQuerier(ctx, db))
}

func TestGetQuerier_FallsBackToPool(t *testing.T) {
	db := &database.DB{}

	assert.Equal(t, database.Querier(db.Pool), GetQuerier(context.Background(), db))
}
