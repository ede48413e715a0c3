package tx

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "github.com/kkutopiaa/tdd-restful-service/pkg/domain-errors"
)

func TestContextCarriesTx(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, WithTx(ctx, nil))

	_, ok := From(ctx)
	assert.False(t, ok)

	tx := &sql.Tx{}
	got, ok := From(WithTx(ctx, tx))
	assert.True(t, ok)
	assert.Same(t, tx, got)
}

func TestUsePrefersTx(t *testing.T) {
	db := &sql.DB{}
	tx := &sql.Tx{}
	assert.Same(t, db, Use(context.Background(), db))
	assert.Same(t, tx, Use(WithTx(context.Background(), tx), db))
}

func TestRunInTxRejectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := NewRunner(nil, 0).RunInTx(ctx, func(context.Context) error {
		called = true
		return nil
	})

	assert.True(t, dErrors.Is(err, dErrors.CodeTimeout))
	assert.False(t, called)
}

func TestRunInTxReusesExistingTx(t *testing.T) {
	outer := WithTx(context.Background(), &sql.Tx{})
	var inner context.Context
	err := NewRunner(nil, 0).RunInTx(outer, func(ctx context.Context) error {
		inner = ctx
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, outer, inner)
}
