package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func txDB(tx *FakeTx) *FakeDB {
	return &FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil }}
}

func TestWithTx(t *testing.T) {
	t.Run("begin error", func(t *testing.T) {
		db := &FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return nil, errors.New("begin") }}
		called := false
		err := WithTx(context.Background(), db, func(Querier) error { called = true; return nil })
		require.EqualError(t, err, "begin")
		require.False(t, called)
	})

	t.Run("commit on success", func(t *testing.T) {
		tx := &FakeTx{ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("INSERT 0 1"), nil
		}}
		err := WithTx(context.Background(), txDB(tx), func(q Querier) error {
			_, err := q.Exec(context.Background(), "INSERT")
			return err
		})
		require.NoError(t, err)
		require.True(t, tx.Committed)
		require.False(t, tx.RolledBack)
	})

	t.Run("rollback on error", func(t *testing.T) {
		tx := &FakeTx{}
		err := WithTx(context.Background(), txDB(tx), func(Querier) error { return errors.New("fn") })
		require.EqualError(t, err, "fn")
		require.False(t, tx.Committed)
		require.True(t, tx.RolledBack)
	})

	t.Run("rollback on panic", func(t *testing.T) {
		tx := &FakeTx{}
		require.Panics(t, func() {
			_ = WithTx(context.Background(), txDB(tx), func(Querier) error { panic("boom") })
		})
		require.False(t, tx.Committed)
		require.True(t, tx.RolledBack)
	})

	t.Run("commit error", func(t *testing.T) {
		tx := &FakeTx{CommitErr: errors.New("commit")}
		err := WithTx(context.Background(), txDB(tx), func(Querier) error { return nil })
		require.EqualError(t, err, "commit")
		require.True(t, tx.RolledBack)
	})
}
