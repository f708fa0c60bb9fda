package store

import (
	"context"
	"errors"
	"testing"

	"portfolio-api/internal/database"
	"portfolio-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestContactStore(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateContact", func(t *testing.T) {
		q := &database.FakeDB{QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			require.Equal(t, []any{"n", "e@x.io", "hi"}, args)
			return &fakeRow{vals: []any{1, false}}
		}}
		c, err := CreateContact(ctx, q, &model.Contact{Name: "n", Email: "e@x.io", Msg: "hi", Visited: true})
		require.NoError(t, err)
		require.Equal(t, 1, c.ID)
		require.False(t, c.Visited)

		q.QueryRowFn = func(context.Context, string, ...any) pgx.Row { return &fakeRow{scanErr: errors.New("x")} }
		_, err = CreateContact(ctx, q, &model.Contact{})
		require.Error(t, err)
	})

	t.Run("MarkAllContactsVisited", func(t *testing.T) {
		q := &database.FakeDB{QueryFn: func(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
			require.Contains(t, sql, "SET visited = TRUE")
			return &fakeRows{data: [][]any{{1, "a", "a@x", "m1", true}, {2, "b", "b@x", "m2", true}}}, nil
		}}
		list, err := MarkAllContactsVisited(ctx, q)
		require.NoError(t, err)
		require.Len(t, list, 2)
		for _, c := range list {
			require.True(t, c.Visited)
		}

		q.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("q") }
		_, err = MarkAllContactsVisited(ctx, q)
		require.Error(t, err)

		q.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) { return &fakeRows{err: errors.New("rows")}, nil }
		_, err = MarkAllContactsVisited(ctx, q)
		require.Error(t, err)
	})

	t.Run("CountUnvisitedContacts", func(t *testing.T) {
		q := &database.FakeDB{QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
			require.Contains(t, sql, "visited = FALSE")
			return &fakeRow{vals: []any{3}}
		}}
		n, err := CountUnvisitedContacts(ctx, q)
		require.NoError(t, err)
		require.Equal(t, 3, n)

		q.QueryRowFn = func(context.Context, string, ...any) pgx.Row { return &fakeRow{scanErr: errors.New("x")} }
		_, err = CountUnvisitedContacts(ctx, q)
		require.Error(t, err)
	})
}
