package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio-api/internal/database"
	"portfolio-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestExperienceStore(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)

	t.Run("CreateExperience", func(t *testing.T) {
		q := &database.FakeDB{QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			require.Equal(t, []any{"dev", "d", []string{"go"}, start, end}, args)
			return &fakeRow{vals: []any{9}}
		}}
		e, err := CreateExperience(ctx, q, &model.Experience{
			Name: "dev", Description: "d", Skills: []string{"go"}, StartDate: start, EndDate: end,
		})
		require.NoError(t, err)
		require.Equal(t, 9, e.ID)

		q.QueryRowFn = func(context.Context, string, ...any) pgx.Row { return &fakeRow{scanErr: errors.New("x")} }
		_, err = CreateExperience(ctx, q, &model.Experience{})
		require.Error(t, err)
	})

	t.Run("ListExperiences", func(t *testing.T) {
		q := &database.FakeDB{QueryFn: func(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
			require.Contains(t, sql, "ORDER BY start_date ASC")
			return &fakeRows{data: [][]any{{1, "dev", "d", []string{"go", "sql"}, start, end}}}, nil
		}}
		list, err := ListExperiences(ctx, q)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, []string{"go", "sql"}, list[0].Skills)
		require.True(t, list[0].StartDate.Equal(start))

		q.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("q") }
		_, err = ListExperiences(ctx, q)
		require.Error(t, err)

		q.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
			return &fakeRows{data: [][]any{{1}}, scanErr: errors.New("scan")}, nil
		}
		_, err = ListExperiences(ctx, q)
		require.Error(t, err)
	})
}
