package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-api/internal/cache"
	"portfolio-api/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestPingHandler(t *testing.T) {
	e := echo.New()
	t.Cleanup(func() { heartbeat = cache.Heartbeat })

	run := func(db database.DB) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, PingHandler(db, &cache.FakeCache{})(e.NewContext(req, rec)))
		return rec
	}

	t.Run("db unhealthy", func(t *testing.T) {
		heartbeat = func(context.Context, cache.Cache) error { t.Fatal("cache checked"); return nil }
		rec := run(&database.FakeDB{PingFn: func(context.Context) error { return errors.New("fail") }})
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "database unhealthy")
	})

	t.Run("cache unhealthy", func(t *testing.T) {
		heartbeat = func(context.Context, cache.Cache) error { return errors.New("set") }
		rec := run(&database.FakeDB{PingFn: func(context.Context) error { return nil }})
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "cache unhealthy")
	})

	t.Run("ok", func(t *testing.T) {
		called := false
		heartbeat = func(context.Context, cache.Cache) error { called = true; return nil }
		rec := run(&database.FakeDB{PingFn: func(context.Context) error { return nil }})
		require.True(t, called)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "pong")
	})
}

func TestIntParam(t *testing.T) {
	e := echo.New()
	for val, want := range map[string]bool{"1": true, "42": true, "0": false, "-3": false, "x": false, "": false} {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(val)
		_, ok := IntParam(c, "id")
		require.Equal(t, want, ok, val)
	}
}

func TestInternalErrorHidesDetail(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, InternalError(c, errors.New("pq: secret detail")))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "secret")
}
