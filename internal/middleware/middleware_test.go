package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCORS(t *testing.T) {
	e := echo.New()
	e.Use(CORS([]string{"*"}))
	e.GET("/components", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	// preflight
	req := httptest.NewRequest(http.MethodOptions, "/components", nil)
	req.Header.Set(echo.HeaderOrigin, "https://portfolio.example")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodDelete)
	rec := serve(e, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	require.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodDelete)

	// simple request
	req = httptest.NewRequest(http.MethodGet, "/components", nil)
	req.Header.Set(echo.HeaderOrigin, "https://portfolio.example")
	rec = serve(e, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestCORSRestrictedOrigins(t *testing.T) {
	e := echo.New()
	e.Use(CORS([]string{"https://allowed.example"}))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderOrigin, "https://other.example")
	rec := serve(e, req)
	require.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderOrigin, "https://allowed.example")
	rec = serve(e, req)
	require.Equal(t, "https://allowed.example", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(rec.Header().Get(echo.HeaderXRequestID))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "given")
	rec = serve(e, req)
	require.Equal(t, "given", rec.Header().Get(echo.HeaderXRequestID))
}

func TestRequestLogger(t *testing.T) {
	t.Cleanup(func() { newRequestID = uuid.NewString })
	newRequestID = func() string { return "rid-1" }

	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(RequestID(), RequestLogger(l))
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/fail", func(c echo.Context) error { return errors.New("boom") })

	serve(e, httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.Contains(t, buf.String(), `"level":"INFO"`)
	require.Contains(t, buf.String(), `"uri":"/ok"`)
	require.Contains(t, buf.String(), `"status":200`)
	require.Contains(t, buf.String(), `"request_id":"rid-1"`)

	buf.Reset()
	rec := serve(e, httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, buf.String(), `"level":"ERROR"`)
	require.Contains(t, buf.String(), `"error":"boom"`)
}

type traceKey struct{}

// ctxHandler 記錄每筆日誌收到的 context
type ctxHandler struct{ ctxs []context.Context }

func (h *ctxHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *ctxHandler) Handle(ctx context.Context, _ slog.Record) error {
	h.ctxs = append(h.ctxs, ctx)
	return nil
}

func (h *ctxHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *ctxHandler) WithGroup(string) slog.Handler { return h }

func TestRequestLoggerUsesRequestContext(t *testing.T) {
	h := &ctxHandler{}
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(context.WithValue(req.Context(), traceKey{}, "trace-1")))
			return next(c)
		}
	}, RequestLogger(slog.New(h)))
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	serve(e, httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.Len(t, h.ctxs, 1)
	require.Equal(t, "trace-1", h.ctxs[0].Value(traceKey{}))
}
