package files

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func download(t *testing.T, dir, name string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/downloadfile/x", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/downloadfile/:filename")
	c.SetParamNames("filename")
	c.SetParamValues(name)
	require.NoError(t, DownloadHandler(dir)(c))
	return rec
}

func TestDownloadHandler(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "resume.pdf"), []byte("%PDF-1.4"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	t.Run("existing file", func(t *testing.T) {
		rec := download(t, dir, "resume.pdf")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "%PDF-1.4", rec.Body.String())
		require.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "attachment")
		require.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "resume.pdf")
	})

	t.Run("missing file", func(t *testing.T) {
		rec := download(t, dir, "nope.txt")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("directory", func(t *testing.T) {
		rec := download(t, dir, "sub")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	for _, name := range []string{"", ".", "..", "../etc/passwd", "sub/../resume.pdf", `..\secret`} {
		t.Run("rejects "+name, func(t *testing.T) {
			rec := download(t, dir, name)
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	t.Run("stat error", func(t *testing.T) {
		t.Cleanup(func() { statFile = os.Stat })
		statFile = func(string) (os.FileInfo, error) { return nil, errors.New("io") }
		rec := download(t, dir, "resume.pdf")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
