package files

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"portfolio-api/internal/api"
	"portfolio-api/internal/handler"

	"github.com/labstack/echo/v4"
)

var statFile = os.Stat

// @Summary     Download a file
// @Description 以附件形式回傳 DOWNLOAD_DIR 底下的檔案；檔名不可包含路徑
// @Tags        files
// @Produce     octet-stream
// @Param       filename path string true "檔名"
// @Success     200 {file}   file
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /downloadfile/{filename} [get]
func DownloadHandler(dir string) echo.HandlerFunc {
	return func(c echo.Context) error {
		name := c.Param("filename")
		if !validName(name) {
			return handler.BadRequest(c, "invalid filename")
		}

		path := filepath.Join(dir, name)
		info, err := statFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "File not found"})
		case err != nil:
			return handler.InternalError(c, err)
		case info.IsDir():
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "File not found"})
		}
		return c.Attachment(path, name)
	}
}

// validName 只接受單一路徑元素
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}
