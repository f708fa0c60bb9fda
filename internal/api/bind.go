package api

import "github.com/labstack/echo/v4"

var queryBinder = &echo.DefaultBinder{}

// Bind 先綁定 query string 再綁定 body，body 中出現的欄位會覆蓋 query。
// echo 預設只在 GET/DELETE/HEAD 綁定 query，而 POST/PUT 的欄位也可能放在 query。
func Bind(c echo.Context, i any) error {
	if err := queryBinder.BindQueryParams(c, i); err != nil {
		return err
	}
	return c.Bind(i)
}
