package auth

import (
	"errors"
	"net/http"

	"portfolio-api/internal/api"
	"portfolio-api/internal/database"
	"portfolio-api/internal/handler"
	"portfolio-api/internal/model"
	"portfolio-api/internal/service"
	"portfolio-api/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	withTx           = database.WithTx
	getUsersByName   = store.GetUsersByName
	authenticateUser = service.AuthenticateUser
)

// AuthenticateHandler 以 Username/Password 驗證使用者，不發行任何令牌
// @Summary     Authenticate a user
// @Description 同名使用者中任一筆密碼相符即視為成功
// @Tags        auth
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       request body api.LoginRequest true "Credentials"
// @Success     200      {object} api.LoginResponse
// @Failure     400      {object} api.ErrorResponse
// @Failure     401      {object} api.ErrorResponse
// @Failure     500      {object} api.ErrorResponse
// @Router      /Auth_user [post]
func AuthenticateHandler(db database.DB, mode service.PasswordMode) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		// 先 Bind
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "invalid credentials payload")
		}
		// 再驗證結構化參數
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, err.Error())
		}

		ctx := c.Request().Context()
		var candidates []model.User
		err := withTx(ctx, db, func(q database.Querier) error {
			var err error
			candidates, err = getUsersByName(ctx, q, req.Username)
			return err
		})
		if err != nil {
			return handler.InternalError(c, err)
		}

		if _, err := authenticateUser(candidates, req.Password, mode); err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
			}
			return handler.InternalError(c, err)
		}
		return c.JSON(http.StatusOK, api.LoginResponse{Res: "true"})
	}
}
