package users

import (
	"errors"
	"net/http"
	"strings"

	"portfolio-api/internal/api"
	"portfolio-api/internal/database"
	"portfolio-api/internal/handler"
	"portfolio-api/internal/model"
	"portfolio-api/internal/service"
	"portfolio-api/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	withTx      = database.WithTx
	createUser  = store.CreateUser
	getUserByID = store.GetUserByID
	listUsers   = store.ListUsers
	deleteUser  = store.DeleteUser
)

const errNotFound = "User not found"

// @Summary     Create a new user
// @Description 建立新帳號 (Email 會自動轉小寫)；email 重複時回傳 409
// @Tags        users
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       request body api.CreateUserRequest true "User"
// @Success     200      {object} api.UserResponse
// @Failure     400      {object} api.ErrorResponse
// @Failure     409      {object} api.ErrorResponse
// @Failure     500      {object} api.ErrorResponse
// @Router      /users [post]
func CreateUserHandler(db database.DB, mode service.PasswordMode) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := api.Bind(c, &req); err != nil {
			return handler.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, err.Error())
		}

		stored, err := mode.StoredPassword(req.Password)
		if err != nil {
			return handler.InternalError(c, err)
		}

		ctx := c.Request().Context()
		var user *model.User
		err = withTx(ctx, db, func(q database.Querier) error {
			var err error
			user, err = createUser(ctx, q, &model.User{
				Name:     req.Name,
				Email:    strings.ToLower(req.Email),
				Password: stored,
			})
			return err
		})
		switch {
		case errors.Is(err, store.ErrConflict):
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "Email already registered"})
		case err != nil:
			return handler.InternalError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(*user))
	}
}

// @Summary     Get a user by ID
// @Description 透過 ID 查詢並回傳使用者詳細資料
// @Tags        users
// @Produce     json
// @Param       id   path      int  true  "使用者 ID"
// @Success     200  {object}  api.UserResponse
// @Failure     400  {object}  api.ErrorResponse  "參數錯誤"
// @Failure     404  {object}  api.ErrorResponse  "使用者不存在"
// @Failure     500  {object}  api.ErrorResponse  "伺服器錯誤"
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.IntParam(c, "id")
		if !ok {
			return handler.BadRequest(c, "invalid user ID")
		}

		ctx := c.Request().Context()
		var user *model.User
		err := withTx(ctx, db, func(q database.Querier) error {
			var err error
			user, err = getUserByID(ctx, q, id)
			return err
		})
		switch {
		case errors.Is(err, store.ErrNotFound):
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: errNotFound})
		case err != nil:
			return handler.InternalError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(*user))
	}
}

// @Summary     List users
// @Description 依 id 排序分頁列出使用者，skip 預設 0、limit 預設 10
// @Tags        users
// @Produce     json
// @Param       skip  query int false "略過筆數"
// @Param       limit query int false "回傳筆數上限"
// @Success     200 {array}  api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := api.ListUsersRequest{Limit: api.DefaultUserLimit}
		if err := api.Bind(c, &req); err != nil {
			return handler.BadRequest(c, "invalid pagination parameters")
		}
		// ?limit= 空值視同未指定
		if c.QueryParam("limit") == "" {
			req.Limit = api.DefaultUserLimit
		}
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, err.Error())
		}

		ctx := c.Request().Context()
		var list []model.User
		err := withTx(ctx, db, func(q database.Querier) error {
			var err error
			list, err = listUsers(ctx, q, req.Skip, req.Limit)
			return err
		})
		if err != nil {
			return handler.InternalError(c, err)
		}

		resp := make([]api.UserResponse, 0, len(list))
		for _, u := range list {
			resp = append(resp, api.NewUserResponse(u))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Delete a user by ID
// @Description 根據使用者 ID 刪除使用者帳號
// @Tags        users
// @Produce     json
// @Param       id   path      int  true  "使用者 ID"
// @Success     200  {object}  api.MessageResponse
// @Failure     400  {object}  api.ErrorResponse  "參數錯誤"
// @Failure     404  {object}  api.ErrorResponse  "使用者不存在"
// @Failure     500  {object}  api.ErrorResponse  "伺服器錯誤"
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.IntParam(c, "id")
		if !ok {
			return handler.BadRequest(c, "invalid user ID")
		}

		ctx := c.Request().Context()
		err := withTx(ctx, db, func(q database.Querier) error {
			return deleteUser(ctx, q, id)
		})
		switch {
		case errors.Is(err, store.ErrNotFound):
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: errNotFound})
		case err != nil:
			return handler.InternalError(c, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "User deleted successfully"})
	}
}
