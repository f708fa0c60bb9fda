package components

import (
	"errors"
	"net/http"

	"portfolio-api/internal/api"
	"portfolio-api/internal/database"
	"portfolio-api/internal/handler"
	"portfolio-api/internal/model"
	"portfolio-api/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	withTx           = database.WithTx
	createComponent  = store.CreateComponent
	listComponents   = store.ListComponents
	getComponentByID = store.GetComponentByID
	updateComponent  = store.UpdateComponent
	deleteComponent  = store.DeleteComponent
)

const errNotFound = "Component not found"

// @Summary     Create a component
// @Description 新增一筆作品集項目，欄位可放在 query string 或 body
// @Tags        components
// @Accept      json
// @Produce     json
// @Param       request body api.CreateComponentRequest true "Component"
// @Success     200 {object} model.Component
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /components [post]
func CreateComponentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateComponentRequest
		if err := api.Bind(c, &req); err != nil {
			return handler.BadRequest(c, "invalid request")
		}
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, err.Error())
		}

		ctx := c.Request().Context()
		var created *model.Component
		err := withTx(ctx, db, func(q database.Querier) error {
			var err error
			created, err = createComponent(ctx, q, &model.Component{
				Title:   req.Title,
				Summary: req.Summary,
				Link:    req.Link,
			})
			return err
		})
		if err != nil {
			return handler.InternalError(c, err)
		}
		return c.JSON(http.StatusOK, created)
	}
}

// @Summary     List components
// @Tags        components
// @Produce     json
// @Success     200 {array} model.Component
// @Failure     500 {object} api.ErrorResponse
// @Router      /components [get]
func ListComponentsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		var list []model.Component
		err := withTx(ctx, db, func(q database.Querier) error {
			var err error
			list, err = listComponents(ctx, q)
			return err
		})
		if err != nil {
			return handler.InternalError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	}
}

// @Summary     Get a component by ID
// @Tags        components
// @Produce     json
// @Param       id  path     int true "Component ID"
// @Success     200 {object} model.Component
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /components/{id} [get]
func GetComponentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.IntParam(c, "id")
		if !ok {
			return handler.BadRequest(c, "invalid component ID")
		}

		ctx := c.Request().Context()
		var found *model.Component
		err := withTx(ctx, db, func(q database.Querier) error {
			var err error
			found, err = getComponentByID(ctx, q, id)
			return err
		})
		switch {
		case errors.Is(err, store.ErrNotFound):
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: errNotFound})
		case err != nil:
			return handler.InternalError(c, err)
		}
		return c.JSON(http.StatusOK, found)
	}
}

// @Summary     Update a component
// @Description 以 id 完整覆寫 title / summary / link；id 不存在時回傳 404 且不做任何修改
// @Tags        components
// @Accept      json
// @Produce     json
// @Param       request body api.UpdateComponentRequest true "Component"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /components [put]
func UpdateComponentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateComponentRequest
		if err := api.Bind(c, &req); err != nil {
			return handler.BadRequest(c, "invalid request")
		}
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, err.Error())
		}

		ctx := c.Request().Context()
		err := withTx(ctx, db, func(q database.Querier) error {
			// 先確認存在再修改
			existing, err := getComponentByID(ctx, q, req.ID)
			if err != nil {
				return err
			}
			existing.Title = req.Title
			existing.Summary = req.Summary
			existing.Link = req.Link
			return updateComponent(ctx, q, existing)
		})
		switch {
		case errors.Is(err, store.ErrNotFound):
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: errNotFound})
		case err != nil:
			return handler.InternalError(c, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Component updated successfully"})
	}
}

// @Summary     Delete a component by ID
// @Tags        components
// @Produce     json
// @Param       id  path     int true "Component ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /components/{id} [delete]
func DeleteComponentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.IntParam(c, "id")
		if !ok {
			return handler.BadRequest(c, "invalid component ID")
		}

		ctx := c.Request().Context()
		err := withTx(ctx, db, func(q database.Querier) error {
			return deleteComponent(ctx, q, id)
		})
		switch {
		case errors.Is(err, store.ErrNotFound):
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: errNotFound})
		case err != nil:
			return handler.InternalError(c, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Component deleted successfully"})
	}
}

