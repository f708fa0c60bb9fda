package contact

import (
	"net/http"

	"portfolio-api/internal/api"
	"portfolio-api/internal/database"
	"portfolio-api/internal/handler"
	"portfolio-api/internal/model"
	"portfolio-api/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	withTx                 = database.WithTx
	createContact          = store.CreateContact
	markAllContactsVisited = store.MarkAllContactsVisited
	countUnvisitedContacts = store.CountUnvisitedContacts
)

// @Summary     Leave a contact message
// @Description 新訊息一律為未讀 (visited=false)
// @Tags        contact
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       request body api.CreateContactRequest true "Message"
// @Success     200 {object} model.Contact
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /contact [post]
func CreateContactHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateContactRequest
		if err := api.Bind(c, &req); err != nil {
			return handler.BadRequest(c, "invalid request")
		}
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, err.Error())
		}

		ctx := c.Request().Context()
		var created *model.Contact
		err := withTx(ctx, db, func(q database.Querier) error {
			var err error
			created, err = createContact(ctx, q, &model.Contact{
				Name:  req.Name,
				Email: req.Email,
				Msg:   req.Msg,
			})
			return err
		})
		if err != nil {
			return handler.InternalError(c, err)
		}
		return c.JSON(http.StatusOK, created)
	}
}

// MarkAllVisitedHandler 回傳全部訊息，並在同一個交易中將它們標記為已讀
// @Summary     Read all contact messages
// @Description 回傳所有訊息並全部標記為已讀
// @Tags        contact
// @Produce     json
// @Success     200 {array}  model.Contact
// @Failure     500 {object} api.ErrorResponse
// @Router      /contact [get]
func MarkAllVisitedHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		var list []model.Contact
		err := withTx(ctx, db, func(q database.Querier) error {
			var err error
			list, err = markAllContactsVisited(ctx, q)
			return err
		})
		if err != nil {
			return handler.InternalError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	}
}

// @Summary     Count unread contact messages
// @Tags        contact
// @Produce     json
// @Success     200 {object} api.CountResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /contact-count [get]
func CountUnvisitedHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		var n int
		err := withTx(ctx, db, func(q database.Querier) error {
			var err error
			n, err = countUnvisitedContacts(ctx, q)
			return err
		})
		if err != nil {
			return handler.InternalError(c, err)
		}
		return c.JSON(http.StatusOK, api.CountResponse{Count: n})
	}
}
