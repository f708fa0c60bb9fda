package experience

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
	withTx           = database.WithTx
	createExperience = store.CreateExperience
	listExperiences  = store.ListExperiences
)

// @Summary     Create experience entries
// @Description 一次建立一筆或多筆經歷，日期格式為 dd-mm-yyyy。
// @Description 所有項目先全部驗證；之後每筆各自提交，第 k 筆寫入失敗時前面已提交的不會回滾。
// @Tags        experience
// @Accept      json
// @Produce     json
// @Param       request body api.CreateExperienceRequest true "Items"
// @Success     200 {array}  api.ExperienceResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /experience [post]
func CreateExperienceHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateExperienceRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "invalid request")
		}
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, err.Error())
		}

		items := make([]model.Experience, 0, len(req.Item))
		for _, it := range req.Item {
			start, err := api.ParseDate(it.StartDate)
			if err != nil {
				return handler.BadRequest(c, "invalid startDate: "+it.StartDate)
			}
			end, err := api.ParseDate(it.EndDate)
			if err != nil {
				return handler.BadRequest(c, "invalid endDate: "+it.EndDate)
			}
			items = append(items, model.Experience{
				Name:        it.Name,
				Description: it.Desc,
				Skills:      it.Skills,
				StartDate:   start,
				EndDate:     end,
			})
		}

		ctx := c.Request().Context()
		resp := make([]api.ExperienceResponse, 0, len(items))
		for i := range items {
			var created *model.Experience
			err := withTx(ctx, db, func(q database.Querier) error {
				var err error
				created, err = createExperience(ctx, q, &items[i])
				return err
			})
			if err != nil {
				return handler.InternalError(c, err)
			}
			resp = append(resp, api.NewExperienceResponse(*created))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     List experience entries
// @Description 依 startDate 由舊到新排序
// @Tags        experience
// @Produce     json
// @Success     200 {array}  api.ExperienceResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /get-exp [get]
func ListExperiencesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		var list []model.Experience
		err := withTx(ctx, db, func(q database.Querier) error {
			var err error
			list, err = listExperiences(ctx, q)
			return err
		})
		if err != nil {
			return handler.InternalError(c, err)
		}

		resp := make([]api.ExperienceResponse, 0, len(list))
		for _, e := range list {
			resp = append(resp, api.NewExperienceResponse(e))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
