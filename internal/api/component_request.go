package api

// swagger:model api.CreateComponentRequest
type CreateComponentRequest struct {
	Title   string `query:"title" form:"title" json:"title" validate:"required" example:"Portfolio site"`
	Summary string `query:"summary" form:"summary" json:"summary" validate:"required" example:"Personal site built with Go"`
	Link    string `query:"link" form:"link" json:"link" validate:"required" example:"https://github.com/me/site"`
}

// swagger:model api.UpdateComponentRequest
type UpdateComponentRequest struct {
	ID      int    `query:"id" form:"id" json:"id" validate:"required" example:"1"`
	Title   string `query:"title" form:"title" json:"title" validate:"required" example:"Portfolio site"`
	Summary string `query:"summary" form:"summary" json:"summary" validate:"required" example:"Personal site built with Go"`
	Link    string `query:"link" form:"link" json:"link" validate:"required" example:"https://github.com/me/site"`
}
