package api

// swagger:model api.CreateContactRequest
type CreateContactRequest struct {
	Name  string `query:"name" form:"name" json:"name" validate:"required" example:"Bob"`
	Email string `query:"email" form:"email" json:"email" validate:"required,email" example:"bob@example.com"`
	Msg   string `query:"msg" form:"msg" json:"msg" validate:"required" example:"Hi, nice portfolio!"`
}

// swagger:model api.CountResponse
type CountResponse struct {
	Count int `json:"count" example:"3"`
}
