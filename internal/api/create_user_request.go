package api

// 欄位可來自 query string、form 或 JSON body
// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Name     string `query:"name" form:"name" json:"name" validate:"required" example:"Alice"`
	Email    string `query:"email" form:"email" json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `query:"password" form:"password" json:"password" validate:"required" example:"Secret123!"`
}
