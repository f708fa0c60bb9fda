package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	Username string `form:"username" json:"username" validate:"required" example:"Alice"`
	Password string `form:"password" json:"password" validate:"required" example:"Secret123!"`
}

// LoginResponse 的 res 固定為字串 "true"
// swagger:model api.LoginResponse
type LoginResponse struct {
	Res string `json:"res" example:"true"`
}
