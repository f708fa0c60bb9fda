package api

// ErrorResponse 全域錯誤響應模型
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message" example:"component not found"`
}

// MessageResponse 用於更新、刪除成功後的訊息
// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Component deleted successfully"`
}
