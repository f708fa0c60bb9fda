package api

// DefaultUserLimit 為未指定 limit 時的預設筆數
const DefaultUserLimit = 10

// ListUsersRequest 分頁參數；limit 沒有上限
// swagger:model api.ListUsersRequest
type ListUsersRequest struct {
	Skip  int `query:"skip" validate:"gte=0" example:"0"`
	Limit int `query:"limit" validate:"gte=0" example:"10"`
}
