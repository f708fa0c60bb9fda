package api

// CreateExperienceRequest 一次可建立一筆或多筆經歷
// swagger:model api.CreateExperienceRequest
type CreateExperienceRequest struct {
	Item []ExperienceItem `json:"item" validate:"required,min=1,dive"`
}

// ExperienceItem 的日期格式為 dd-mm-yyyy
// swagger:model api.ExperienceItem
type ExperienceItem struct {
	Name      string   `json:"name" validate:"required" example:"Backend Engineer"`
	Desc      string   `json:"desc" validate:"required" example:"Built APIs"`
	Skills    []string `json:"skills" validate:"required,min=1,dive,required" example:"go,postgres"`
	StartDate string   `json:"startDate" validate:"required,dmy" example:"01-01-2020"`
	EndDate   string   `json:"endDate" validate:"required,dmy" example:"31-12-2020"`
}
