package api

import "portfolio-api/internal/model"

// ResponseDateLayout 為回應中日期的格式 (ISO 8601)
const ResponseDateLayout = "2006-01-02"

// swagger:model api.ExperienceResponse
type ExperienceResponse struct {
	ID        int      `json:"id" example:"1"`
	Name      string   `json:"name" example:"Backend Engineer"`
	Desc      string   `json:"desc" example:"Built APIs"`
	Skills    []string `json:"skills" example:"go,postgres"`
	StartDate string   `json:"startDate" example:"2020-01-01"`
	EndDate   string   `json:"endDate" example:"2020-12-31"`
}

func NewExperienceResponse(e model.Experience) ExperienceResponse {
	return ExperienceResponse{
		ID:        e.ID,
		Name:      e.Name,
		Desc:      e.Description,
		Skills:    e.Skills,
		StartDate: e.StartDate.Format(ResponseDateLayout),
		EndDate:   e.EndDate.Format(ResponseDateLayout),
	}
}
