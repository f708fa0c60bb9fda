package store

import (
	"context"
	"fmt"

	"portfolio-api/internal/database"
	"portfolio-api/internal/model"
)

func CreateExperience(ctx context.Context, q database.Querier, e *model.Experience) (*model.Experience, error) {
	row := q.QueryRow(ctx,
		`INSERT INTO "Experience" (name, description, skills, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		e.Name,
		e.Description,
		e.Skills,
		e.StartDate,
		e.EndDate,
	)
	if err := row.Scan(&e.ID); err != nil {
		return nil, fmt.Errorf("CreateExperience: %w", translate(err))
	}
	return e, nil
}

// ListExperiences 依 start_date 由舊到新排序，同日再依 id
func ListExperiences(ctx context.Context, q database.Querier) ([]model.Experience, error) {
	rows, err := q.Query(ctx,
		`SELECT id, name, description, skills, start_date, end_date
		 FROM "Experience"
		 ORDER BY start_date ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListExperiences: %w", err)
	}
	defer rows.Close()

	list := []model.Experience{}
	for rows.Next() {
		var e model.Experience
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Skills, &e.StartDate, &e.EndDate); err != nil {
			return nil, fmt.Errorf("ListExperiences: %w", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListExperiences: %w", err)
	}
	return list, nil
}
