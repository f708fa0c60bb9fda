package store

import (
	"context"
	"fmt"

	"portfolio-api/internal/database"
	"portfolio-api/internal/model"
)

func CreateComponent(ctx context.Context, q database.Querier, c *model.Component) (*model.Component, error) {
	row := q.QueryRow(ctx,
		`INSERT INTO components (title, summary, link)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		c.Title,
		c.Summary,
		c.Link,
	)
	if err := row.Scan(&c.ID); err != nil {
		return nil, fmt.Errorf("CreateComponent: %w", translate(err))
	}
	return c, nil
}

func ListComponents(ctx context.Context, q database.Querier) ([]model.Component, error) {
	rows, err := q.Query(ctx,
		`SELECT id, title, summary, link FROM components ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListComponents: %w", err)
	}
	defer rows.Close()

	list := []model.Component{}
	for rows.Next() {
		var c model.Component
		if err := rows.Scan(&c.ID, &c.Title, &c.Summary, &c.Link); err != nil {
			return nil, fmt.Errorf("ListComponents: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListComponents: %w", err)
	}
	return list, nil
}

func GetComponentByID(ctx context.Context, q database.Querier, id int) (*model.Component, error) {
	if !validID(id) {
		return nil, fmt.Errorf("GetComponentByID: %w", ErrNotFound)
	}
	row := q.QueryRow(ctx,
		`SELECT id, title, summary, link FROM components WHERE id = $1`,
		id,
	)
	c := &model.Component{}
	if err := row.Scan(&c.ID, &c.Title, &c.Summary, &c.Link); err != nil {
		return nil, fmt.Errorf("GetComponentByID: %w", translate(err))
	}
	return c, nil
}

// UpdateComponent 完整覆寫 title / summary / link，查無此 ID 時回傳 ErrNotFound
func UpdateComponent(ctx context.Context, q database.Querier, c *model.Component) error {
	if !validID(c.ID) {
		return fmt.Errorf("UpdateComponent: %w", ErrNotFound)
	}
	tag, err := q.Exec(ctx,
		`UPDATE components SET title = $1, summary = $2, link = $3
		 WHERE id = $4`,
		c.Title,
		c.Summary,
		c.Link,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateComponent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateComponent: %w", ErrNotFound)
	}
	return nil
}

func DeleteComponent(ctx context.Context, q database.Querier, id int) error {
	if !validID(id) {
		return fmt.Errorf("DeleteComponent: %w", ErrNotFound)
	}
	tag, err := q.Exec(ctx, `DELETE FROM components WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteComponent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteComponent: %w", ErrNotFound)
	}
	return nil
}
