package store

import (
	"context"
	"fmt"

	"portfolio-api/internal/database"
	"portfolio-api/internal/model"
)

// CreateContact 新增聯絡訊息，visited 一律為 false
func CreateContact(ctx context.Context, q database.Querier, c *model.Contact) (*model.Contact, error) {
	row := q.QueryRow(ctx,
		`INSERT INTO "Contact" (name, email, msg, visited)
		 VALUES ($1, $2, $3, FALSE)
		 RETURNING id, visited`,
		c.Name,
		c.Email,
		c.Msg,
	)
	if err := row.Scan(&c.ID, &c.Visited); err != nil {
		return nil, fmt.Errorf("CreateContact: %w", translate(err))
	}
	return c, nil
}

// MarkAllContactsVisited 將所有訊息標記為已讀，並回傳更新後的全部資料 (依 id 排序)
func MarkAllContactsVisited(ctx context.Context, q database.Querier) ([]model.Contact, error) {
	rows, err := q.Query(ctx,
		`WITH updated AS (
		     UPDATE "Contact" SET visited = TRUE
		     RETURNING id, name, email, msg, visited
		 )
		 SELECT id, name, email, msg, visited FROM updated ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("MarkAllContactsVisited: %w", err)
	}
	defer rows.Close()

	list := []model.Contact{}
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Msg, &c.Visited); err != nil {
			return nil, fmt.Errorf("MarkAllContactsVisited: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("MarkAllContactsVisited: %w", err)
	}
	return list, nil
}

func CountUnvisitedContacts(ctx context.Context, q database.Querier) (int, error) {
	var n int
	row := q.QueryRow(ctx, `SELECT COUNT(*) FROM "Contact" WHERE visited = FALSE`)
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("CountUnvisitedContacts: %w", err)
	}
	return n, nil
}
