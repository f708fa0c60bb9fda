package store

import (
	"context"
	"fmt"

	"portfolio-api/internal/database"
	"portfolio-api/internal/model"

	"github.com/jackc/pgx/v5"
)

// CreateUser 新增使用者，email 重複時回傳 ErrConflict
func CreateUser(ctx context.Context, q database.Querier, u *model.User) (*model.User, error) {
	row := q.QueryRow(ctx,
		`INSERT INTO users (name, email, password)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		u.Name,
		u.Email,
		u.Password,
	)
	if err := row.Scan(&u.ID); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", translate(err))
	}
	return u, nil
}

func GetUserByID(ctx context.Context, q database.Querier, userID int) (*model.User, error) {
	if !validID(userID) {
		return nil, fmt.Errorf("GetUserByID: %w", ErrNotFound)
	}
	row := q.QueryRow(ctx,
		`SELECT id, name, email, password FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", translate(err))
	}
	return u, nil
}

// GetUsersByName 名稱不具唯一性，可能回傳多筆
func GetUsersByName(ctx context.Context, q database.Querier, name string) ([]model.User, error) {
	rows, err := q.Query(ctx,
		`SELECT id, name, email, password FROM users WHERE name = $1 ORDER BY id`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("GetUsersByName: %w", err)
	}
	return collectUsers(rows, "GetUsersByName")
}

// ListUsers 以 offset / limit 分頁，limit 不設上限
func ListUsers(ctx context.Context, q database.Querier, skip, limit int) ([]model.User, error) {
	rows, err := q.Query(ctx,
		`SELECT id, name, email, password FROM users
		 ORDER BY id
		 LIMIT $1 OFFSET $2`,
		limit,
		skip,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return collectUsers(rows, "ListUsers")
}

func DeleteUser(ctx context.Context, q database.Querier, ID int) error {
	if !validID(ID) {
		return fmt.Errorf("DeleteUser: %w", ErrNotFound)
	}
	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, ID)
	if err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteUser: %w", ErrNotFound)
	}
	return nil
}

func collectUsers(rows pgx.Rows, op string) ([]model.User, error) {
	defer rows.Close()
	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return users, nil
}
