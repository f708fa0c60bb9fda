package database

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// WithTx 開啟一個交易並執行 fn：fn 成功則 commit，回傳錯誤或 panic 則 rollback。
// 無論哪一條路徑，交易都會被釋放。
func WithTx(ctx context.Context, db DB, fn func(q Querier) error) error {
	return pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		return fn(tx)
	})
}
