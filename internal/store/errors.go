package store

import (
	"errors"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound 代表依 ID 查無資料，handler 應轉為 404
	ErrNotFound = errors.New("not found")
	// ErrConflict 代表違反唯一性限制，handler 應轉為 409
	ErrConflict = errors.New("conflict")
)

// MaxID 為 SERIAL (int4) 主鍵的上限
const MaxID = math.MaxInt32

// validID 回報 id 是否可能存在於 SERIAL 欄位
func validID(id int) bool {
	return id > 0 && id <= MaxID
}

// SQLSTATE unique_violation
const uniqueViolation = "23505"

func translate(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrConflict
	}
	return err
}
