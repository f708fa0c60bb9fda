package model

import "time"

// Experience 是一筆工作經歷；StartDate / EndDate 只保留日期部分
type Experience struct {
	ID          int       `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Skills      []string  `db:"skills"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
}
