package model

// Component 是作品集中的一個專案項目
type Component struct {
	ID      int    `db:"id" json:"id"`
	Title   string `db:"title" json:"title"`
	Summary string `db:"summary" json:"summary"`
	Link    string `db:"link" json:"link"`
}
