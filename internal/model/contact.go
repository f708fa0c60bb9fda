package model

// Contact 是訪客送出的聯絡訊息，Visited 代表是否已讀
type Contact struct {
	ID      int    `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Email   string `db:"email" json:"email"`
	Msg     string `db:"msg" json:"msg"`
	Visited bool   `db:"visited" json:"visited"`
}
