// File: internal/model/user.go
package model

// User 的 Password 為明文或 bcrypt 雜湊，取決於 PASSWORD_HASHING 設定
type User struct {
	ID       int    `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	Password string `db:"password" json:"-"`
}
