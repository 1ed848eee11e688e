package models

// User represents a bakery customer account.
// Password holds a bcrypt hash, never the plaintext.
type User struct {
	Username string `gorm:"primaryKey;size:64" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"`
	Email    string `gorm:"size:128;uniqueIndex;not null" json:"email"`
	LoggedIn bool   `gorm:"column:loggedin;not null" json:"loggedin"`
}

func (User) TableName() string { return "users" }
