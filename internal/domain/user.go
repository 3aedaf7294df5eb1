package domain

// User is an account that owns meal entries and a goal. Only the
// bcrypt hash of the password is ever stored.
type User struct {
	Username     string `gorm:"primaryKey" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
}

func (User) TableName() string { return "users" }
