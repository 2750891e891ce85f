package domain

// User maps llm_app.users. It is only read for the already-seeded sentinel;
// seed writes go through raw parameterized SQL so that password hashing
// happens inside PostgreSQL (crypt with a bcrypt salt).
type User struct {
	ID              int64  `gorm:"primaryKey" json:"id"`
	APIKey          string `gorm:"column:api_key;type:text;not null;unique" json:"api_key"`
	Username        string `gorm:"type:text;not null;unique" json:"username"`
	PasswordHash    string `gorm:"type:text;not null" json:"-"`
	Role            string `gorm:"type:text;not null" json:"role"`
	IsActive        bool   `gorm:"not null;default:true" json:"is_active"`
	DailyTokenLimit int64  `gorm:"not null" json:"daily_token_limit"`
	DisplayName     string `gorm:"type:text" json:"display_name"`
	ClassName       string `gorm:"type:text" json:"class_name"`
}

func (User) TableName() string {
	return "llm_app.users"
}
