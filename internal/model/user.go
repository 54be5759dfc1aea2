package model

// UserRole 用户角色
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// User 用户模型，PublicID 是对外暴露的 snowflake ID
type User struct {
	BaseModel
	PublicID     int64    `gorm:"not null;uniqueIndex" json:"public_id"`
	Email        string   `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Username     string   `gorm:"type:varchar(64)" json:"username"`
	PasswordHash string   `gorm:"type:varchar(128);not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(16);not null;default:'user'" json:"role"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
