package models

type AdminRole string

const (
	AdminRoleAdmin   AdminRole = "admin"
	AdminRoleManager AdminRole = "manager"
)

// AdminUser - allow-list администраторов. Выдача кодов и модерация
// отзывов доступны только записям из этой таблицы.
type AdminUser struct {
	BaseModel
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         AdminRole `gorm:"default:'manager'" json:"role"`
}

func (AdminUser) TableName() string { return "admin_users" }
