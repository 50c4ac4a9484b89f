package models

import (
	"time"

	"github.com/lib/pq"
)

// User 用户模型（源表，索引流水线只读，除indexed_at外不写）
type User struct {
	ID        uint           `gorm:"primaryKey;column:id" json:"id"`
	FullName  string         `gorm:"size:200;column:full_name" json:"full_name"`
	Roles     pq.StringArray `gorm:"type:text[];column:roles" json:"roles"`
	Interest  string         `gorm:"size:500" json:"interest"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updated_at"`
	IndexedAt *time.Time     `gorm:"column:indexed_at" json:"indexed_at"`
}

func (User) TableName() string {
	return "users"
}

// PendingUser 待索引用户行
type PendingUser struct {
	ID       uint           `gorm:"column:id"`
	FullName string         `gorm:"column:full_name"`
	Roles    pq.StringArray `gorm:"type:text[];column:roles"`
	Interest string         `gorm:"column:interest"`
}
