package models

import (
	"time"

	"github.com/lib/pq"
)

// Project 项目模型（源表，索引流水线只读，除indexed_at外不写）
type Project struct {
	ID             uint           `gorm:"primaryKey;column:id" json:"id"`
	Title          string         `gorm:"size:255;not null" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	RequiredSkills pq.StringArray `gorm:"type:text[];column:required_skills" json:"required_skills"`
	TechStack      string         `gorm:"size:500;column:tech_stack" json:"tech_stack"`
	LeaderID       uint           `gorm:"column:leader_id" json:"leader_id"`
	UpdatedAt      time.Time      `gorm:"column:updated_at" json:"updated_at"`
	IndexedAt      *time.Time     `gorm:"column:indexed_at" json:"indexed_at"`
}

func (Project) TableName() string {
	return "projects"
}

// PendingProject 待索引项目行（含join出的负责人姓名）
type PendingProject struct {
	ID             uint           `gorm:"column:id"`
	Title          string         `gorm:"column:title"`
	Description    string         `gorm:"column:description"`
	RequiredSkills pq.StringArray `gorm:"type:text[];column:required_skills"`
	TechStack      string         `gorm:"column:tech_stack"`
	LeaderName     string         `gorm:"column:leader_name"`
}
