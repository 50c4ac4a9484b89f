package services

import (
	"fmt"
	"strings"

	"github.com/modx/ai-service/internal/models"
)

// 文档类型，查询时用作元数据过滤
const (
	DocTypeProject = "project"
	DocTypeUser    = "user"
)

// Document 待索引的规范化文档
// DocID是(源表, 源id)的纯函数，保证重复合成得到同一id以支持upsert语义
type Document struct {
	DocID    string
	Text     string
	Metadata map[string]string
}

// DocType 返回元数据中的文档类型
func (d Document) DocType() string {
	return d.Metadata["doc_type"]
}

// ProjectDocID 生成项目文档id
func ProjectDocID(id uint) string {
	return fmt.Sprintf("project_%d", id)
}

// UserDocID 生成用户文档id
func UserDocID(id uint) string {
	return fmt.Sprintf("user_%d", id)
}

// SynthesizeProject 将项目行合成为规范化文档
// 纯函数：模板固定，数组字段用", "稳定连接，nil数组渲染为空串
func SynthesizeProject(row models.PendingProject) Document {
	text := fmt.Sprintf(
		"Project: %s. Led by: %s. Description: %s. Skills: %s. Tech Stack: %s.",
		row.Title,
		row.LeaderName,
		row.Description,
		strings.Join(row.RequiredSkills, ", "),
		row.TechStack,
	)
	return Document{
		DocID:    ProjectDocID(row.ID),
		Text:     text,
		Metadata: map[string]string{"doc_type": DocTypeProject},
	}
}

// SynthesizeUser 将用户行合成为规范化文档
func SynthesizeUser(row models.PendingUser) Document {
	text := fmt.Sprintf(
		"User: %s. Roles: %s. Interests: %s.",
		row.FullName,
		strings.Join(row.Roles, ", "),
		row.Interest,
	)
	return Document{
		DocID:    UserDocID(row.ID),
		Text:     text,
		Metadata: map[string]string{"doc_type": DocTypeUser},
	}
}
