package repository

import (
	"context"
	"time"

	"github.com/lib/pq"
	"github.com/modx/ai-service/internal/models"
	"gorm.io/gorm"
)

// SourceRepository 读取待索引的源记录并推进indexed_at水位
type SourceRepository interface {
	ListPendingProjects(ctx context.Context) ([]models.PendingProject, error)
	ListPendingUsers(ctx context.Context) ([]models.PendingUser, error)
	MarkProjectsIndexed(ctx context.Context, ids []uint) error
	MarkUsersIndexed(ctx context.Context, ids []uint) error
}

// sourceRepository 基于gorm/Postgres的实现
type sourceRepository struct {
	db *gorm.DB
}

// NewSourceRepository 创建源记录仓库
func NewSourceRepository(db *gorm.DB) SourceRepository {
	return &sourceRepository{db: db}
}

// ListPendingProjects 查询新建或更新过的项目，join出负责人姓名
func (r *sourceRepository) ListPendingProjects(ctx context.Context) ([]models.PendingProject, error) {
	var rows []models.PendingProject
	err := r.db.WithContext(ctx).
		Table("projects p").
		Select("p.id, p.title, p.description, p.required_skills, p.tech_stack, u.full_name AS leader_name").
		Joins("JOIN users u ON p.leader_id = u.id").
		Where("p.indexed_at IS NULL OR p.updated_at > p.indexed_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListPendingUsers 查询新建或更新过的用户
func (r *sourceRepository) ListPendingUsers(ctx context.Context) ([]models.PendingUser, error) {
	var rows []models.PendingUser
	err := r.db.WithContext(ctx).
		Table("users").
		Select("id, full_name, roles, interest").
		Where("indexed_at IS NULL OR updated_at > indexed_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MarkProjectsIndexed 批量推进项目的indexed_at水位
// 只在向量库确认整批写入后调用
func (r *sourceRepository) MarkProjectsIndexed(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Exec("UPDATE projects SET indexed_at = ? WHERE id = ANY(?)", time.Now(), idsToInt64Array(ids)).Error
}

// MarkUsersIndexed 批量推进用户的indexed_at水位
func (r *sourceRepository) MarkUsersIndexed(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Exec("UPDATE users SET indexed_at = ? WHERE id = ANY(?)", time.Now(), idsToInt64Array(ids)).Error
}

func idsToInt64Array(ids []uint) pq.Int64Array {
	out := make(pq.Int64Array, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}
