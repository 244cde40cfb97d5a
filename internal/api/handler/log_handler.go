package handler

import (
	"github.com/gin-gonic/gin"

	"stargate/backend/internal/dto"
	"stargate/backend/internal/service"
	"stargate/backend/pkg/response"
)

// LogHandler 审计日志模块 HTTP 处理器
type LogHandler struct {
	logSvc service.LogService
}

// NewLogHandler 创建 LogHandler
func NewLogHandler(logSvc service.LogService) *LogHandler {
	return &LogHandler{logSvc: logSvc}
}

// ListLogs 分页查询审计日志
// GET /api/v1/logs
func (h *LogHandler) ListLogs(c *gin.Context) {
	var req dto.ListLogsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}

	logs, total, err := h.logSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.OK(c, &dto.ListLogsResponse{
		Logs:     logs,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
}
