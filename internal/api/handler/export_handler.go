package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"stargate/backend/internal/service"
	"stargate/backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 任命历史导出 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportDuties 导出指定人员的任命历史 xlsx
// GET /api/v1/export/duties/:name
func (h *ExportHandler) ExportDuties(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		response.BadRequest(c, "name must not be blank")
		return
	}

	buf, filename, err := h.exportSvc.ExportDutyHistory(c.Request.Context(), name)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPersonNotFound):
		response.NotFound(c, "person does not exist")
	case errors.Is(err, service.ErrNoDutyHistory):
		response.BadRequest(c, "person has no duty history to export")
	default:
		response.InternalError(c, err.Error())
	}
}
