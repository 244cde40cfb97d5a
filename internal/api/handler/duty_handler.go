package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"stargate/backend/internal/dto"
	"stargate/backend/internal/service"
	"stargate/backend/pkg/response"
)

// DutyHandler 任命模块 HTTP 处理器
type DutyHandler struct {
	dutySvc service.DutyService
}

// NewDutyHandler 创建 DutyHandler
func NewDutyHandler(dutySvc service.DutyService) *DutyHandler {
	return &DutyHandler{dutySvc: dutySvc}
}

// CreateDuty 任命
// POST /api/v1/duties
func (h *DutyHandler) CreateDuty(c *gin.Context) {
	var req dto.CreateAstronautDutyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	id, err := h.dutySvc.Assign(c.Request.Context(), &req)
	if err != nil {
		h.handleDutyError(c, err)
		return
	}

	response.Created(c, &dto.CreateAstronautDutyResponse{ID: id})
}

// GetDuties 按姓名查询任命历史
// GET /api/v1/duties/:name
func (h *DutyHandler) GetDuties(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		response.BadRequest(c, "name must not be blank")
		return
	}

	result, message, err := h.dutySvc.GetDutiesByName(c.Request.Context(), name)
	if err != nil {
		h.handleDutyError(c, err)
		return
	}

	if message != "" {
		// 历史为空：success 仍为 true，message 仅作提示
		response.Send(c, 200, message, result)
		return
	}
	response.OK(c, result)
}

// handleDutyError 统一处理任命模块业务错误
func (h *DutyHandler) handleDutyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPersonNotFound):
		response.NotFound(c, "person does not exist")
	case errors.Is(err, service.ErrDutyAlreadyAssigned):
		response.Conflict(c, "person is already assigned that duty")
	case errors.Is(err, service.ErrInvalidStartDate):
		response.BadRequest(c, "invalid duty start date")
	default:
		response.InternalError(c, err.Error())
	}
}
