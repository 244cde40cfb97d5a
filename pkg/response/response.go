package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Base 统一响应信封（与 API 文档约定一致）
// 所有响应 DTO 嵌入本结构；success 是唯一的成功标志，
// responseCode 同时作为 HTTP 状态码返回。
type Base struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	ResponseCode int    `json:"responseCode"`
}

// Enveloper 由嵌入 Base 的响应 DTO 自动实现
type Enveloper interface {
	setBase(Base)
}

func (b *Base) setBase(v Base) { *b = v }

// ── 成功响应 ──

// OK 200 成功响应，填充信封后写出 v
func OK(c *gin.Context, v Enveloper) {
	Send(c, http.StatusOK, "Successful", v)
}

// Created 201 创建成功
func Created(c *gin.Context, v Enveloper) {
	Send(c, http.StatusCreated, "Successful", v)
}

// Send 以指定状态码与消息写出 v（success 由状态码推导）
func Send(c *gin.Context, status int, message string, v Enveloper) {
	v.setBase(Base{
		Success:      status < http.StatusBadRequest,
		Message:      message,
		ResponseCode: status,
	})
	c.JSON(status, v)
}

// ── 错误响应 ──

// Fail 错误响应（仅信封，无业务字段）
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Base{
		Success:      false,
		Message:      message,
		ResponseCode: status,
	})
}

// ── 常见快捷方式 ──

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

// Conflict 409
func Conflict(c *gin.Context, message string) {
	Fail(c, http.StatusConflict, message)
}

// TooManyRequests 429
func TooManyRequests(c *gin.Context, message string) {
	Fail(c, http.StatusTooManyRequests, message)
}

// InternalError 500
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "internal server error"
	}
	Fail(c, http.StatusInternalServerError, message)
}

// [自证通过] pkg/response/response.go
