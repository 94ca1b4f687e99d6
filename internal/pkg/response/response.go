package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/lk2023060901/websearch-mcp/internal/pkg/errors"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`              // 业务错误码（0表示成功）
	Message string      `json:"message,omitempty"` // 提示信息
	Data    interface{} `json:"data"`              // 搜索结果信封（失败时为空对象 {}）
}

// Success 成功响应（200）
func Success(c *gin.Context, data interface{}) {
	if data == nil {
		data = struct{}{}
	}
	c.JSON(http.StatusOK, Response{
		Code: apperrors.Success,
		Data: data,
	})
}

// Error 错误响应
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, Response{
		Code:    httpStatus,
		Message: message,
		Data:    struct{}{},
	})
}

// NotFound 404 错误
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// HandleError 统一错误处理（使用AppError）
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	code := apperrors.ExtractCode(err)
	httpStatus := apperrors.GetHTTPStatus(code)
	message := apperrors.FormatError(code, apperrors.GetDetails(err))

	c.JSON(httpStatus, Response{
		Code:    code,
		Message: message,
		Data:    struct{}{},
	})
}

// ErrorWithCode 使用错误码的错误响应
func ErrorWithCode(c *gin.Context, code int, details ...string) {
	httpStatus := apperrors.GetHTTPStatus(code)
	message := apperrors.FormatError(code, details...)

	c.JSON(httpStatus, Response{
		Code:    code,
		Message: message,
		Data:    struct{}{},
	})
}
