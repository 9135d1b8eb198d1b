package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/carkenya/internal/domain/apperr"
	"github.com/mikiasgoitom/carkenya/internal/handler/http/dto"
	"github.com/mikiasgoitom/carkenya/internal/handler/http/middleware"
	"github.com/mikiasgoitom/carkenya/internal/infrastructure/validator"
)

// ErrorHandler centralizes error handling for HTTP responses. The status code
// is derived from the error kind.
func ErrorHandler(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal {
		_ = c.Error(err)
	}
	c.JSON(kind.HTTPStatus(), dto.ErrorResponse{Error: apperr.MessageOf(err), Code: string(kind)})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// DeletedHandler acknowledges deletes and logout.
func DeletedHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		appErr := apperr.InvalidInput(validator.FormatError(err))
		ErrorHandler(c, appErr)
		return appErr
	}
	return nil
}

// BindQuery binds and validates query-string parameters.
func BindQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		appErr := apperr.InvalidInput(validator.FormatError(err))
		ErrorHandler(c, appErr)
		return appErr
	}
	return nil
}

var callerFrom = middleware.CallerFrom
