package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	statusCode int

	ErrCode int    `json:"code"`
	ErrMsg  string `json:"error"`
}

func NewErr(statusCode, errCode int, err error) *Err {
	return &Err{
		statusCode: statusCode,
		ErrCode:    errCode,
		ErrMsg:     err.Error(),
	}
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.AbortWithStatusJSON(err.statusCode, err)
}

func ErrBadRequest(err error) *Err {
	return NewErr(http.StatusBadRequest, http.StatusBadRequest, err)
}

func ErrNotFound(err error) *Err {
	return NewErr(http.StatusNotFound, http.StatusNotFound, err)
}

func ErrConflict(err error) *Err {
	return NewErr(http.StatusConflict, http.StatusConflict, err)
}

func ErrUnauthorized(err error) *Err {
	return NewErr(http.StatusUnauthorized, http.StatusUnauthorized, err)
}

func ErrForbidden(err error) *Err {
	return NewErr(http.StatusForbidden, http.StatusForbidden, err)
}

func ErrWrongCredentials(err error) *Err {
	return NewErr(http.StatusUnauthorized, http.StatusUnauthorized, err)
}

// ErrInternalServerError logs the underlying error and renders a generic
// message, so contract violations inside the store never leak internals.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		statusCode: http.StatusInternalServerError,
		ErrCode:    http.StatusInternalServerError,
		ErrMsg:     "internal server error, please retry",
	}
}
