package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainagg "github.com/yungbote/staffing-backend/internal/domain/aggregates"
)

// StatusFor maps an error kind to its HTTP status.
func StatusFor(err error) (int, domainagg.ErrorCode) {
	code := domainagg.CodeOf(err)
	switch code {
	case domainagg.CodeNotFound:
		return http.StatusNotFound, code
	case domainagg.CodeInvalidArgument:
		return http.StatusBadRequest, code
	case domainagg.CodeConflict:
		return http.StatusConflict, code
	case domainagg.CodeUnavailable:
		return http.StatusServiceUnavailable, code
	default:
		return http.StatusInternalServerError, domainagg.CodeInternal
	}
}

// RespondDomainError writes err using the status of its kind. Internal errors
// are reported with a generic message.
func RespondDomainError(c *gin.Context, err error) {
	status, code := StatusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		RespondError(c, status, string(code), errInternal)
		return
	}
	RespondError(c, status, string(code), err)
}

type internalError struct{}

func (internalError) Error() string { return "internal error" }

var errInternal error = internalError{}
