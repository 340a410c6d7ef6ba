package httperr

import (
	"net/http"
	"strings"

	"hotel-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Response is the error body every handler writes; ErrorHandler replays it
// from c.Errors when a handler aborted without writing.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError records err on the context for logging and writes msg to the
// client. A nil err is replaced by msg so the context always carries a cause.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortBadRequest answers 400 for a binding failure. Validator errors are
// listed under detail.fields as field name to failed rule.
func AbortBadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, err, msg, bindingDetail(err))
}

// AbortWithReason answers with detail.reason set, used for refusals the client
// can act on.
func AbortWithReason(c *gin.Context, status int, err error, msg, reason string) {
	AbortWithError(c, status, err, msg, gin.H{"reason": reason})
}

func bindingDetail(err error) any {
	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) || len(verrs) == 0 {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[lowerFirst(fe.Field())] = fe.Tag()
	}
	return gin.H{"fields": fields}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
