// Package httperr shapes the public error body the console API returns
// and keeps the causal error on the gin context for the request log.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error body sent to console operators. Status travels
// out of band for the error middleware; Detail carries optional
// field-level information such as validation failures.
type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

type ErrorBody struct {
	Message string `json:"message"`
}

// AbortWithError writes the public body and records err on the context.
// err must be the underlying failure, not the operator-facing message;
// the request log keeps the cause while the client sees only msg.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: nil error")
	}

	resp := Response{
		Status: status,
		Error:  ErrorBody{Message: msg},
		Detail: detail,
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
