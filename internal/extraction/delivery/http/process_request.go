package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "caretask/pkg/errors"
)

func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	return req, req.validate()
}
