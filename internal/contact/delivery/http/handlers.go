package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "caretask/pkg/errors"
	"caretask/pkg/response"
)

// List godoc
// @Summary     Emergency contacts
// @Description Returns the caregiver call list. Emergency contacts are dialed without confirmation.
// @Tags        Contacts
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/contacts [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	contacts, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "contact.delivery.http.List: %v", err)
		response.Error(c, pkgErrors.ErrInternalServerError, nil)
		return
	}

	response.OK(c, h.newListResp(contacts))
}
