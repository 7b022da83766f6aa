package http

import (
	"github.com/gin-gonic/gin"

	"caretask/pkg/response"
)

// Extract godoc
// @Summary     Extract tasks from patient text
// @Description Turns free-form patient text into prioritized, categorized tasks. With persist=true the tasks are also stored.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Patient message"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/extractions [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	res, err := h.uc.Extract(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "extraction.delivery.http.Extract: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	persisted := false
	if req.Persist && h.tasks != nil {
		if err := h.tasks.Append(ctx, res.Tasks); err != nil {
			h.l.Errorf(ctx, "extraction.delivery.http.Extract tasks.Append: %v", err)
			response.Error(c, h.mapError(err), nil)
			return
		}
		persisted = true
	}

	response.OK(c, h.newExtractResp(res, persisted))
}
