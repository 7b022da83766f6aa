package http

import (
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "caretask/pkg/errors"
)

const dateLayout = "2006-01-02"

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	if err := req.validate(); err != nil {
		return req, h.mapError(err)
	}
	return req, nil
}

func (h *handler) processAddReq(c *gin.Context) (addReq, error) {
	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	if err := req.validate(); err != nil {
		return req, h.mapError(err)
	}
	return req, nil
}

// processUpdateReq binds the partial update body and the URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	req.ID = c.Param("id")
	return req, req.validate()
}

// processCalendarReq parses the date in the handler's timezone.
func (h *handler) processCalendarReq(c *gin.Context) (time.Time, error) {
	var req calendarReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return time.Time{}, errInvalidDate
	}
	date, err := time.ParseInLocation(dateLayout, req.Date, h.loc)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return date, nil
}
