package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/dealspro/dealspro_api/internal/service"
	"github.com/dealspro/dealspro_api/internal/utils"
)

// respondError maps a service error onto the response envelope. notFoundCode
// and notFoundMsg describe the resource the caller was looking up.
func respondError(c *gin.Context, err error, notFoundCode, notFoundMsg string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.ErrorWithData(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Please correct the highlighted fields", gin.H{
			"errors": verr.Fields,
		})
	case errors.Is(err, utils.ErrRecordNotFound):
		utils.Error(c, http.StatusNotFound, notFoundCode, notFoundMsg)
	case errors.Is(err, utils.ErrInvalidTransition):
		utils.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Lead has already been reviewed")
	case errors.Is(err, utils.ErrInvalidDeal), errors.Is(err, utils.ErrUnknownLeadKind):
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
	case errors.Is(err, utils.ErrUnsupportedImage):
		utils.Error(c, http.StatusBadRequest, "INVALID_IMAGE", err.Error())
	case errors.Is(err, utils.ErrUploadDisabled):
		utils.Error(c, http.StatusServiceUnavailable, "UPLOAD_DISABLED", "Image upload is not configured")
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}

// pageParams reads page and limit query values with the given default limit.
func pageParams(c *gin.Context, defaultLimit int) (int, int) {
	page := queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	limit := queryInt(c, "limit", defaultLimit)
	if limit < 1 || limit > 100 {
		limit = defaultLimit
	}
	return page, limit
}
