package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/inkpost/backend/internal/apperror"
	"github.com/inkpost/backend/internal/model"
)

// writeEnvelope renders an envelope with the HTTP status derived from
// its business code.
func writeEnvelope(c *gin.Context, resp model.APIResponse) {
	c.JSON(model.HTTPStatus(resp.Code), resp)
}

// writeError is the single point where service failures become
// envelopes. Only the client-safe message leaves the server.
func writeError(c *gin.Context, err error) {
	appErr := apperror.From(err)
	writeEnvelope(c, model.NewError(appErr.BusinessCode(), appErr.ClientMessage()))
}

// writeBadRequest reports a malformed request body or parameter.
func writeBadRequest(c *gin.Context, message string) {
	writeEnvelope(c, model.NewError(400, message))
}
