// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"parkfee/internal/modules/area"
	"parkfee/internal/modules/fee"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeAreaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, area.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, area.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeFeeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, fee.ErrMissingField),
		errors.Is(err, fee.ErrInvalidTime),
		errors.Is(err, fee.ErrInvalidDate):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, fee.ErrAreaNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
