// README: Exchange-rate handler; serves display rates, isolated from the fee path.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"parkfee/internal/modules/currency"
)

type CurrencyHandler struct {
	rates *currency.Service
}

func NewCurrencyHandler(svc *currency.Service) *CurrencyHandler {
	return &CurrencyHandler{rates: svc}
}

func (h *CurrencyHandler) Latest(c *gin.Context) {
	base := c.DefaultQuery("base", "EUR")

	var symbols []string
	if raw := c.Query("symbols"); raw != "" {
		symbols = strings.Split(raw, ",")
	}

	r, err := h.rates.Latest(c.Request.Context(), base, symbols)
	if errors.Is(err, currency.ErrUnavailable) {
		writeError(c, http.StatusBadGateway, err.Error())
		return
	}
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, r)
}
