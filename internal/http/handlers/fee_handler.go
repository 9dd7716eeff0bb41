// README: Fee calculation handler; resolves the rate plan, then invokes the engine.
package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"parkfee/internal/modules/area"
	"parkfee/internal/modules/currency"
	"parkfee/internal/modules/fee"
	"parkfee/internal/types"
)

type FeeHandler struct {
	fee   *fee.Service
	areas *area.Service
	rates *currency.Service
}

// NewFeeHandler wires the engine with its collaborators. rates may be nil;
// display conversion is then unavailable and requests for it are ignored.
func NewFeeHandler(feeService *fee.Service, areaService *area.Service, currencyService *currency.Service) *FeeHandler {
	return &FeeHandler{fee: feeService, areas: areaService, rates: currencyService}
}

type calculateAreaReq struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Rate1    float64 `json:"rate1"`
	Rate2    float64 `json:"rate2"`
	Discount float64 `json:"discount"`
}

type calculateReq struct {
	SelectedArea    string             `json:"selectedArea"`
	StartTime       string             `json:"startTime"`
	EndTime         string             `json:"endTime"`
	ParkingDate     string             `json:"parkingDate"`
	Areas           []calculateAreaReq `json:"areas"`
	DisplayCurrency string             `json:"displayCurrency"`
}

type calculateResp struct {
	TotalTime       int    `json:"totalTime"`
	TotalPrice      string `json:"totalPrice"`
	DisplayPrice    string `json:"displayPrice,omitempty"`
	DisplayCurrency string `json:"displayCurrency,omitempty"`
}

func (h *FeeHandler) Calculate(c *gin.Context) {
	var req calculateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	plan, err := h.resolvePlan(c.Request.Context(), req)
	if err != nil {
		writeFeeError(c, err)
		return
	}

	result, err := h.fee.Calculate(fee.Request{
		AreaID:    types.ID(req.SelectedArea),
		Date:      req.ParkingDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, plan)
	if err != nil {
		writeFeeError(c, err)
		return
	}

	resp := calculateResp{
		TotalTime:  result.TotalMinutes,
		TotalPrice: result.TotalPrice.String(),
	}
	h.addDisplayPrice(c.Request.Context(), &resp, result.TotalPrice, req.DisplayCurrency)
	writeJSON(c, http.StatusOK, resp)
}

// addDisplayPrice re-expresses the computed price in the requested currency
// for display. A provider failure or unknown code leaves the response without
// the display fields; the computed fee is never blocked or altered.
func (h *FeeHandler) addDisplayPrice(ctx context.Context, resp *calculateResp, price types.Money, code string) {
	if h.rates == nil || code == "" || code == price.Currency {
		return
	}
	r, err := h.rates.Latest(ctx, price.Currency, []string{code})
	if err != nil {
		log.Printf("display conversion to %s: %v", code, err)
		return
	}
	rate, ok := r.Rates[code]
	if !ok {
		log.Printf("display conversion to %s: rate missing from table", code)
		return
	}
	converted := currency.Convert(price, code, rate)
	resp.DisplayPrice = converted.String()
	resp.DisplayCurrency = converted.Currency
}

// resolvePlan resolves selectedArea against the request's own areas list when
// the legacy client supplies one, otherwise against the repository.
func (h *FeeHandler) resolvePlan(ctx context.Context, req calculateReq) (fee.RatePlan, error) {
	if req.SelectedArea == "" {
		return fee.RatePlan{}, fee.ErrMissingField
	}
	if len(req.Areas) > 0 {
		for _, a := range req.Areas {
			if a.ID == req.SelectedArea {
				return fee.RatePlan{WeekdayRate: a.Rate1, WeekendRate: a.Rate2, DiscountPercent: a.Discount}, nil
			}
		}
		return fee.RatePlan{}, fee.ErrAreaNotFound
	}

	a, err := h.areas.Get(ctx, types.ID(req.SelectedArea))
	if errors.Is(err, area.ErrNotFound) {
		return fee.RatePlan{}, fee.ErrAreaNotFound
	}
	if err != nil {
		return fee.RatePlan{}, err
	}
	return fee.RatePlan{WeekdayRate: a.Rate1, WeekendRate: a.Rate2, DiscountPercent: a.Discount}, nil
}
