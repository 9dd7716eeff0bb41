// README: Area CRUD handlers over the legacy REST surface (POST/GET/PATCH/DELETE on /area).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parkfee/internal/modules/area"
	"parkfee/internal/types"
)

type AreaHandler struct {
	areas *area.Service
}

func NewAreaHandler(svc *area.Service) *AreaHandler {
	return &AreaHandler{areas: svc}
}

// Numeric fields are pointers so that an absent field is distinguishable
// from a legitimate zero, matching the original contract's presence checks.
type createAreaReq struct {
	Name     string   `json:"name"`
	Rate1    *float64 `json:"rate1"`
	Rate2    *float64 `json:"rate2"`
	Discount *float64 `json:"discount"`
}

type updateAreaReq struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Rate1    *float64 `json:"rate1"`
	Rate2    *float64 `json:"rate2"`
	Discount *float64 `json:"discount"`
}

type deleteAreaReq struct {
	ID string `json:"id"`
}

type areaResponse struct {
	ID       types.ID `json:"id"`
	Name     string   `json:"name"`
	Rate1    float64  `json:"rate1"`
	Rate2    float64  `json:"rate2"`
	Discount float64  `json:"discount"`
}

func toAreaResponse(a area.Area) areaResponse {
	return areaResponse{ID: a.ID, Name: a.Name, Rate1: a.Rate1, Rate2: a.Rate2, Discount: a.Discount}
}

func (h *AreaHandler) Create(c *gin.Context) {
	var req createAreaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Name == "" || req.Rate1 == nil || req.Rate2 == nil || req.Discount == nil {
		writeError(c, http.StatusBadRequest, "missing fields")
		return
	}
	a, err := h.areas.Create(c.Request.Context(), req.Name, *req.Rate1, *req.Rate2, *req.Discount)
	if err != nil {
		writeAreaError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, toAreaResponse(*a))
}

func (h *AreaHandler) List(c *gin.Context) {
	areas, err := h.areas.List(c.Request.Context())
	if err != nil {
		writeAreaError(c, err)
		return
	}
	out := make([]areaResponse, 0, len(areas))
	for _, a := range areas {
		out = append(out, toAreaResponse(a))
	}
	writeJSON(c, http.StatusOK, out)
}

func (h *AreaHandler) Update(c *gin.Context) {
	var req updateAreaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ID == "" || req.Name == "" || req.Rate1 == nil || req.Rate2 == nil || req.Discount == nil {
		writeError(c, http.StatusBadRequest, "missing fields")
		return
	}
	a := area.Area{
		ID:       types.ID(req.ID),
		Name:     req.Name,
		Rate1:    *req.Rate1,
		Rate2:    *req.Rate2,
		Discount: *req.Discount,
	}
	if err := h.areas.Update(c.Request.Context(), a); err != nil {
		writeAreaError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toAreaResponse(a))
}

func (h *AreaHandler) Delete(c *gin.Context) {
	var req deleteAreaReq
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		writeError(c, http.StatusBadRequest, "missing area id")
		return
	}
	if err := h.areas.Delete(c.Request.Context(), types.ID(req.ID)); err != nil {
		writeAreaError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
