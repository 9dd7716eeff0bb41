// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parkfee/internal/http/handlers"
	"parkfee/internal/http/middleware"
	"parkfee/internal/modules/area"
	"parkfee/internal/modules/currency"
	"parkfee/internal/modules/fee"
)

func NewRouter(
	areaService *area.Service,
	feeService *fee.Service,
	currencyService *currency.Service,
) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	areaHandler := handlers.NewAreaHandler(areaService)
	r.POST("/area", areaHandler.Create)
	r.GET("/areas", areaHandler.List)
	r.PATCH("/area", areaHandler.Update)
	r.DELETE("/area", areaHandler.Delete)

	feeHandler := handlers.NewFeeHandler(feeService, areaService, currencyService)
	r.POST("/calculate", feeHandler.Calculate)

	currencyHandler := handlers.NewCurrencyHandler(currencyService)
	r.GET("/rates", currencyHandler.Latest)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
