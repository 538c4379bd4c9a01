// README: HTTP router registration; delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shipviet/internal/http/handlers"
	"shipviet/internal/http/middleware"
	"shipviet/internal/infra"
)

type ServerDeps struct {
	Addresses handlers.AddressGetter
	Shipping  handlers.Quoter
	Verifier  infra.TokenVerifier
}

func NewRouter(deps ServerDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	shippingHandler := handlers.NewShippingHandler(deps.Addresses, deps.Shipping)

	api := r.Group("/api", middleware.Auth(deps.Verifier))
	api.POST("/shipping/calculate/:addressId", shippingHandler.Calculate)
	api.POST("/shipping/quote", shippingHandler.Preview)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
