// README: Shipping quote handlers for stored-address and checkout-preview flows.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"shipviet/internal/http/middleware"
	"shipviet/internal/modules/address"
	"shipviet/internal/modules/shipping"
	"shipviet/internal/types"
)

// AddressGetter loads a stored delivery address.
type AddressGetter interface {
	Get(ctx context.Context, id types.ID) (*address.Address, error)
}

// Quoter computes shipping quotes.
type Quoter interface {
	Quote(ctx context.Context, req shipping.Request) (shipping.Quote, error)
}

type ShippingHandler struct {
	addresses AddressGetter
	quotes    Quoter
}

func NewShippingHandler(addresses AddressGetter, quotes Quoter) *ShippingHandler {
	return &ShippingHandler{addresses: addresses, quotes: quotes}
}

type quoteData struct {
	From             string           `json:"from,omitempty"`
	To               string           `json:"to,omitempty"`
	Region           shipping.Region  `json:"region"`
	DistanceKm       float64          `json:"distance_km"`
	DeliveryType     string           `json:"delivery_type"`
	IsExpressAllowed bool             `json:"is_express_allowed"`
	ShippingFee      int64            `json:"shipping_fee"`
	Notes            []string         `json:"notes,omitempty"`
	Weather          *weatherData     `json:"weather,omitempty"`
	LoyaltyTier      string           `json:"loyalty_tier,omitempty"`
	LoyaltyDiscount  int64            `json:"loyalty_discount,omitempty"`
}

type weatherData struct {
	Main        string  `json:"main"`
	Description string  `json:"description"`
	TempC       float64 `json:"temp_c"`
	IsBad       bool    `json:"is_bad"`
}

type quoteResponse struct {
	Success bool      `json:"success"`
	Data    quoteData `json:"data"`
}

func toResponse(q shipping.Quote, to string) quoteResponse {
	data := quoteData{
		To:               to,
		Region:           q.Region,
		DistanceKm:       q.DistanceKm,
		DeliveryType:     string(q.DeliveryType),
		IsExpressAllowed: q.IsExpressAllowed,
		ShippingFee:      q.Fee,
		Notes:            q.Notes,
		LoyaltyTier:      string(q.LoyaltyTier),
		LoyaltyDiscount:  q.LoyaltyDiscount,
	}
	if q.NearestWarehouse != nil {
		data.From = q.NearestWarehouse.Name
	}
	if q.Weather.Description != "" {
		data.Weather = &weatherData{
			Main:        q.Weather.Main,
			Description: q.Weather.Description,
			TempC:       q.Weather.TempC,
			IsBad:       q.Weather.IsBad,
		}
	}
	return quoteResponse{Success: q.Success, Data: data}
}

// Calculate quotes delivery for a stored address with the default parcel
// weight. POST /api/shipping/calculate/:addressId
func (h *ShippingHandler) Calculate(c *gin.Context) {
	id := c.Param("addressId")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing address id")
		return
	}
	a, err := h.addresses.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeAddressError(c, err)
		return
	}

	q, err := h.quotes.Quote(c.Request.Context(), shipping.Request{Address: a.Destination()})
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, toResponse(q, a.Line))
}

type previewReq struct {
	Line         string   `json:"line"`
	Province     string   `json:"province"`
	Lat          *float64 `json:"lat"`
	Lng          *float64 `json:"lng"`
	UserID       string   `json:"user_id"`
	WeightGram   int      `json:"weight_gram"`
	OrderValue   int64    `json:"order_value"`
	HasFreeship  bool     `json:"has_freeship"`
	DeliveryType string   `json:"delivery_type"`
}

// Preview quotes delivery for an inline checkout address.
// POST /api/shipping/quote
func (h *ShippingHandler) Preview(c *gin.Context) {
	var req previewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	deliveryType := shipping.DeliveryType(req.DeliveryType)
	switch deliveryType {
	case "", shipping.DeliveryStandard, shipping.DeliveryExpress:
	default:
		writeError(c, http.StatusBadRequest, "unknown delivery type")
		return
	}

	dest := shipping.Address{
		Line:     req.Line,
		Province: req.Province,
		Lat:      req.Lat,
		Lng:      req.Lng,
	}
	// Loyalty follows the authenticated caller unless an explicit user is given.
	userID := req.UserID
	if userID == "" {
		userID = middleware.CallerUID(c)
	}
	if userID != "" {
		u := types.ID(userID)
		dest.UserID = &u
	}

	q, err := h.quotes.Quote(c.Request.Context(), shipping.Request{
		Address:      dest,
		WeightGram:   req.WeightGram,
		OrderValue:   req.OrderValue,
		HasFreeship:  req.HasFreeship,
		DeliveryType: deliveryType,
	})
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, toResponse(q, req.Line))
}
