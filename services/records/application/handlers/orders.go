package handlers

import (
	"net/http"

	"github.com/ghuser/orderline/pkg/errhttp"
	"github.com/ghuser/orderline/pkg/httpx"
	pkgvalidator "github.com/ghuser/orderline/pkg/validator"
	appsvcs "github.com/ghuser/orderline/services/records/application/services"
	"github.com/ghuser/orderline/services/records/domain/models"
)

// CreateOrderRequest is the request body for POST /orders.
// order_id must be absent; cust_id is required; timestamp, if supplied, is
// ignored — the store assigns it.
type CreateOrderRequest struct {
	OrderID   *int64 `json:"order_id"`
	Notes     string `json:"notes"`
	CustID    *int64 `json:"cust_id" example:"1"`
	Timestamp *int64 `json:"timestamp"`
} // @name CreateOrderRequest

// UpdateOrderRequest is the request body for PUT /orders/{id}.
// timestamp is never updatable and is discarded when present.
type UpdateOrderRequest struct {
	OrderID   *int64  `json:"order_id"`
	Notes     *string `json:"notes"`
	CustID    *int64  `json:"cust_id"`
	Timestamp *int64  `json:"timestamp"`
} // @name UpdateOrderRequest

// OrderResponse is the wire shape of an order record.
type OrderResponse struct {
	OrderID   int64  `json:"order_id"  example:"1"`
	Notes     string `json:"notes"     example:"two pens"`
	CustID    int64  `json:"cust_id"   example:"1"`
	Timestamp int64  `json:"timestamp" example:"1700000000"`
} // @name OrderResponse

// OrderHandler handles /orders requests.
type OrderHandler struct {
	svc *appsvcs.Services
}

// NewOrderHandler returns an OrderHandler backed by the given services.
func NewOrderHandler(svc *appsvcs.Services) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// Create creates a new order. The referenced customer must exist; the
// timestamp is server-assigned.
//
//	@Summary	Create order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateOrderRequest	true	"Order creation request"
//	@Success	201		{object}	OrderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/orders [post]
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateOrderRequest](w, r)
	if !ok {
		return
	}

	order, err := h.svc.Order.Create(r.Context(), appsvcs.CreateOrderInput{
		ID:        req.OrderID,
		Notes:     req.Notes,
		CustID:    req.CustID,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, orderResponse(order))
}

// Get returns one order by id.
//
//	@Summary	Read order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"Order ID"
//	@Success	200	{object}	OrderResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [get]
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	order, err := h.svc.Order.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, orderResponse(order))
}

// Update partially updates an order. Unlike customer/item update, the
// response is an acknowledgment rather than the updated record — a
// preserved asymmetry. An empty effective patch reports "no changes"
// without writing.
//
//	@Summary	Update order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Order ID"
//	@Param		request	body		UpdateOrderRequest	true	"Fields to update"
//	@Success	200		{object}	MessageResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/orders/{id} [put]
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateOrderRequest](w, r)
	if !ok {
		return
	}

	updated, err := h.svc.Order.Update(r.Context(), id, models.OrderPatch{
		ID:        req.OrderID,
		Notes:     req.Notes,
		CustID:    req.CustID,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if !updated {
		httpx.JSON(w, http.StatusOK, MessageResponse{Message: "No changes provided for update"})
		return
	}
	httpx.JSON(w, http.StatusOK, MessageResponse{Message: "Order updated successfully"})
}

// Delete removes an order.
//
//	@Summary	Delete order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"Order ID"
//	@Success	200	{object}	MessageResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [delete]
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Order.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, MessageResponse{Message: "Order deleted successfully"})
}

func orderResponse(o *models.Order) OrderResponse {
	return OrderResponse{OrderID: o.ID, Notes: o.Notes, CustID: o.CustID, Timestamp: o.Timestamp}
}
