package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/orderline/pkg/errhttp"
	"github.com/ghuser/orderline/pkg/httpx"
	pkgvalidator "github.com/ghuser/orderline/pkg/validator"
	appsvcs "github.com/ghuser/orderline/services/records/application/services"
	"github.com/ghuser/orderline/services/records/domain/models"
)

// CreateCustomerRequest is the request body for POST /customers.
// cust_id must be absent: identifiers are store-assigned.
type CreateCustomerRequest struct {
	CustID *int64 `json:"cust_id"`
	Name   string `json:"name" validate:"required" example:"Alice"`
	Phone  string `json:"phone" validate:"required" example:"555-0100"`
} // @name CreateCustomerRequest

// UpdateCustomerRequest is the request body for PUT /customers/{id}.
// Absent fields keep their stored values.
type UpdateCustomerRequest struct {
	CustID *int64  `json:"cust_id"`
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
} // @name UpdateCustomerRequest

// CustomerResponse is the wire shape of a customer record.
type CustomerResponse struct {
	CustID int64  `json:"cust_id" example:"1"`
	Name   string `json:"name"    example:"Alice"`
	Phone  string `json:"phone"   example:"555-0100"`
} // @name CustomerResponse

// MessageResponse is a plain acknowledgment body.
type MessageResponse struct {
	Message string `json:"message" example:"Customer deleted successfully"`
} // @name MessageResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"customer not found"`
} // @name ErrorResponse

// CustomerHandler handles /customers requests.
type CustomerHandler struct {
	svc *appsvcs.Services
}

// NewCustomerHandler returns a CustomerHandler backed by the given services.
func NewCustomerHandler(svc *appsvcs.Services) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// Create creates a new customer.
//
//	@Summary	Create customer
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateCustomerRequest	true	"Customer creation request"
//	@Success	201		{object}	CustomerResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/customers [post]
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateCustomerRequest](w, r)
	if !ok {
		return
	}

	cust, err := h.svc.Customer.Create(r.Context(), appsvcs.CreateCustomerInput{
		ID:    req.CustID,
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, customerResponse(cust))
}

// Get returns one customer by id.
//
//	@Summary	Read customer
//	@Tags		customers
//	@Produce	json
//	@Param		id	path		int	true	"Customer ID"
//	@Success	200	{object}	CustomerResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/customers/{id} [get]
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	cust, err := h.svc.Customer.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, customerResponse(cust))
}

// Update partially updates a customer. Only supplied fields are overwritten.
//
//	@Summary	Update customer
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Customer ID"
//	@Param		request	body		UpdateCustomerRequest	true	"Fields to update"
//	@Success	200		{object}	CustomerResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/customers/{id} [put]
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateCustomerRequest](w, r)
	if !ok {
		return
	}

	cust, err := h.svc.Customer.Update(r.Context(), id, models.CustomerPatch{
		ID:    req.CustID,
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, customerResponse(cust))
}

// Delete removes a customer. Always acknowledges success, even when no row
// matched — a preserved asymmetry with item and order deletion.
//
//	@Summary	Delete customer
//	@Tags		customers
//	@Produce	json
//	@Param		id	path		int	true	"Customer ID"
//	@Success	200	{object}	MessageResponse
//	@Router		/customers/{id} [delete]
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Customer.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, MessageResponse{Message: "Customer deleted successfully"})
}

func customerResponse(c *models.Customer) CustomerResponse {
	return CustomerResponse{CustID: c.ID, Name: c.Name, Phone: c.Phone}
}

// pathID parses the {id} chi URL parameter, writing a 400 on garbage input.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "id must be an integer")
		return 0, false
	}
	return id, true
}
