package handlers

import (
	"net/http"

	"github.com/ghuser/orderline/pkg/errhttp"
	"github.com/ghuser/orderline/pkg/httpx"
	pkgvalidator "github.com/ghuser/orderline/pkg/validator"
	appsvcs "github.com/ghuser/orderline/services/records/application/services"
	"github.com/ghuser/orderline/services/records/domain/models"
)

// CreateItemRequest is the request body for POST /items.
// Price is a pointer so a zero price still satisfies "required".
type CreateItemRequest struct {
	ID    *int64   `json:"id"`
	Name  string   `json:"name" validate:"required" example:"Pen"`
	Price *float64 `json:"price" validate:"required" example:"1.5"`
} // @name CreateItemRequest

// UpdateItemRequest is the request body for PUT /items/{id}.
// Absent fields keep their stored values.
type UpdateItemRequest struct {
	ID    *int64   `json:"id"`
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
} // @name UpdateItemRequest

// ItemResponse is the wire shape of an item record.
type ItemResponse struct {
	ID    int64   `json:"id"    example:"1"`
	Name  string  `json:"name"  example:"Pen"`
	Price float64 `json:"price" example:"1.5"`
} // @name ItemResponse

// ItemHandler handles /items requests.
type ItemHandler struct {
	svc *appsvcs.Services
}

// NewItemHandler returns an ItemHandler backed by the given services.
func NewItemHandler(svc *appsvcs.Services) *ItemHandler {
	return &ItemHandler{svc: svc}
}

// Create creates a new item. Duplicate names are rejected with 409 before
// any row is written.
//
//	@Summary	Create item
//	@Tags		items
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateItemRequest	true	"Item creation request"
//	@Success	201		{object}	ItemResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/items [post]
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), appsvcs.CreateItemInput{
		ID:    req.ID,
		Name:  req.Name,
		Price: *req.Price,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, itemResponse(item))
}

// Get returns one item by id.
//
//	@Summary	Read item
//	@Tags		items
//	@Produce	json
//	@Param		id	path		int	true	"Item ID"
//	@Success	200	{object}	ItemResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/items/{id} [get]
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, itemResponse(item))
}

// Update partially updates an item. Only supplied fields are overwritten;
// the body must carry an id equal to the path id.
//
//	@Summary	Update item
//	@Tags		items
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Item ID"
//	@Param		request	body		UpdateItemRequest	true	"Fields to update"
//	@Success	200		{object}	ItemResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/items/{id} [put]
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Update(r.Context(), id, models.ItemPatch{
		ID:    req.ID,
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, itemResponse(item))
}

// Delete removes an item and returns the affected-row count.
//
//	@Summary	Delete item
//	@Tags		items
//	@Produce	json
//	@Param		id	path	int	true	"Item ID"
//	@Success	200	{integer}	int
//	@Failure	404	{object}	ErrorResponse
//	@Router		/items/{id} [delete]
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	affected, err := h.svc.Item.Delete(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, affected)
}

func itemResponse(i *models.Item) ItemResponse {
	return ItemResponse{ID: i.ID, Name: i.Name, Price: i.Price}
}
