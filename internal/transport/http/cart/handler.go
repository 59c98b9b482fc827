package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/queries/get_cart"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/add_product"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/adjust_quantity"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/close_cart"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/finalize_cart"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/open_cart"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/remove_product"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/reset_cart"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/update_checkout"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/usecases/validate_cart"
	"github.com/murkotick/grocery-pos-service/internal/app/catalog/queries/find_by_barcode"
	"github.com/murkotick/grocery-pos-service/internal/app/catalog/queries/get_product"
	"github.com/murkotick/grocery-pos-service/internal/app/catalog/queries/list_products"
)

// Commands groups write interactors.
// Keep transport layer depending on application layer only.
type Commands struct {
	Open     *open_cart.Interactor
	Add      *add_product.Interactor
	Adjust   *adjust_quantity.Interactor
	Remove   *remove_product.Interactor
	Checkout *update_checkout.Interactor
	Validate *validate_cart.Interactor
	Finalize *finalize_cart.Interactor
	Reset    *reset_cart.Interactor
	Close    *close_cart.Interactor
}

// Queries groups read handlers.
type Queries struct {
	Cart     *get_cart.Handler
	Product  *get_product.Handler
	Barcode  *find_by_barcode.Handler
	Products *list_products.Handler
}

// Handler is a thin HTTP transport adapter.
// It validates input, maps JSON <-> application requests and delegates to CQRS handlers.
type Handler struct {
	commands Commands
	queries  Queries
	logger   *zap.Logger
}

func NewHandler(cmd Commands, qry Queries, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{commands: cmd, queries: qry, logger: logger}
}

// Carts

func (h *Handler) OpenCart(w http.ResponseWriter, r *http.Request) {
	var body openCartBody
	if err := decodeJSON(w, r, &body); err != nil {
		h.respondError(w, r, err)
		return
	}
	if body.Kind == "" {
		h.respondError(w, r, invalid("kind is required"))
		return
	}

	view, err := h.commands.Open.Execute(r.Context(), open_cart.Request{Kind: body.Kind, UserID: userIDFrom(r.Context())})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/carts/"+view.CartID)
	h.respondJSON(w, http.StatusCreated, view)
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.queries.Cart.Execute(r.Context(), chi.URLParam(r, "cartID"), userIDFrom(r.Context()))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, view)
}

func (h *Handler) CloseCart(w http.ResponseWriter, r *http.Request) {
	err := h.commands.Close.Execute(r.Context(), close_cart.Request{
		CartID: chi.URLParam(r, "cartID"),
		UserID: userIDFrom(r.Context()),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Lines

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var body addItemBody
	if err := decodeJSON(w, r, &body); err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := validateAddItem(&body); err != nil {
		h.respondError(w, r, err)
		return
	}

	view, err := h.commands.Add.Execute(r.Context(), mapAddItemRequest(chi.URLParam(r, "cartID"), userIDFrom(r.Context()), &body))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, view)
}

func (h *Handler) IncrementItem(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, adjust_quantity.Increment)
}

func (h *Handler) DecrementItem(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, adjust_quantity.Decrement)
}

func (h *Handler) adjust(w http.ResponseWriter, r *http.Request, dir adjust_quantity.Direction) {
	productID, err := parseID("productID", chi.URLParam(r, "productID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	resp, err := h.commands.Adjust.Execute(r.Context(), adjust_quantity.Request{
		CartID:    chi.URLParam(r, "cartID"),
		UserID:    userIDFrom(r.Context()),
		ProductID: productID,
		Direction: dir,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, adjustReply{Applied: resp.Applied, Cart: resp.Cart})
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := parseID("productID", chi.URLParam(r, "productID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	resp, err := h.commands.Remove.Execute(r.Context(), remove_product.Request{
		CartID:    chi.URLParam(r, "cartID"),
		UserID:    userIDFrom(r.Context()),
		ProductID: productID,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, removeReply{Removed: resp.Removed, Cart: resp.Cart})
}

// Checkout

func (h *Handler) UpdateCheckout(w http.ResponseWriter, r *http.Request) {
	var body checkoutBody
	if err := decodeJSON(w, r, &body); err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := validateCheckout(&body); err != nil {
		h.respondError(w, r, err)
		return
	}

	view, err := h.commands.Checkout.Execute(r.Context(), mapCheckoutRequest(chi.URLParam(r, "cartID"), userIDFrom(r.Context()), &body))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, view)
}

func (h *Handler) ValidateCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.commands.Validate.Execute(r.Context(), validate_cart.Request{
		CartID: chi.URLParam(r, "cartID"),
		UserID: userIDFrom(r.Context()),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, view)
}

func (h *Handler) FinalizeCart(w http.ResponseWriter, r *http.Request) {
	resp, err := h.commands.Finalize.Execute(r.Context(), finalize_cart.Request{
		CartID: chi.URLParam(r, "cartID"),
		UserID: userIDFrom(r.Context()),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, finalizeReply{Transaction: resp.Result, Cart: resp.Cart})
}

func (h *Handler) ResetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.commands.Reset.Execute(r.Context(), reset_cart.Request{
		CartID: chi.URLParam(r, "cartID"),
		UserID: userIDFrom(r.Context()),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, view)
}

// Catalog

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", list_products.DefaultLimit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if limit <= 0 || limit > list_products.MaxLimit {
		limit = list_products.DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}

	var category *string
	if c := r.URL.Query().Get("category"); c != "" {
		category = &c
	}

	products, err := h.queries.Products.Execute(r.Context(), category, limit, offset)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	reply := productsReply{Products: products, Limit: limit, Offset: offset}
	if len(products) == limit {
		next := offset + limit
		reply.NextOffset = &next
	}
	h.respondJSON(w, http.StatusOK, reply)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID("productID", chi.URLParam(r, "productID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	p, err := h.queries.Product.Execute(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, p)
}

func (h *Handler) GetProductByBarcode(w http.ResponseWriter, r *http.Request) {
	p, err := h.queries.Barcode.Execute(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, p)
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
