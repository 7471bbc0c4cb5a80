package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/weblarek/storefront/internal/domain/buyer"
	"github.com/weblarek/storefront/internal/domain/order"
	"github.com/weblarek/storefront/internal/domain/product"
)

// Handler serves the storefront REST boundary.
type Handler struct {
	catalog *Catalog
}

// NewHandler creates a Handler over the seeded catalog.
func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// Routes registers the API routes on mux under the /api prefix.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/product", h.listProducts)
	mux.HandleFunc("GET /api/product/{id}", h.getProduct)
	mux.HandleFunc("POST /api/order", h.placeOrder)
}

// wireNumber renders a decimal as a bare JSON number. encoding/json quotes
// shopspring decimals by default, but the API speaks "price": 100, not
// "price": "100", so every response goes through the payload types below.
type wireNumber decimal.Decimal

func (n wireNumber) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(n).String()), nil
}

type productPayload struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Category    product.Category `json:"category"`
	Price       *wireNumber      `json:"price"`
}

func toProductPayload(p product.Product) productPayload {
	out := productPayload{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Category:    p.Category,
	}
	if p.Price.Valid {
		n := wireNumber(p.Price.Decimal)
		out.Price = &n
	}
	return out
}

type productList struct {
	Total int              `json:"total"`
	Items []productPayload `json:"items"`
}

type orderAccepted struct {
	ID    string     `json:"id"`
	Total wireNumber `json:"total"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.List()
	items := make([]productPayload, len(products))
	for i, p := range products {
		items[i] = toProductPayload(p)
	}
	writeJSON(w, http.StatusOK, productList{Total: len(items), Items: items})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := h.catalog.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, toProductPayload(p))
}

// placeOrder validates the order snapshot against the catalog, recomputing
// the total with priceless items counted as zero, and answers with a
// synthesized order id. Nothing is stored.
func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var o order.Order
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		writeError(w, http.StatusBadRequest, "malformed order")
		return
	}

	if msg, ok := h.validateOrder(o); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	res := orderAccepted{ID: uuid.New().String(), Total: wireNumber(o.Total)}
	zctx.From(r.Context()).Info("Order accepted",
		zap.String("order_id", res.ID),
		zap.String("total", o.Total.String()),
		zap.Int("items", len(o.Items)),
	)
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) validateOrder(o order.Order) (string, bool) {
	if o.Payment != buyer.PaymentCard && o.Payment != buyer.PaymentCash {
		return "unknown payment method", false
	}
	if strings.TrimSpace(o.Address) == "" {
		return "address is required", false
	}
	if strings.TrimSpace(o.Email) == "" {
		return "email is required", false
	}
	if strings.TrimSpace(o.Phone) == "" {
		return "phone is required", false
	}
	if len(o.Items) == 0 {
		return "items required", false
	}

	total := decimal.Zero
	for _, id := range o.Items {
		p, ok := h.catalog.Get(id)
		if !ok {
			return "product " + id + " not found", false
		}
		total = total.Add(p.PriceOrZero())
	}
	if !total.Equal(o.Total) {
		return "wrong order total", false
	}
	return "", true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Code: status, Message: message})
}
