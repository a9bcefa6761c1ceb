package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/catalog"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/model"
)

// ProductHandler handles catalogue-related HTTP requests.
type ProductHandler struct {
	catalog *catalog.Store
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(store *catalog.Store, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: store,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products requests. Filtering and sorting are driven
// entirely by query parameters; with none given the full catalogue is
// returned in featured-first order.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := catalog.Filter{
		Category: q.Get("category"),
		Brands:   q["brand"],
	}

	minPrice, hasMin := parseFloatParam(q.Get("minPrice"))
	maxPrice, hasMax := parseFloatParam(q.Get("maxPrice"))
	if hasMin || hasMax {
		pr := catalog.PriceRange{Min: 0, Max: maxFloat(hasMax, maxPrice)}
		if hasMin {
			pr.Min = minPrice
		}
		filter.PriceRange = &pr
	}

	if rating, ok := parseFloatParam(q.Get("minRating")); ok {
		filter.MinRating = rating
	}

	if inStock, err := strconv.ParseBool(q.Get("inStock")); err == nil {
		filter.InStock = inStock
	}

	products := catalog.FilterAndSort(h.catalog.All(), q.Get("q"), filter, q.Get("sort"))
	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	product, ok := h.catalog.GetByID(r.PathValue("id"))
	if !ok {
		writeServiceError(w, model.ErrProductNotFound, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /api/products requests. Admin only.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r, h.logger); !ok {
		return
	}

	var product model.Product
	if !decodeAndValidate(w, r, &product, h.logger) {
		return
	}

	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	h.catalog.Add(r.Context(), product)

	created, _ := h.catalog.GetByID(product.ID)
	writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /api/products/{id} requests. Admin only.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r, h.logger); !ok {
		return
	}

	id := r.PathValue("id")
	if _, ok := h.catalog.GetByID(id); !ok {
		writeServiceError(w, model.ErrProductNotFound, h.logger)
		return
	}

	var upd model.ProductUpdate
	if !decodeAndValidate(w, r, &upd, h.logger) {
		return
	}

	h.catalog.Update(r.Context(), id, upd)

	updated, _ := h.catalog.GetByID(id)
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/products/{id} requests. Admin only.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r, h.logger); !ok {
		return
	}

	id := r.PathValue("id")
	if _, ok := h.catalog.GetByID(id); !ok {
		writeServiceError(w, model.ErrProductNotFound, h.logger)
		return
	}

	h.catalog.Delete(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

// AddReview handles POST /api/products/{id}/reviews requests. The reviewer's
// identity comes from the bearer token, never the payload.
func (h *ProductHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireAuth(w, r, h.logger)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if _, ok := h.catalog.GetByID(id); !ok {
		writeServiceError(w, model.ErrProductNotFound, h.logger)
		return
	}

	var req model.ReviewRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	h.catalog.AddReview(r.Context(), id, model.Review{
		UserID:   claims.UserID,
		UserName: claims.Name,
		Rating:   req.Rating,
		Comment:  req.Comment,
		Date:     time.Now(),
	})

	reviewed, _ := h.catalog.GetByID(id)
	writeJSON(w, http.StatusCreated, reviewed)
}

// parseFloatParam parses an optional float query parameter.
func parseFloatParam(v string) (float64, bool) {
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// maxFloat returns the parsed upper bound, or an effectively unbounded one.
func maxFloat(ok bool, v float64) float64 {
	if ok {
		return v
	}
	return 1e18
}
