package products

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/vzaicevs/tdd-bdd-final-project/models"
)

// ProductStore is the slice of the repository the handlers need.
type ProductStore interface {
	Create(product *models.Product) error
	Find(id uint) (*models.Product, error)
	Update(product *models.Product) error
	Delete(product *models.Product) error
	All() ([]models.Product, error)
	FindByName(name string) ([]models.Product, error)
	FindByCategory(category models.Category) ([]models.Product, error)
	FindByAvailability(available bool) ([]models.Product, error)
}

type ProductHandler struct {
	repo ProductStore
	log  *zap.Logger
}

func NewProductHandler(repo ProductStore, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		repo: repo,
		log:  log,
	}
}

// HandleCreate serves POST /products.
func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if !hasJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unable to read request body")
		return
	}

	var product models.Product
	if err := product.Deserialize(body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Create(&product); err != nil {
		h.serverError(w, "create product", err)
		return
	}

	h.log.Info("product created",
		zap.Uint("id", product.ID),
		zap.String("name", product.Name))

	w.Header().Set("Location", fmt.Sprintf("/products/%d", product.ID))
	writeJSON(w, http.StatusCreated, product.Serialize())
}

// HandleGet serves GET /products/{id}.
func (h *ProductHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		h.notFound(w, r.PathValue("id"))
		return
	}

	product, err := h.repo.Find(id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			h.notFound(w, r.PathValue("id"))
			return
		}
		h.serverError(w, "read product", err)
		return
	}

	writeJSON(w, http.StatusOK, product.Serialize())
}

// HandleList serves GET /products, with optional name, category, and
// available filters. Filters are exclusive; name wins over category, which
// wins over available.
func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		found []models.Product
		err   error
	)
	switch {
	case query.Get("name") != "":
		found, err = h.repo.FindByName(query.Get("name"))
	case query.Get("category") != "":
		found, err = h.repo.FindByCategory(models.ParseCategory(query.Get("category")))
	case query.Has("available"):
		available, ok := parseAvailable(query.Get("available"))
		if !ok {
			writeError(w, http.StatusBadRequest, "available must be 'true' or 'false'")
			return
		}
		found, err = h.repo.FindByAvailability(available)
	default:
		found, err = h.repo.All()
	}
	if err != nil {
		h.serverError(w, "list products", err)
		return
	}

	h.log.Info("products listed", zap.Int("count", len(found)))

	results := make([]map[string]any, len(found))
	for i := range found {
		results[i] = found[i].Serialize()
	}
	writeJSON(w, http.StatusOK, results)
}

// HandleUpdate serves PUT /products/{id}.
func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		h.notFound(w, r.PathValue("id"))
		return
	}

	product, err := h.repo.Find(id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			h.notFound(w, r.PathValue("id"))
			return
		}
		h.serverError(w, "read product", err)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unable to read request body")
		return
	}
	if err := product.Deserialize(body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Update(product); err != nil {
		h.serverError(w, "update product", err)
		return
	}

	h.log.Info("product updated", zap.Uint("id", product.ID))
	writeJSON(w, http.StatusOK, product.Serialize())
}

// HandleDelete serves DELETE /products/{id}. Deleting an id that was never
// created still succeeds with 204.
func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if id, ok := parseID(r); ok {
		if err := h.repo.Delete(&models.Product{ID: id}); err != nil {
			h.serverError(w, "delete product", err)
			return
		}
		h.log.Info("product deleted", zap.Uint("id", id))
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) notFound(w http.ResponseWriter, id string) {
	writeError(w, http.StatusNotFound, fmt.Sprintf("Product with id '%s' was not found.", id))
}

func (h *ProductHandler) serverError(w http.ResponseWriter, op string, err error) {
	h.log.Error(op+" failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, err.Error())
}

func parseID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// parseAvailable accepts only the literal strings "true" and "false".
func parseAvailable(value string) (bool, bool) {
	switch value {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

func hasJSONContentType(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"status":  status,
		"error":   http.StatusText(status),
		"message": message,
	})
}
