package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"fooddash/api-svc/internal/domain"
	"fooddash/api-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog service.CatalogServiceInterface
	Orders  service.OrderServiceInterface
	Reviews service.ReviewServiceInterface
}

func NewHandler(catalogSvc service.CatalogServiceInterface, orderSvc service.OrderServiceInterface, reviewSvc service.ReviewServiceInterface) *Handler {
	return &Handler{
		Catalog: catalogSvc,
		Orders:  orderSvc,
		Reviews: reviewSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.home).Methods("GET")
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/menu/{restaurant_id:[0-9]+}", h.getMenu).Methods("GET")
	r.HandleFunc("/debug/menu-items", h.debugMenuItems).Methods("GET")

	r.HandleFunc("/order", h.createOrder).Methods("POST")
	r.HandleFunc("/order/{id:[0-9]+}", h.getOrder).Methods("GET")
	r.HandleFunc("/order/{id:[0-9]+}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/rating", h.submitRating).Methods("POST")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError keeps the single error taxonomy of the API: every failure is a
// generic {"error": message} payload, client mistakes and backend faults
// alike.
func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "fooddash backend running"})
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "api-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.Restaurants()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurant_id"])

	// Unknown restaurants yield an empty array, not an error.
	items, err := h.Catalog.Menu(restaurantID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) debugMenuItems(w http.ResponseWriter, r *http.Request) {
	listings, err := h.Catalog.MenuJoined()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	order, err := h.Orders.Create(req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Order stored successfully",
		"order_id": order.ID,
	})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(orderID)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	qr, err := h.Orders.GetQRCode(orderID)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if len(qr) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func (h *Handler) submitRating(w http.ResponseWriter, r *http.Request) {
	var req domain.RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if err := h.Reviews.Submit(req.OrderID, req.Rating); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Rating submitted successfully",
		"order_id": req.OrderID,
		"rating":   req.Rating,
	})
}
