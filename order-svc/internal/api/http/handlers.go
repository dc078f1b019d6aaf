package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"tomato-ordering/order-svc/internal/domain"
	"tomato-ordering/order-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	Catalog service.CatalogServiceInterface
	Orders  service.OrderServiceInterface
}

func NewHandler(catalog service.CatalogServiceInterface, orders service.OrderServiceInterface) *Handler {
	return &Handler{
		Catalog: catalog,
		Orders:  orders,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu", h.addMenuItem).Methods("POST")

	r.HandleFunc("/api/users", h.createUser).Methods("POST")
	r.HandleFunc("/api/users/{id}/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/users/{id}/cart", h.addToCart).Methods("POST")
	r.HandleFunc("/api/users/{id}/orders", h.placeOrder).Methods("POST")

	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/payment", h.setPayment).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/pay", h.payOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

type restaurantView struct {
	ID       int               `json:"id"`
	Name     string            `json:"name"`
	Location string            `json:"location"`
	Menu     []domain.MenuItem `json:"menu"`
}

func viewRestaurant(rest *domain.Restaurant) restaurantView {
	return restaurantView{ID: rest.ID, Name: rest.Name, Location: rest.Location, Menu: rest.Menu()}
}

type cartView struct {
	UserID       int               `json:"user_id"`
	RestaurantID int               `json:"restaurant_id"`
	Items        []domain.MenuItem `json:"items"`
	Total        int               `json:"total"`
}

type placeOrderRequest struct {
	OrderID       int    `json:"order_id"`
	Type          string `json:"type"`
	Address       string `json:"address"`
	Counter       string `json:"counter"`
	ScheduledAt   string `json:"scheduled_at"`
	PaymentMethod string `json:"payment_method"`
}

type placeOrderResponse struct {
	Order   domain.OrderView `json:"order"`
	Receipt domain.Receipt   `json:"receipt"`
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID       int    `json:"id"`
		Name     string `json:"name"`
		Location string `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rest := h.Catalog.CreateRestaurant(req.ID, req.Name, req.Location)
	writeJSON(w, http.StatusCreated, viewRestaurant(rest))
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants := h.Catalog.ListRestaurants()
	views := make([]restaurantView, 0, len(restaurants))
	for _, rest := range restaurants {
		views = append(views, viewRestaurant(rest))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	menu, err := h.Catalog.Menu(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item, err := h.Catalog.AddMenuItem(id, req.Code, req.Name, req.Price)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID           int    `json:"id"`
		Name         string `json:"name"`
		Address      string `json:"address"`
		RestaurantID int    `json:"restaurant_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	user, err := h.Catalog.CreateUser(req.ID, req.Name, req.Address, req.RestaurantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	user, err := h.Catalog.User(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartView{
		UserID:       user.ID,
		RestaurantID: user.Cart.Restaurant.ID,
		Items:        user.Cart.Items(),
		Total:        user.Cart.TotalCost(),
	})
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item, err := h.Catalog.AddToCart(id, req.Code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.Catalog.User(userID)
	if err != nil {
		writeError(w, err)
		return
	}
	kind, err := domain.ParseOrderType(req.Type)
	if err != nil {
		writeError(w, err)
		return
	}
	var method domain.PaymentMethod
	if req.PaymentMethod != "" {
		if method, err = domain.ParsePaymentMethod(req.PaymentMethod); err != nil {
			writeError(w, err)
			return
		}
	}

	fulfillment := domain.Fulfillment{Type: kind, Address: req.Address, Counter: req.Counter}
	var factory service.OrderFactory = &service.NormalOrderFactory{
		User:        user,
		ID:          req.OrderID,
		Fulfillment: fulfillment,
	}
	if req.ScheduledAt != "" {
		factory = &service.ScheduledOrderFactory{
			User:        user,
			ID:          req.OrderID,
			Time:        req.ScheduledAt,
			Fulfillment: fulfillment,
			Announcer:   h.Orders.Announcer(),
		}
	}

	order, receipt, err := h.Orders.Checkout(r.Context(), factory, method)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, placeOrderResponse{Order: order.View(), Receipt: receipt})
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.Orders.List()
	views := make([]domain.OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, o.View())
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order.View())
}

func (h *Handler) setPayment(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req struct {
		PaymentMethod string `json:"payment_method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	method, err := domain.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.Orders.SetPayment(id, method); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) payOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	receipt, err := h.Orders.Pay(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	qr, err := h.Orders.QRCode(id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(qr)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrRestaurantNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrNoQRCode):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrMissingPaymentMethod):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrUnknownPaymentMethod),
		errors.Is(err, domain.ErrUnknownOrderType),
		errors.Is(err, service.ErrItemNotOnMenu):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
