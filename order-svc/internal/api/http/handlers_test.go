package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tomato-ordering/logging"
	httpapi "tomato-ordering/order-svc/internal/api/http"
	"tomato-ordering/order-svc/internal/domain"
	"tomato-ordering/order-svc/internal/service"
	"tomato-ordering/order-svc/internal/storage"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router  *mux.Router
	catalog *service.CatalogService
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	log := logging.Discard()
	catalog := service.NewCatalogService(storage.NewRestaurantRegistry(), storage.NewUserRegistry())
	catalog.SeedDefault()
	_, err := catalog.CreateUser(101, "Aniket", "Jabalpur", 1)
	require.NoError(t, err)

	notifications := service.NewNotificationService(log)
	payments := service.NewPaymentService(service.UPIQRGenerator{VPA: "palace@upi"}, notifications, log)
	orders := service.NewOrderService(storage.NewOrderRegistry(), payments, notifications, log)

	r := mux.NewRouter()
	httpapi.NewHandler(catalog, orders).RegisterRoutes(r)
	return testServer{router: r, catalog: catalog}
}

func (s testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	w := newTestServer(t).do("GET", "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "order-svc")
}

func TestRestaurantHandlers(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode int
	}{
		{name: "create restaurant", method: "POST", path: "/api/restaurants", body: `{"id":2,"name":"Dosa Corner","location":"Chennai"}`, wantCode: http.StatusCreated},
		{name: "invalid JSON", method: "POST", path: "/api/restaurants", body: `{invalid}`, wantCode: http.StatusBadRequest},
		{name: "list restaurants", method: "GET", path: "/api/restaurants", wantCode: http.StatusOK},
		{name: "menu", method: "GET", path: "/api/restaurants/1/menu", wantCode: http.StatusOK},
		{name: "menu of unknown restaurant", method: "GET", path: "/api/restaurants/9/menu", wantCode: http.StatusNotFound},
		{name: "add menu item", method: "POST", path: "/api/restaurants/1/menu", body: `{"code":"BIR003","name":"Veg Biryani","price":200}`, wantCode: http.StatusCreated},
		{name: "negative price", method: "POST", path: "/api/restaurants/1/menu", body: `{"code":"BIR004","name":"Broken","price":-5}`, wantCode: http.StatusBadRequest},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			w := srv.do(testCase.method, testCase.path, testCase.body)
			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}

	menu, err := srv.catalog.Menu(1)
	require.NoError(t, err)
	assert.Len(t, menu, 3)
}

func TestCartHandlers(t *testing.T) {
	srv := newTestServer(t)

	assert.Equal(t, http.StatusOK, srv.do("POST", "/api/users/101/cart", `{"code":"BIR001"}`).Code)
	assert.Equal(t, http.StatusOK, srv.do("POST", "/api/users/101/cart", `{"code":"BIR002"}`).Code)
	assert.Equal(t, http.StatusBadRequest, srv.do("POST", "/api/users/101/cart", `{"code":"PIZ001"}`).Code)
	assert.Equal(t, http.StatusNotFound, srv.do("POST", "/api/users/999/cart", `{"code":"BIR001"}`).Code)

	w := srv.do("GET", "/api/users/101/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	var cart struct {
		Items []domain.MenuItem `json:"items"`
		Total int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 600, cart.Total)
}

func TestCreateUserHandler(t *testing.T) {
	srv := newTestServer(t)

	assert.Equal(t, http.StatusCreated, srv.do("POST", "/api/users", `{"id":102,"name":"Ravi","address":"Pune","restaurant_id":1}`).Code)
	assert.Equal(t, http.StatusNotFound, srv.do("POST", "/api/users", `{"id":103,"name":"Meera","address":"Delhi","restaurant_id":7}`).Code)
}

func TestPlaceOrderHandler(t *testing.T) {
	tests := []struct {
		name       string
		cart       []string
		body       string
		wantCode   int
		wantType   domain.OrderType
		wantAmount int
	}{
		{
			name:       "normal upi",
			cart:       []string{"BIR001"},
			body:       `{"order_id":1,"payment_method":"UPI"}`,
			wantCode:   http.StatusCreated,
			wantType:   domain.OrderNormal,
			wantAmount: 250,
		},
		{
			name:       "scheduled delivery",
			cart:       []string{"BIR001", "BIR002"},
			body:       `{"order_id":2,"type":"delivery","scheduled_at":"19:00","payment_method":"credit_card"}`,
			wantCode:   http.StatusCreated,
			wantType:   domain.OrderDelivery,
			wantAmount: 600,
		},
		{
			name:       "pickup",
			cart:       []string{"BIR002"},
			body:       `{"order_id":3,"type":"pickup","counter":"C-2","payment_method":"netbanking"}`,
			wantCode:   http.StatusCreated,
			wantType:   domain.OrderPickup,
			wantAmount: 350,
		},
		{name: "empty cart", body: `{"order_id":4,"payment_method":"UPI"}`, wantCode: http.StatusBadRequest},
		{name: "no payment method", cart: []string{"BIR001"}, body: `{"order_id":5}`, wantCode: http.StatusConflict},
		{name: "unknown method", cart: []string{"BIR001"}, body: `{"order_id":6,"payment_method":"cash"}`, wantCode: http.StatusBadRequest},
		{name: "unknown type", cart: []string{"BIR001"}, body: `{"order_id":7,"type":"drone","payment_method":"UPI"}`, wantCode: http.StatusBadRequest},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			srv := newTestServer(t)
			for _, code := range testCase.cart {
				_, err := srv.catalog.AddToCart(101, code)
				require.NoError(t, err)
			}

			w := srv.do("POST", "/api/users/101/orders", testCase.body)
			require.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode != http.StatusCreated {
				return
			}

			var resp struct {
				Order   domain.OrderView `json:"order"`
				Receipt domain.Receipt   `json:"receipt"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, testCase.wantType, resp.Order.Type)
			assert.Equal(t, testCase.wantAmount, resp.Receipt.Amount)
		})
	}
}

func TestOrderPaymentFlow(t *testing.T) {
	srv := newTestServer(t)
	_, err := srv.catalog.AddToCart(101, "BIR001")
	require.NoError(t, err)

	require.Equal(t, http.StatusConflict, srv.do("POST", "/api/users/101/orders", `{"order_id":1}`).Code)
	assert.Equal(t, http.StatusConflict, srv.do("POST", "/api/orders/1/pay", "").Code)
	assert.Equal(t, http.StatusNotFound, srv.do("GET", "/api/orders/1/qrcode", "").Code)

	assert.Equal(t, http.StatusBadRequest, srv.do("PUT", "/api/orders/1/payment", `{"payment_method":"cash"}`).Code)
	assert.Equal(t, http.StatusNoContent, srv.do("PUT", "/api/orders/1/payment", `{"payment_method":"UPI"}`).Code)

	w := srv.do("POST", "/api/orders/1/pay", "")
	require.Equal(t, http.StatusOK, w.Code)
	var receipt domain.Receipt
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &receipt))
	assert.Equal(t, "Paid ₹250 using UPI", receipt.Message)

	qr := srv.do("GET", "/api/orders/1/qrcode", "")
	assert.Equal(t, http.StatusOK, qr.Code)
	assert.Equal(t, "image/png", qr.Header().Get("Content-Type"))
	assert.NotEmpty(t, qr.Body.Bytes())

	assert.Equal(t, http.StatusOK, srv.do("GET", "/api/orders/1", "").Code)
	assert.Equal(t, http.StatusNotFound, srv.do("GET", "/api/orders/2", "").Code)

	list := srv.do("GET", "/api/orders", "")
	var views []domain.OrderView
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &views))
	assert.Len(t, views, 1)
}
