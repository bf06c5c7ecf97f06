package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/repository"
	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/services"
)

type memStore struct{ m map[string]string }

func (s *memStore) Get(key string) (string, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}
func (s *memStore) Put(key, value string) error { s.m[key] = value; return nil }
func (s *memStore) Delete(key string) error     { delete(s.m, key); return nil }

type nopPublisher struct{}

func (nopPublisher) Publish(event string, payload any) {}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := &memStore{m: map[string]string{}}
	var mu sync.Mutex

	menuRepo := repository.NewMenuRepository(store)
	cartRepo := repository.NewCartRepository(store)
	salesRepo := repository.NewSalesRepository(store)

	cartSvc := services.NewCartService(&mu, cartRepo, menuRepo, nopPublisher{})
	menuSvc := services.NewMenuService(&mu, menuRepo, cartSvc, nopPublisher{})
	salesSvc := services.NewSalesService(&mu, salesRepo, nopPublisher{})
	checkoutSvc := services.NewCheckoutService(&mu, cartSvc, salesSvc)

	menuCtl := NewMenuController(menuSvc)
	cartCtl := NewCartController(cartSvc)
	checkoutCtl := NewCheckoutController(checkoutSvc)

	r := gin.New()
	r.GET("/menu", menuCtl.List)
	r.POST("/menu", menuCtl.Upsert)
	r.DELETE("/menu/:id", menuCtl.Remove)
	r.GET("/cart", cartCtl.Get)
	r.POST("/cart/items/:id", cartCtl.Add)
	r.PATCH("/cart/items/:id", cartCtl.Adjust)
	r.DELETE("/cart", cartCtl.Clear)
	r.POST("/checkout", checkoutCtl.Checkout)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCartEndpointsBillAndCheckout(t *testing.T) {
	r := newTestRouter()

	// Tap idly twice on the seeded menu.
	for i := 0; i < 2; i++ {
		if w := do(t, r, "POST", "/cart/items/idly", ""); w.Code != http.StatusOK {
			t.Fatalf("add: status %d: %s", w.Code, w.Body)
		}
	}

	w := do(t, r, "GET", "/cart", "")
	var out struct {
		OK   bool `json:"ok"`
		Data struct {
			Entries []struct {
				ID       string `json:"id"`
				Quantity int    `json:"quantity"`
			} `json:"entries"`
			SubtotalDisplay string `json:"subtotalDisplay"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !out.OK || len(out.Data.Entries) != 1 || out.Data.Entries[0].Quantity != 2 {
		t.Fatalf("cart view wrong: %s", w.Body)
	}
	if out.Data.SubtotalDisplay != "₹60.00" {
		t.Errorf("subtotal display = %q", out.Data.SubtotalDisplay)
	}

	if w := do(t, r, "POST", "/checkout", ""); w.Code != http.StatusCreated {
		t.Fatalf("checkout: status %d: %s", w.Code, w.Body)
	}
	// The register is idle now; paying again is rejected.
	if w := do(t, r, "POST", "/checkout", ""); w.Code != http.StatusConflict {
		t.Errorf("second checkout: status %d, want 409", w.Code)
	}
}

func TestCartAdjustEndpoint(t *testing.T) {
	r := newTestRouter()
	do(t, r, "POST", "/cart/items/vada", "")

	// A zero delta is accepted and changes nothing.
	if w := do(t, r, "PATCH", "/cart/items/vada", `{"delta":0}`); w.Code != http.StatusOK {
		t.Fatalf("zero delta: status %d: %s", w.Code, w.Body)
	}
	if w := do(t, r, "GET", "/cart", ""); !strings.Contains(w.Body.String(), `"quantity":1`) {
		t.Errorf("zero delta must leave the quantity alone: %s", w.Body)
	}

	if w := do(t, r, "PATCH", "/cart/items/vada", `{"delta":-1}`); w.Code != http.StatusOK {
		t.Fatalf("adjust: status %d: %s", w.Code, w.Body)
	}
	w := do(t, r, "GET", "/cart", "")
	if !strings.Contains(w.Body.String(), `"entries":[]`) {
		t.Errorf("cart should be empty after decrement to zero: %s", w.Body)
	}

	if w := do(t, r, "PATCH", "/cart/items/vada", `not json`); w.Code != http.StatusBadRequest {
		t.Errorf("bad body: status %d, want 400", w.Code)
	}
}
