package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/allometrik/clm-platform-sub000/service"
	"github.com/gin-gonic/gin"
)

func requestRouter(store *service.Store) *gin.Engine {
	h := NewRequestHandler(store)

	router := gin.New()
	auth := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("username", "mgonzalez")
			next(c)
		}
	}
	router.GET("/requests", auth(h.List))
	router.POST("/requests", auth(h.Create))
	router.GET("/requests/:id", auth(h.Get))
	router.PUT("/requests/:id/status", auth(h.UpdateStatus))
	return router
}

func TestRequestCreate(t *testing.T) {
	store := service.NewStore(100)
	router := requestRouter(store)

	body := `{"title":"Contrato de servicios TI","department":"Compras","type":"Servicios","priority":"high","description":"Renovación anual"}`
	req := httptest.NewRequest("POST", "/requests", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created struct {
		ID        string `json:"id"`
		RequestID string `json:"request_id"`
		Requester string `json:"requester"`
		Status    string `json:"status"`
		Priority  string `json:"priority"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	wantTicket := fmt.Sprintf("REQ-%d-001", time.Now().Year())
	if created.RequestID != wantTicket {
		t.Errorf("Expected ticket %s, got %s", wantTicket, created.RequestID)
	}
	if created.Requester != "mgonzalez" {
		t.Errorf("Expected requester from auth context, got %s", created.Requester)
	}
	if created.Status != "pending" {
		t.Errorf("Expected new request to be pending, got %s", created.Status)
	}
	if created.Priority != "high" {
		t.Errorf("Expected priority high, got %s", created.Priority)
	}
}

func TestRequestCreateDefaultsPriority(t *testing.T) {
	store := service.NewStore(100)
	router := requestRouter(store)

	body := `{"title":"Acuerdo marco","department":"Legal","type":"Marco"}`
	req := httptest.NewRequest("POST", "/requests", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created struct {
		Priority string `json:"priority"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if created.Priority != "medium" {
		t.Errorf("Expected default priority medium, got %s", created.Priority)
	}
}

func TestRequestCreateRejectsMissingTitle(t *testing.T) {
	store := service.NewStore(100)
	router := requestRouter(store)

	req := httptest.NewRequest("POST", "/requests", bytes.NewBufferString(`{"department":"Legal"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
	if len(store.ListRequests("")) != 0 {
		t.Error("Rejected create should not store a request")
	}
}

func TestRequestUpdateStatus(t *testing.T) {
	store := service.NewStore(100)
	router := requestRouter(store)

	body := `{"title":"Contrato de arrendamiento","department":"Operaciones","type":"Arrendamiento"}`
	req := httptest.NewRequest("POST", "/requests", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Fixture create failed: %d", w.Code)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	req = httptest.NewRequest("PUT", "/requests/"+created.ID+"/status", bytes.NewBufferString(`{"status":"in_progress"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	r, ok := store.GetRequest(created.ID)
	if !ok {
		t.Fatal("Request disappeared from store")
	}
	if r.Status != "in_progress" {
		t.Errorf("Expected status in_progress, got %s", r.Status)
	}
}

func TestRequestUpdateStatusRejectsUnknownValue(t *testing.T) {
	store := service.NewStore(100)
	router := requestRouter(store)

	body := `{"title":"Contrato menor","department":"Legal","type":"Servicios"}`
	req := httptest.NewRequest("POST", "/requests", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	req = httptest.NewRequest("PUT", "/requests/"+created.ID+"/status", bytes.NewBufferString(`{"status":"archived"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown status, got %d", w.Code)
	}
}

func TestRequestUpdateStatusNotFound(t *testing.T) {
	store := service.NewStore(100)
	router := requestRouter(store)

	req := httptest.NewRequest("PUT", "/requests/missing/status", bytes.NewBufferString(`{"status":"completed"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}
