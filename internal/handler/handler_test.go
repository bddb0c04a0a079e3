package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/dealspro/dealspro_api/internal/config"
	"github.com/dealspro/dealspro_api/internal/middleware"
	"github.com/dealspro/dealspro_api/internal/repository"
	"github.com/dealspro/dealspro_api/internal/service"
	"github.com/dealspro/dealspro_api/internal/sse"
	"github.com/dealspro/dealspro_api/internal/storage"
)

const (
	testAdminEmail    = "admin@dealspro.in"
	testAdminPassword = "s3cret!"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
	Meta struct {
		Pagination *struct {
			TotalItems int `json:"totalItems"`
		} `json:"pagination"`
	} `json:"meta"`
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{
		PublicOrigin: "https://dealspro.in",
		JWTSecret:    "test-secret",
		JWTTTL:       time.Hour,
		Admin:        config.AdminConfig{Email: testAdminEmail, PasswordHash: string(hash)},
	}

	kv := storage.NewMemoryStore()
	hub := sse.NewHub()
	notifier := sse.NewHubNotifier(hub)

	dealSvc := service.NewDealService(repository.NewDealRepository(kv), notifier, cfg.PublicOrigin)
	leadSvc := service.NewLeadService(
		repository.NewBrandSubmissionRepository(kv),
		repository.NewInfluencerApplicationRepository(kv),
		notifier,
	)
	authSvc := service.NewAdminAuthService(cfg)
	imageSvc, err := service.NewImageService(context.Background(), cfg.S3)
	if err != nil {
		t.Fatal(err)
	}

	handlers := &Handlers{
		Health:    NewHealthHandler(config.StorageMemory, kv),
		Auth:      NewAuthHandler(authSvc),
		Deal:      NewDealHandler(dealSvc),
		AdminDeal: NewAdminDealHandler(dealSvc, imageSvc),
		Lead:      NewLeadHandler(leadSvc),
		AdminLead: NewAdminLeadHandler(leadSvc),
		SSE:       NewSSEHandler(hub, authSvc),
	}

	limiter := middleware.NewInvalidAuthRateLimiter(5, time.Minute)
	t.Cleanup(limiter.Stop)

	router := gin.New()
	SetupRoutes(router, handlers,
		middleware.LoginRateLimit(limiter),
		middleware.NewJWTMiddleware(cfg.JWTSecret).Handle(),
	)
	return &testServer{t: t, router: router}
}

func (s *testServer) do(method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		s.t.Fatalf("%s %s: invalid JSON body %q: %v", method, path, w.Body.String(), err)
	}
	return w, env
}

func (s *testServer) login() {
	s.t.Helper()
	w, env := s.do(http.MethodPost, "/v1/admin/auth/login", gin.H{"email": testAdminEmail, "password": testAdminPassword})
	if w.Code != http.StatusOK {
		s.t.Fatalf("login status = %d", w.Code)
	}
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.Token == "" {
		s.t.Fatalf("login token missing: %s", env.Data)
	}
	s.token = data.Token
}

func brandPayload() gin.H {
	return gin.H{
		"companyName":        "Acme",
		"contactName":        "Ravi",
		"email":              "ravi@acme.in",
		"phone":              "9876543210",
		"productName":        "Widget",
		"productCategory":    "Electronics & Gadgets",
		"productPrice":       "999",
		"productUrl":         "https://acme.in/w",
		"productDescription": "A very useful widget",
		"reviewType":         "Product Review Video",
		"budget":             "₹5,000 - ₹15,000",
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w, env := s.do(http.MethodGet, "/v1/health", nil)
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("health status = %d", w.Code)
	}
}

func TestPublicCatalog(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(http.MethodGet, "/v1/deals?sort=price-low&limit=4", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var deals []struct {
		Slug         string  `json:"slug"`
		CurrentPrice float64 `json:"currentPrice"`
	}
	if err := json.Unmarshal(env.Data, &deals); err != nil {
		t.Fatal(err)
	}
	if len(deals) != 4 || env.Meta.Pagination == nil || env.Meta.Pagination.TotalItems != 6 {
		t.Fatalf("got %d deals, pagination %+v", len(deals), env.Meta.Pagination)
	}
	for i := 1; i < len(deals); i++ {
		if deals[i-1].CurrentPrice > deals[i].CurrentPrice {
			t.Error("deals not sorted by price-low")
		}
	}

	w, env = s.do(http.MethodGet, "/v1/deals/"+deals[0].Slug, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("detail status = %d", w.Code)
	}
	var detail struct {
		ShareURL        string `json:"shareUrl"`
		DiscountPercent int    `json:"discountPercent"`
	}
	if err := json.Unmarshal(env.Data, &detail); err != nil {
		t.Fatal(err)
	}
	if detail.ShareURL != "https://dealspro.in/deal/"+deals[0].Slug {
		t.Errorf("shareUrl = %q", detail.ShareURL)
	}

	w, env = s.do(http.MethodGet, "/v1/deals/no-such-deal", nil)
	if w.Code != http.StatusNotFound || env.Error == nil || env.Error.Code != "DEAL_NOT_FOUND" {
		t.Errorf("missing deal: status %d env %+v", w.Code, env.Error)
	}

	if w, _ := s.do(http.MethodGet, "/v1/deals?store=myntra", nil); w.Code != http.StatusBadRequest {
		t.Errorf("unknown store status = %d, want 400", w.Code)
	}
	if w, _ := s.do(http.MethodGet, "/v1/deals/categories", nil); w.Code != http.StatusOK {
		t.Errorf("categories status = %d", w.Code)
	}
	if w, _ := s.do(http.MethodGet, "/v1/deals/search?q=a", nil); w.Code != http.StatusOK {
		t.Errorf("search status = %d", w.Code)
	}
}

func TestPublicCatalog_PageBeyondRange(t *testing.T) {
	s := newTestServer(t)

	for _, page := range []string{"922337203685477581", "4611686018427387905", "3"} {
		w, env := s.do(http.MethodGet, "/v1/deals?limit=4&page="+page, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("page=%s status = %d", page, w.Code)
		}
		var deals []json.RawMessage
		if err := json.Unmarshal(env.Data, &deals); err != nil {
			t.Fatalf("page=%s decode: %v", page, err)
		}
		if len(deals) != 0 {
			t.Errorf("page=%s returned %d deals, want none", page, len(deals))
		}
	}
}

func TestBrandSubmission(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(http.MethodPost, "/v1/brands/submissions", brandPayload())
	if w.Code != http.StatusCreated {
		t.Fatalf("submit status = %d body %s", w.Code, w.Body.String())
	}
	var sub struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &sub); err != nil {
		t.Fatal(err)
	}
	if sub.Status != "pending" || sub.ID == "" {
		t.Errorf("submission = %+v", sub)
	}

	bad := brandPayload()
	bad["email"] = "not-an-email"
	w, env = s.do(http.MethodPost, "/v1/brands/submissions", bad)
	if w.Code != http.StatusUnprocessableEntity || env.Error.Code != "VALIDATION_ERROR" {
		t.Fatalf("invalid submit status = %d", w.Code)
	}
	var data struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	if data.Errors["email"] != "Invalid email address" {
		t.Errorf("errors = %v", data.Errors)
	}
}

func TestAdminRequiresAuth(t *testing.T) {
	s := newTestServer(t)

	if w, _ := s.do(http.MethodGet, "/v1/admin/deals", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated status = %d, want 401", w.Code)
	}
	if w, _ := s.do(http.MethodPost, "/v1/admin/auth/login", gin.H{"email": testAdminEmail, "password": "wrong"}); w.Code != http.StatusUnauthorized {
		t.Errorf("bad login status = %d, want 401", w.Code)
	}
	if w, _ := s.do(http.MethodGet, "/v1/admin/sse", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("sse without token status = %d, want 401", w.Code)
	}
}

func TestAdminDealLifecycle(t *testing.T) {
	s := newTestServer(t)
	s.login()

	w, env := s.do(http.MethodPost, "/v1/admin/deals", gin.H{
		"title":         "Noise ColorFit Pro 4",
		"currentPrice":  999,
		"originalPrice": 3799,
		"store":         "amazon",
		"category":      "Electronics",
		"productUrl":    "https://amzn.to/abc",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d body %s", w.Code, w.Body.String())
	}
	var created struct {
		Deal struct {
			ID   string `json:"id"`
			Slug string `json:"slug"`
		} `json:"deal"`
		URL string `json:"url"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatal(err)
	}
	if created.URL != "https://dealspro.in/deal/"+created.Deal.Slug {
		t.Errorf("url = %q", created.URL)
	}
	id := created.Deal.ID

	if w, _ := s.do(http.MethodPost, "/v1/admin/deals", gin.H{"title": "", "productUrl": "x"}); w.Code != http.StatusBadRequest {
		t.Errorf("invalid create status = %d, want 400", w.Code)
	}

	w, _ = s.do(http.MethodPatch, "/v1/admin/deals/"+id, gin.H{"isActive": false})
	if w.Code != http.StatusOK {
		t.Fatalf("patch status = %d", w.Code)
	}
	if w, _ := s.do(http.MethodGet, "/v1/deals/"+created.Deal.Slug, nil); w.Code != http.StatusNotFound {
		t.Errorf("inactive deal public status = %d, want 404", w.Code)
	}

	w, env = s.do(http.MethodGet, "/v1/admin/deals/stats", nil)
	var stats struct {
		TotalDeals  int `json:"totalDeals"`
		ActiveDeals int `json:"activeDeals"`
	}
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatal(err)
	}
	if stats.TotalDeals != 7 || stats.ActiveDeals != 6 {
		t.Errorf("stats = %+v", stats)
	}

	if w, _ := s.do(http.MethodGet, "/v1/admin/deals/"+id+"/url", nil); w.Code != http.StatusOK {
		t.Errorf("url status = %d", w.Code)
	}
	if w, _ := s.do(http.MethodDelete, "/v1/admin/deals/"+id, nil); w.Code != http.StatusOK {
		t.Errorf("delete status = %d", w.Code)
	}
	if w, _ := s.do(http.MethodDelete, "/v1/admin/deals/"+id, nil); w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}

func TestAdminLeadReview(t *testing.T) {
	s := newTestServer(t)

	_, env := s.do(http.MethodPost, "/v1/brands/submissions", brandPayload())
	var sub struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &sub); err != nil {
		t.Fatal(err)
	}

	s.login()

	w, env := s.do(http.MethodGet, "/v1/admin/leads/brands?status=pending", nil)
	var pending []json.RawMessage
	if err := json.Unmarshal(env.Data, &pending); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusOK || len(pending) != 1 {
		t.Fatalf("pending brands status %d len %d", w.Code, len(pending))
	}

	if w, _ := s.do(http.MethodGet, "/v1/admin/leads?status=archived", nil); w.Code != http.StatusBadRequest {
		t.Errorf("unknown status filter = %d, want 400", w.Code)
	}

	if w, _ := s.do(http.MethodPost, "/v1/admin/leads/brands/"+sub.ID+"/approve", nil); w.Code != http.StatusOK {
		t.Fatalf("approve status = %d", w.Code)
	}
	w, env = s.do(http.MethodPost, "/v1/admin/leads/brands/"+sub.ID+"/reject", nil)
	if w.Code != http.StatusConflict || env.Error.Code != "INVALID_TRANSITION" {
		t.Errorf("reject after approve status = %d", w.Code)
	}
	if w, _ := s.do(http.MethodPost, "/v1/admin/leads/influencers/"+sub.ID+"/approve", nil); w.Code != http.StatusNotFound {
		t.Errorf("wrong kind status = %d, want 404", w.Code)
	}
	if w, _ := s.do(http.MethodDelete, "/v1/admin/leads/partners/"+sub.ID, nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown kind status = %d, want 404", w.Code)
	}
	if w, _ := s.do(http.MethodDelete, "/v1/admin/leads/brands/"+sub.ID, nil); w.Code != http.StatusOK {
		t.Errorf("delete status = %d", w.Code)
	}

	w, env = s.do(http.MethodGet, "/v1/admin/leads", nil)
	if w.Code != http.StatusOK || env.Meta.Pagination.TotalItems != 0 {
		t.Errorf("inbox after delete status %d", w.Code)
	}
}

func TestUploadImageDisabled(t *testing.T) {
	s := newTestServer(t)
	s.login()

	var buf bytes.Buffer
	mw := newMultipart(t, &buf, "image", "a.png", []byte("\x89PNG\r\n\x1a\n0000"))
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/deals/images", &buf)
	req.Header.Set("Content-Type", mw)
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("upload without bucket status = %d, want 503", w.Code)
	}
}
