package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cerberus/handlers"
	"cerberus/models"
	"cerberus/services/catalog"
	"cerberus/services/contact"
	"cerberus/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zaptest"
)

type memRepo struct{ rows []models.ContactSubmission }

func (r *memRepo) Create(_ context.Context, sub *models.ContactSubmission) error {
	sub.ID = int64(len(r.rows) + 1)
	r.rows = append(r.rows, *sub)
	return nil
}

type memMailer struct{ sent []notification.Email }

func (m *memMailer) Send(_ context.Context, e notification.Email) error {
	m.sent = append(m.sent, e)
	return nil
}

func newRouter(t *testing.T, origin string) (*gin.Engine, *memRepo, *memMailer) {
	gin.SetMode(gin.TestMode)
	repo, mailer := &memRepo{}, &memMailer{}
	svc := contact.NewService(repo, mailer, zaptest.NewLogger(t), contact.Options{NotifyTo: "owner@studio.com"})
	eh := handlers.NewEstimateHandler(catalog.Default())

	r := gin.New()
	RegisterRoutes(r, &handlers.HandlerBundle{
		SubmitContact:   handlers.NewContactHandler(svc).SubmitContactHandler,
		GetCatalog:      eh.GetCatalogHandler,
		ComputeEstimate: eh.ComputeEstimateHandler,
		SelectPostOnly:  eh.SelectPostOnlyHandler,
		EstimateSummary: eh.SummaryHandler,
	}, origin)
	return r, repo, mailer
}

func TestContactEndToEnd(t *testing.T) {
	r, repo, mailer := newRouter(t, "*")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"Jo","email":"jo@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"success":true`) {
		t.Errorf("body: %s", w.Body.String())
	}
	if len(repo.rows) != 1 || len(mailer.sent) != 1 {
		t.Fatalf("got %d rows, %d emails", len(repo.rows), len(mailer.sent))
	}
	if repo.rows[0].Notes != "" || repo.rows[0].Estimate != "" {
		t.Errorf("optional fields: %+v", repo.rows[0])
	}
}

func TestCatalogRoute(t *testing.T) {
	r, _, _ := newRouter(t, "*")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"standard"`) {
		t.Errorf("status %d, body %s", w.Code, w.Body.String())
	}
}

func TestCORSAllowedOrigin(t *testing.T) {
	r, _, _ := newRouter(t, "https://site.example")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://site.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://site.example" {
		t.Errorf("allowed origin header: got %q", got)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("foreign origin should not be allowed, got %q", got)
	}
}

func TestCORSConfig(t *testing.T) {
	if cfg := CORSConfig("*"); !cfg.AllowAllOrigins {
		t.Error("* should allow all origins")
	}
	cfg := CORSConfig("https://a.example, https://b.example")
	if len(cfg.AllowOrigins) != 2 || cfg.AllowOrigins[1] != "https://b.example" {
		t.Errorf("origins: %v", cfg.AllowOrigins)
	}
}
