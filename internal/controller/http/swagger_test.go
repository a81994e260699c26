package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

const testSpec = `openapi: 3.0.3
info:
  title: test
  version: "1"
paths:
  /api/v1/overview:
    get:
      responses:
        200:
          description: ok
`

func TestSwaggerHandler(t *testing.T) {
	r := chi.NewRouter()
	NewSwaggerHandler("Test API", []byte(testSpec)).RegisterRoutes(r)

	t.Run("ui", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, "Test API - API Documentation") {
			t.Error("title not rendered")
		}
		if !strings.Contains(body, "/docs/openapi.yaml") {
			t.Error("spec url not rendered")
		}
	})

	t.Run("yaml", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/openapi.yaml", nil))
		if rec.Body.String() != testSpec {
			t.Errorf("yaml spec not served as-is")
		}
	})

	t.Run("json", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/openapi.json", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}

		var doc struct {
			OpenAPI string `json:"openapi"`
			Paths   map[string]struct {
				Get struct {
					Responses map[string]struct {
						Description string `json:"description"`
					} `json:"responses"`
				} `json:"get"`
			} `json:"paths"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if doc.OpenAPI != "3.0.3" {
			t.Errorf("openapi = %q", doc.OpenAPI)
		}
		if got := doc.Paths["/api/v1/overview"].Get.Responses["200"].Description; got != "ok" {
			t.Errorf("integer status key not converted, description = %q", got)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		r := chi.NewRouter()
		NewSwaggerHandler("Broken", []byte("a: [")).RegisterRoutes(r)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/openapi.json", nil))
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", rec.Code)
		}
	})
}
