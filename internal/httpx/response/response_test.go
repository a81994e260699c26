package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name string
		send func(w http.ResponseWriter)
		code int
	}{
		{"bad request", func(w http.ResponseWriter) { BadRequest(w, "boom") }, http.StatusBadRequest},
		{"not found", func(w http.ResponseWriter) { NotFound(w, "boom") }, http.StatusNotFound},
		{"internal", func(w http.ResponseWriter) { InternalError(w, "boom") }, http.StatusInternalServerError},
		{"bad gateway", func(w http.ResponseWriter) { BadGateway(w, "boom") }, http.StatusBadGateway},
		{"unavailable", func(w http.ResponseWriter) { ServiceUnavailable(w, "boom") }, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.send(rec)

			if rec.Code != tt.code {
				t.Errorf("status = %d, want %d", rec.Code, tt.code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("content type = %q", ct)
			}
			var body ErrorBody
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil || body.Error != "boom" {
				t.Errorf("body = %+v, %v", body, err)
			}
		})
	}
}

func TestJSONWithoutBody(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusAccepted, nil)
	if rec.Code != http.StatusAccepted || rec.Body.Len() != 0 {
		t.Errorf("status = %d, body = %q", rec.Code, rec.Body.String())
	}
}
