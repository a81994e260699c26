package exports

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data/meta.json":
			w.Write([]byte(`{"updated_at_ko":"2026-02-03 09:00"}`))
		case "/data/broken.json":
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream down"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL + "/data/")

	t.Run("ok", func(t *testing.T) {
		body, err := c.Get(context.Background(), "meta.json")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if string(body) != `{"updated_at_ko":"2026-02-03 09:00"}` {
			t.Errorf("body = %s", body)
		}
	})

	tests := []struct {
		name      string
		doc       string
		status    int
		temporary bool
	}{
		{"not found", "missing.json", http.StatusNotFound, false},
		{"server error", "broken.json", http.StatusBadGateway, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Get(context.Background(), tt.doc)

			var se *StatusError
			if !errors.As(err, &se) {
				t.Fatalf("error = %v, want *StatusError", err)
			}
			if se.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", se.StatusCode, tt.status)
			}
			if se.Temporary() != tt.temporary {
				t.Errorf("Temporary() = %v, want %v", se.Temporary(), tt.temporary)
			}
		})
	}
}
