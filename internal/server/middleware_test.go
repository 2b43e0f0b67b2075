package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/desertthunder/tdx/internal/shared"
	"golang.org/x/time/rate"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware(t *testing.T) {
	t.Run("RateLimit", func(t *testing.T) {
		t.Run("rejects past the burst", func(t *testing.T) {
			router := NewBasicRouter()
			router.Use(RateLimit(rate.NewLimiter(rate.Limit(0), 2)))
			router.Handle(http.MethodGet, "/", okHandler())

			codes := []int{}
			for i := 0; i < 3; i++ {
				rec := httptest.NewRecorder()
				router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
				codes = append(codes, rec.Code)
			}

			if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
				t.Errorf("expected first two requests allowed, got %v", codes)
			}
			if codes[2] != http.StatusTooManyRequests {
				t.Errorf("expected third request limited, got %v", codes)
			}
		})
	})

	t.Run("CORS", func(t *testing.T) {
		t.Run("allows arbitrary origins", func(t *testing.T) {
			router := NewBasicRouter()
			router.Use(CORS())
			router.Handle(http.MethodGet, "/", okHandler())

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", "http://example.com")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
				t.Errorf("expected wildcard allow-origin, got %q", got)
			}
		})

		t.Run("handles preflight", func(t *testing.T) {
			router := NewBasicRouter()
			router.Use(CORS())
			router.Handle(http.MethodPost, "/api/tasks/sync", okHandler())

			req := httptest.NewRequest(http.MethodOptions, "/api/tasks/sync", nil)
			req.Header.Set("Origin", "http://example.com")
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK && rec.Code != http.StatusNoContent {
				t.Errorf("expected preflight success, got %d", rec.Code)
			}
		})
	})

	t.Run("Logging", func(t *testing.T) {
		t.Run("passes the response through", func(t *testing.T) {
			router := NewBasicRouter()
			router.Use(Logging(shared.NewLogger(io.Discard)))
			router.Handle(http.MethodGet, "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			}))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			if rec.Code != http.StatusTeapot {
				t.Errorf("expected status to pass through, got %d", rec.Code)
			}
		})
	})

	t.Run("Ordering", func(t *testing.T) {
		t.Run("last added wraps first", func(t *testing.T) {
			var order []string
			tag := func(name string) Middleware {
				return func(next http.Handler) http.Handler {
					return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
						order = append(order, name)
						next.ServeHTTP(w, r)
					})
				}
			}

			router := NewBasicRouter()
			router.Use(tag("outer"), tag("inner"))
			router.Handle(http.MethodGet, "/", okHandler())

			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

			if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
				t.Errorf("expected outer then inner, got %v", order)
			}
		})

		t.Run("runs before the method filter", func(t *testing.T) {
			seen := false
			router := NewBasicRouter()
			router.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					seen = true
					next.ServeHTTP(w, r)
				})
			})
			router.Handle(http.MethodGet, "/", okHandler())

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

			if rec.Code != http.StatusMethodNotAllowed {
				t.Errorf("expected method rejection, got %d", rec.Code)
			}
			if !seen {
				t.Error("expected middleware to see the rejected request")
			}
		})
	})
}
