package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rutvans_api/internal/adapter/persistence/repository"
	"rutvans_api/internal/config"
	"rutvans_api/internal/domain/entities"
	"rutvans_api/internal/infrastructure/cache"
)

func amountPtr(v float64) *float64 {
	return &v
}

func newTestRouter(seed ...entities.Sale) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.Config{CORS: config.CORSConfig{AllowedOrigins: []string{"*"}}}
	return NewRouter(cfg, zap.NewNop(), Dependencies{
		Sales: repository.NewSaleMemoryRepository(seed...),
		Cache: cache.NoopReportCache{},
	})
}

func serve(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Ping(t *testing.T) {
	w := serve(newTestRouter(), http.MethodGet, "/v1/ping", "")
	if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
	}
}

func TestRouter_FinanceReports(t *testing.T) {
	day := func(d, h int) time.Time { return time.Date(2024, 1, d, h, 0, 0, 0, time.UTC) }
	r := newTestRouter(
		entities.Sale{ID: "1", Folio: "F-1", RouteLabel: "A", CreatedAt: day(1, 10), Amount: amountPtr(30)},
		entities.Sale{ID: "2", Folio: "F-2", RouteLabel: "A", CreatedAt: day(1, 12), Amount: amountPtr(10)},
		entities.Sale{ID: "3", Folio: "F-3", RouteLabel: "B", CreatedAt: day(2, 9), Amount: amountPtr(60)},
		entities.Sale{ID: "4", CreatedAt: day(5, 9)},
	)

	t.Run("period totals", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/finanzas/ventas-periodo?from=2024-01-01&to=2024-01-01", "")
		if w.Code != http.StatusOK || w.Body.String() != `{"total":40,"count":2,"average":20}` {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("top routes", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/finanzas/top-rutas?from=2024-01-01&to=2024-01-02", "")
		want := `[{"name":"B","formattedAmount":"$60.00","share":0.6},{"name":"A","formattedAmount":"$40.00","share":0.4}]`
		if w.Code != http.StatusOK || w.Body.String() != want {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("daily detail", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/finanzas/ventas-detalle?date=2024-01-05", "")
		var lines []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &lines); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(lines) != 1 || lines[0]["folio"] != "-" || lines[0]["amount"] != 0.0 {
			t.Fatalf("unexpected lines: %v", lines)
		}
	})

	t.Run("historical balance", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/finanzas/balance-historico?from=2024-01-01&to=2024-01-31&period=monthly", "")
		if w.Code != http.StatusOK || w.Body.String() != `[{"date":"2024-01","balance":100}]` {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("reversed range is empty", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/finanzas/ventas-periodo?from=2024-02-01&to=2024-01-01", "")
		if w.Code != http.StatusOK || w.Body.String() != `{"total":0,"count":0,"average":0}` {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("summary", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/finanzas/resumen", "")
		var body struct {
			Income         float64 `json:"income"`
			Balance        float64 `json:"balance"`
			DailyBreakdown []struct {
				Date string `json:"date"`
			} `json:"dailyBreakdown"`
			Transactions []map[string]any `json:"transactions"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Income != 100 || body.Balance != 100 || len(body.DailyBreakdown) != 3 || len(body.Transactions) != 4 {
			t.Fatalf("unexpected summary: %+v", body)
		}
	})

	t.Run("expenses", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/finanzas/egresos-categorias", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("export", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/finanzas/export?desde=2024-01-01&hasta=2024-01-31&periodo=daily", "")
		if w.Code != http.StatusOK || w.Body.Len() == 0 {
			t.Fatalf("unexpected response: %d", w.Code)
		}
	})
}

func TestRouter_SalesCRUD(t *testing.T) {
	r := newTestRouter()

	w := serve(r, http.MethodPost, "/api/ventas", `{"folio":"F-1","amount":25,"routeLabel":"Norte","createdAt":"2024-01-01T10:00:00Z"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %s", w.Code, w.Body.String())
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil || created.ID == "" {
		t.Fatalf("expected generated id: %s", w.Body.String())
	}

	w = serve(r, http.MethodPut, "/api/ventas/"+created.ID, `{"amount":40}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
	}

	w = serve(r, http.MethodGet, "/api/finanzas/ventas-periodo?from=2024-01-01&to=2024-01-01", "")
	if w.Body.String() != `{"total":40,"count":1,"average":40}` {
		t.Fatalf("expected updated amount in report, got %s", w.Body.String())
	}

	w = serve(r, http.MethodGet, "/api/ventas", "")
	var list []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil || len(list) != 1 {
		t.Fatalf("unexpected list: %s", w.Body.String())
	}

	w = serve(r, http.MethodDelete, "/api/ventas/"+created.ID, "")
	if w.Code != http.StatusOK || w.Body.String() != `{"mensaje":"Venta eliminada"}` {
		t.Fatalf("unexpected delete response: %d %s", w.Code, w.Body.String())
	}

	w = serve(r, http.MethodGet, "/api/ventas/"+created.ID, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w = serve(r, http.MethodPut, "/api/ventas/"+created.ID, `{"amount":1}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCorsConfig(t *testing.T) {
	if c := corsConfig(config.CORSConfig{AllowedOrigins: []string{"*"}}); !c.AllowAllOrigins {
		t.Fatalf("expected all origins allowed")
	}
	if c := corsConfig(config.CORSConfig{}); !c.AllowAllOrigins {
		t.Fatalf("expected all origins allowed when unset")
	}
	c := corsConfig(config.CORSConfig{AllowedOrigins: []string{"https://panel.rutvans.mx"}})
	if c.AllowAllOrigins || len(c.AllowOrigins) != 1 {
		t.Fatalf("unexpected cors config: %+v", c)
	}
}

func TestBuildSaleRepository_UnknownDriver(t *testing.T) {
	_, _, err := buildSaleRepository(t.Context(), config.Config{Store: config.StoreConfig{Driver: "mongo"}}, zap.NewNop())
	if err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestBuildReportCache_Disabled(t *testing.T) {
	c, closeFn := buildReportCache(t.Context(), config.Config{}, zap.NewNop())
	defer closeFn()
	if _, ok := c.(cache.NoopReportCache); !ok {
		t.Fatalf("expected noop cache, got %T", c)
	}
}
