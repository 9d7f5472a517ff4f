package proxy

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newProxyRouter(t *testing.T, upstream http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	r := gin.New()
	NewHandler(server.URL, "secret-token", zap.NewNop()).Register(r.Group("/api/proxy"))
	return r
}

func TestProxyInjectsBearerAndNeverCaches(t *testing.T) {
	var gotAuth string
	r := newProxyRouter(t, func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		w.Write([]byte(`[{"id":"s1"}]`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/proxy/servicos", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotAuth != "Bearer secret-token" {
		t.Fatalf("token not injected, got %q", gotAuth)
	}
	if cc := resp.Header().Get("Cache-Control"); !strings.Contains(cc, "no-store") {
		t.Fatalf("expected no-store, got %q", cc)
	}
}

func TestProxyRelaysUpstreamStatusAndBody(t *testing.T) {
	r := newProxyRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"Horário indisponível"}`))
	})

	body := strings.NewReader(`{"data":"15-09-2026"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/proxy/criar-agendamento", body)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("upstream status not relayed, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Horário indisponível") {
		t.Fatalf("upstream body not relayed, got %q", resp.Body.String())
	}
}

func TestProxyForcesActiveFilter(t *testing.T) {
	var gotQuery string
	r := newProxyRouter(t, func(w http.ResponseWriter, req *http.Request) {
		gotQuery = req.URL.Query().Get("ativo")
		w.Write([]byte(`{"produtos":[]}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/proxy/produtos", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if gotQuery != "true" {
		t.Fatalf("ativo filter not forced, got %q", gotQuery)
	}
}

func TestProxyAvailableTimesRequiresDate(t *testing.T) {
	r := newProxyRouter(t, func(w http.ResponseWriter, req *http.Request) {
		t.Fatal("upstream reached without a date")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/proxy/horarios", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestProxyByPhoneRequiresPhone(t *testing.T) {
	r := newProxyRouter(t, func(w http.ResponseWriter, req *http.Request) {
		t.Fatal("upstream reached without a phone")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/proxy/meus-agendamentos", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestProxyUnreachableUpstream(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler("http://127.0.0.1:1", "t", zap.NewNop()).Register(r.Group("/api/proxy"))

	req := httptest.NewRequest(http.MethodGet, "/api/proxy/servicos", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", resp.Code)
	}
}
