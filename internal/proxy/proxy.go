package proxy

import (
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vincibarbearia/app-agendamento/internal/httperr"
)

// Handler forwards same-origin /api/proxy requests to the upstream booking
// API, injecting the server-held bearer token so it never reaches the
// browser. Responses are relayed as-is and never cached.
type Handler struct {
	baseURL string
	token   string
	http    *http.Client
	log     *zap.Logger
}

func NewHandler(baseURL, token string, logger *zap.Logger) *Handler {
	return &Handler{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     logger,
	}
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
}

// relay forwards the request to the upstream endpoint and writes the
// upstream's status and body back unchanged.
func (h *Handler) relay(c *gin.Context, method, endpoint string, params url.Values, body io.Reader) {
	u := h.baseURL + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), method, u, body)
	if err != nil {
		httperr.Internal(c, "proxy_request_failed", "Erro ao montar requisição.")
		return
	}
	req.Header.Set("Authorization", "Bearer "+h.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.http.Do(req)
	if err != nil {
		h.log.Warn("proxy upstream unreachable", zap.String("endpoint", endpoint), zap.Error(err))
		httperr.BadGateway(c, "upstream_unreachable", "Erro ao conectar com o servidor. Tente novamente.")
		return
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		httperr.BadGateway(c, "upstream_read_failed", "Erro ao ler resposta do servidor.")
		return
	}

	noStore(c)
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(resp.StatusCode, contentType, raw)
}

func (h *Handler) relayGet(endpoint string, passParams ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := url.Values{}
		for _, p := range passParams {
			if v := c.Query(p); v != "" {
				params.Set(p, v)
			}
		}
		h.relay(c, http.MethodGet, endpoint, params, nil)
	}
}

func (h *Handler) relayBody(method, endpoint string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.relay(c, method, endpoint, nil, c.Request.Body)
	}
}
