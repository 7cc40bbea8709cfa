package httpapi

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/avigneron/boutique/internal/logging"
	"github.com/avigneron/boutique/internal/server/auth"
	"github.com/avigneron/boutique/internal/server/config"
	"github.com/avigneron/boutique/internal/server/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.LoadDefaults()

	logger := logging.NewSlogLogger(slog.New(slog.DiscardHandler))
	deps := services.Deps{Fallback: true, Logger: logger}

	srv := NewServer(
		auth.NewGate(cfg, logger),
		services.NewProductService(deps),
		services.NewCategoryService(deps),
		services.NewSocialMediaService(deps),
		services.NewPageContentService(deps),
		services.NewShopConfigService(deps),
		services.NewUploadService(cfg, logger),
		logger,
	)
	return srv.Router()
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not the envelope: %v (%s)", err, w.Body.String())
	}
	return w, env
}

func adminToken(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w, env := doRequest(t, r, http.MethodPost, "/api/admin/auth", "", gin.H{"password": "admin123"})
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}

	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("unexpected login payload: %+v", env.Data)
	}
	token, _ := data["token"].(string)
	if token == "" {
		t.Fatalf("no token in login payload: %+v", data)
	}
	return token
}

func TestPublicProductsServesDemoData(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/products", "", nil)
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
	}

	items, ok := env.Data.([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("want 2 demo products, got %+v", env.Data)
	}
}

func TestEmptyListStaysAnArray(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/products/category/unknown-slug", "", nil)
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
	}

	items, ok := env.Data.([]any)
	if !ok {
		t.Fatalf("want a JSON array for an empty list, got %s", w.Body.String())
	}
	if len(items) != 0 {
		t.Fatalf("want no products for unknown slug, got %+v", items)
	}
}

func TestPublicConfigAndContent(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/config", "", nil)
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("config response: %d %s", w.Code, w.Body.String())
	}
	data, _ := env.Data.(map[string]any)
	if data["shop_name"] != "Ma Boutique CBD" {
		t.Fatalf("unexpected shop config: %+v", data)
	}

	w, env = doRequest(t, r, http.MethodGet, "/api/content", "", nil)
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("content response: %d %s", w.Code, w.Body.String())
	}

	w, env = doRequest(t, r, http.MethodGet, "/api/content/about", "", nil)
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("page-by-key response: %d %s", w.Code, w.Body.String())
	}
	page, _ := env.Data.(map[string]any)
	if page["page_key"] != "about" {
		t.Fatalf("unexpected page: %+v", page)
	}

	w, env = doRequest(t, r, http.MethodGet, "/api/content/unknown", "", nil)
	if w.Code != http.StatusNotFound || env.Success {
		t.Fatalf("want 404 for unknown page key, got %d %s", w.Code, w.Body.String())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodPost, "/api/admin/auth", "", gin.H{"password": "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", w.Code)
	}
	if env.Success || env.Error == "" {
		t.Fatalf("want error envelope, got %s", w.Body.String())
	}
}

func TestLoginMissingPassword(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodPost, "/api/admin/auth", "", gin.H{})
	if w.Code != http.StatusBadRequest || env.Success {
		t.Fatalf("want 400 for missing password, got %d %s", w.Code, w.Body.String())
	}
}

func TestLoginAndCheckToken(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t, r)

	w, env := doRequest(t, r, http.MethodGet, "/api/admin/auth", token, nil)
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("token check failed: %d %s", w.Code, w.Body.String())
	}
	data, _ := env.Data.(map[string]any)
	if data["authenticated"] != true {
		t.Fatalf("unexpected session: %+v", data)
	}
}

func TestAdminRoutesRejectMissingOrBadToken(t *testing.T) {
	r := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/admin/products", "", nil)
	if w.Code != http.StatusUnauthorized || env.Success {
		t.Fatalf("want 401 without token, got %d %s", w.Code, w.Body.String())
	}

	w, env = doRequest(t, r, http.MethodGet, "/api/admin/products", "not-a-jwt", nil)
	if w.Code != http.StatusUnauthorized || env.Success {
		t.Fatalf("want 401 for garbage token, got %d %s", w.Code, w.Body.String())
	}
}

func TestAdminCreateProductValidation(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t, r)

	w, env := doRequest(t, r, http.MethodPost, "/api/admin/products", token, gin.H{"name": "only a name"})
	if w.Code != http.StatusBadRequest || env.Success {
		t.Fatalf("want 400, got %d %s", w.Code, w.Body.String())
	}
}

func TestAdminCreateProduct(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t, r)

	w, env := doRequest(t, r, http.MethodPost, "/api/admin/products", token, gin.H{
		"name":          "Baume CBD",
		"description":   "Baume apaisant",
		"price":         19.99,
		"video_url":     "https://example.com/v.mp4",
		"thumbnail_url": "https://example.com/t.jpg",
		"order_link":    "https://example.com/order",
	})
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("create failed: %d %s", w.Code, w.Body.String())
	}
	data, _ := env.Data.(map[string]any)
	if data["slug"] != "baume-cbd" || data["is_active"] != true {
		t.Fatalf("unexpected product: %+v", data)
	}
}

func TestAdminDeleteUnknownProduct(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t, r)

	w, env := doRequest(t, r, http.MethodDelete, "/api/admin/products/does-not-exist", token, nil)
	if w.Code != http.StatusNotFound || env.Success {
		t.Fatalf("want 404, got %d %s", w.Code, w.Body.String())
	}
}

func TestAdminUploadUnconfigured(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t, r)

	// no S3 endpoint configured in the test config
	w, env := doRequest(t, r, http.MethodPost, "/api/admin/upload", token, nil)
	if w.Code != http.StatusBadRequest || env.Success {
		t.Fatalf("want 400, got %d %s", w.Code, w.Body.String())
	}

	w, env = doRequest(t, r, http.MethodGet, "/api/admin/upload?key=media/x", token, nil)
	if w.Code != http.StatusBadRequest || env.Success {
		t.Fatalf("want 400 for unconfigured download, got %d %s", w.Code, w.Body.String())
	}
}

func TestAdminDownloadRequiresKey(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t, r)

	w, env := doRequest(t, r, http.MethodGet, "/api/admin/upload", token, nil)
	if w.Code != http.StatusBadRequest || env.Success {
		t.Fatalf("want 400 without key, got %d %s", w.Code, w.Body.String())
	}
}

func TestAdminSaveShopConfig(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t, r)

	w, env := doRequest(t, r, http.MethodPut, "/api/admin/config", token, gin.H{
		"shop_name":        "Nouvelle Boutique",
		"background_color": "#000",
		"footer_text":      "pied de page",
		"dark_mode":        true,
	})
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("save failed: %d %s", w.Code, w.Body.String())
	}
	data, _ := env.Data.(map[string]any)
	if data["shop_name"] != "Nouvelle Boutique" {
		t.Fatalf("unexpected config: %+v", data)
	}
}
