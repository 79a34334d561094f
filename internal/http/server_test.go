package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"nexus-backend-go/internal/config"
	"nexus-backend-go/internal/models"
	"nexus-backend-go/internal/testutil"
)

type testEnv struct {
	server  *Server
	handler http.Handler
	media   *fakeMedia
}

func testConfig() config.Config {
	return config.Config{
		Port:                 8080,
		DatabaseDriver:       "sqlite",
		JWTSecret:            "test-secret-at-least-16-chars",
		JWTIssuer:            "nexus",
		TokenTTLSeconds:      86400,
		CorsOrigins:          []string{"http://localhost:3001"},
		MediaFolder:          "nexus",
		MaxUploadMB:          8,
		StatsIntervalSeconds: 1,
		MetricsDiskPath:      "/",
	}
}

func newTestEnv(t *testing.T, mutate ...func(*config.Config)) *testEnv {
	t.Helper()
	cfg := testConfig()
	for _, fn := range mutate {
		fn(&cfg)
	}
	media := &fakeMedia{}
	server := NewServer(testutil.NewStore(t), cfg, media, zap.NewNop())
	t.Cleanup(server.Close)
	return &testEnv{server: server, handler: server.Router(), media: media}
}

func (e *testEnv) do(t *testing.T, method, target string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch v := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(v)
	default:
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[ErrorResponse](t, rec).Error
}

func TestCreateTestimonialAppliesDefaults(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/function?action=create-testimonial", map[string]any{
		"name":    "Ada",
		"content": "Great!",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode[models.Testimonial](t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 5, created.Rating)
	assert.True(t, created.IsActive)
	assert.Equal(t, 0, created.Order)

	rec = env.do(t, http.MethodGet, "/api/function?action=get-testimonials&id="+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[models.Testimonial](t, rec)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "Great!", got.Content)
	assert.Equal(t, 5, got.Rating)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestCreateProductDefaults(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/function?action=create-product", map[string]any{
		"title": "Nexus Cloud Suite",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, "nexus-cloud-suite", raw["slug"])
	assert.Equal(t, "USD", raw["currency"])
	assert.Equal(t, "one-time", raw["pricingModel"])
	assert.Equal(t, "draft", raw["status"])
	assert.Equal(t, true, raw["isActive"])
	assert.Equal(t, false, raw["isFeatured"])
	assert.Equal(t, float64(0), raw["order"])
	assert.Equal(t, []any{}, raw["features"])
	assert.Equal(t, map[string]any{}, raw["specifications"])
	assert.Equal(t, map[string]any{}, raw["systemRequirements"])
	assert.Nil(t, raw["publishedAt"])
	assert.Nil(t, raw["price"])
}

func TestCreateRequiresFields(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		action string
		body   map[string]any
		want   string
	}{
		{"create-hero", map[string]any{}, "title is required"},
		{"create-product", map[string]any{"title": "  "}, "title is required"},
		{"create-testimonial", map[string]any{"name": "Ada"}, "content is required"},
		{"create-why-choose-us", map[string]any{"title": "Fast"}, "description is required"},
		{"create-book-demo", map[string]any{}, "title is required"},
		{"create-demo-request", map[string]any{"name": "Bo"}, "email is required"},
		{"create-contact", map[string]any{"name": "Bo", "email": "bo@x.io"}, "message is required"},
		{"create-job-application", map[string]any{"name": "Bo", "email": "bo@x.io"}, "position is required"},
		{"create-setting", map[string]any{"key": "site_name"}, "value is required"},
	}
	for _, tc := range cases {
		rec := env.do(t, http.MethodPost, "/api/function?action="+tc.action, tc.body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, tc.action)
		assert.Equal(t, tc.want, errorOf(t, rec), tc.action)
	}
}

func TestRejectsInvalidEnumsAndPayloads(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/function?action=create-product", map[string]any{"title": "X", "status": "live"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/function?action=create-testimonial", map[string]any{"name": "A", "content": "B", "rating": 6})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/function?action=create-hero", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid payload", errorOf(t, rec))
}

func TestIDRequiredBeforeActionCheck(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPut, "/api/function?action=nope", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ID is required", errorOf(t, rec))

	rec = env.do(t, http.MethodDelete, "/api/function?action=delete-hero", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ID is required", errorOf(t, rec))

	rec = env.do(t, http.MethodDelete, "/api/function?action=nope&id=1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid action", errorOf(t, rec))
}

func TestInvalidAction(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/function?action=get-everything", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid action", errorOf(t, rec))

	// GET actions are not reachable through POST.
	rec = env.do(t, http.MethodPost, "/api/function?action=get-hero", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid action", errorOf(t, rec))
}

func TestMissingRecordReadsNullAndWritesNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/function?action=get-hero&id=missing", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))

	rec = env.do(t, http.MethodPut, "/api/function?action=update-hero&id=missing", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Record not found", errorOf(t, rec))

	rec = env.do(t, http.MethodDelete, "/api/function?action=delete-product&id=missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteThenGetReturnsNull(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/function?action=create-why-choose-us", map[string]any{
		"title":       "Support",
		"description": "24/7",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	item := decode[models.WhyChooseUsItem](t, rec)

	rec = env.do(t, http.MethodDelete, "/api/function?action=delete-why-choose-us&id="+item.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Why Choose Us item deleted", decode[MessageResponse](t, rec).Message)

	rec = env.do(t, http.MethodGet, "/api/function?action=get-why-choose-us&id="+item.ID, nil)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestUpdateProductPriceOnlyAndPublish(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/function?action=create-product", map[string]any{
		"title":    "Nexus ERP",
		"category": "software",
		"features": []string{"billing"},
		"price":    100,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	product := decode[models.Product](t, rec)

	rec = env.do(t, http.MethodPut, "/api/function?action=update-product&id="+product.ID, map[string]any{"price": 120})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[models.Product](t, rec)
	assert.Equal(t, 120.0, *updated.Price)
	assert.Equal(t, "Nexus ERP", updated.Title)
	assert.Equal(t, "software", *updated.Category)
	assert.Equal(t, models.StringList{"billing"}, updated.Features)
	assert.Nil(t, updated.PublishedAt)

	rec = env.do(t, http.MethodPut, "/api/function?action=update-product&id="+product.ID, map[string]any{"status": "published"})
	require.Equal(t, http.StatusOK, rec.Code)
	published := decode[models.Product](t, rec)
	require.NotNil(t, published.PublishedAt)

	rec = env.do(t, http.MethodPut, "/api/function?action=update-product&id="+product.ID, map[string]any{"status": "published"})
	require.Equal(t, http.StatusOK, rec.Code)
	again := decode[models.Product](t, rec)
	require.NotNil(t, again.PublishedAt)
	assert.True(t, published.PublishedAt.Equal(*again.PublishedAt))

	rec = env.do(t, http.MethodPut, "/api/function?action=update-product&id="+product.ID, map[string]any{"status": "gone"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProductsFilters(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []map[string]any{
		{"title": "A", "category": "software", "isFeatured": true, "order": 2, "status": "published"},
		{"title": "B", "category": "software", "isFeatured": true, "order": 1, "status": "published"},
		{"title": "C", "category": "software", "isFeatured": false, "status": "published"},
		{"title": "D", "category": "hardware", "isFeatured": true, "status": "published"},
	} {
		rec := env.do(t, http.MethodPost, "/api/function?action=create-product", body)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := env.do(t, http.MethodGet, "/api/function?action=get-products&category=software&featured=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	products := decode[[]models.Product](t, rec)
	require.Len(t, products, 2)
	assert.Equal(t, "B", products[0].Title)
	assert.Equal(t, "A", products[1].Title)

	rec = env.do(t, http.MethodGet, "/api/function?action=get-product-categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"category":"hardware","_count":{"category":1}},
		{"category":"software","_count":{"category":3}}
	]`, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/api/function?action=get-products&status=archived", nil)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestSettingsUpsertAndLookup(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/function?action=create-setting", map[string]any{"key": "site_name", "value": "Nexus"})
	require.Equal(t, http.StatusOK, rec.Code)
	first := decode[models.SiteSetting](t, rec)

	rec = env.do(t, http.MethodPost, "/api/function?action=create-setting", map[string]any{"key": "site_name", "value": "Nexus Corp"})
	require.Equal(t, http.StatusOK, rec.Code)
	second := decode[models.SiteSetting](t, rec)
	assert.Equal(t, first.ID, second.ID)

	rec = env.do(t, http.MethodGet, "/api/function?action=get-settings&key=site_name", nil)
	assert.Equal(t, "Nexus Corp", decode[models.SiteSetting](t, rec).Value)

	rec = env.do(t, http.MethodPut, "/api/function?action=update-setting&id="+first.ID, map[string]any{"description": "brand"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[models.SiteSetting](t, rec)
	assert.Equal(t, "Nexus Corp", updated.Value)
	assert.Equal(t, "brand", *updated.Description)

	rec = env.do(t, http.MethodGet, "/api/function?action=get-settings&key=unknown", nil)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))

	rec = env.do(t, http.MethodDelete, "/api/function?action=delete-setting&id="+first.ID, nil)
	assert.Equal(t, "Setting deleted", decode[MessageResponse](t, rec).Message)
}

func TestSubmissionsLifecycle(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/function?action=create-contact", map[string]any{
		"name": "Bo", "email": "bo@x.io", "message": "Hello",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	contact := decode[models.Contact](t, rec)
	assert.Equal(t, models.StatusPending, contact.Status)

	rec = env.do(t, http.MethodPut, "/api/function?action=update-contact&id="+contact.ID, map[string]any{"status": "resolved", "message": "ignored"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[models.Contact](t, rec)
	assert.Equal(t, "resolved", updated.Status)
	assert.Equal(t, "Hello", updated.Message)

	rec = env.do(t, http.MethodDelete, "/api/function?action=delete-contact&id="+contact.ID, nil)
	assert.Equal(t, "Contact deleted", decode[MessageResponse](t, rec).Message)

	for _, body := range []map[string]any{
		{"name": "A", "email": "a@x.io", "position": "engineer"},
		{"name": "B", "email": "b@x.io", "position": "engineer", "status": "reviewed"},
		{"name": "C", "email": "c@x.io", "position": "designer"},
	} {
		rec := env.do(t, http.MethodPost, "/api/function?action=create-job-application", body)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec = env.do(t, http.MethodGet, "/api/function?action=get-applications-by-position&position=engineer&status=pending", nil)
	apps := decode[[]models.JobApplication](t, rec)
	require.Len(t, apps, 1)
	assert.Equal(t, "A", apps[0].Name)

	rec = env.do(t, http.MethodGet, "/api/function?action=get-job-applications", nil)
	assert.Len(t, decode[[]models.JobApplication](t, rec), 3)
}

func TestGetStats(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/function?action=create-product", map[string]any{"title": "P"})
	env.do(t, http.MethodPost, "/api/function?action=create-demo-request", map[string]any{"name": "A", "email": "a@x.io"})
	env.do(t, http.MethodPost, "/api/function?action=create-demo-request", map[string]any{"name": "B", "email": "b@x.io", "status": "done"})

	rec := env.do(t, http.MethodGet, "/api/function?action=get-stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalProducts":1,"totalTestimonials":0,"totalDemoRequests":2,"pendingRequests":1}`, rec.Body.String())
}

func TestAuthRequiredGuardsAdminWrites(t *testing.T) {
	env := newTestEnv(t, func(cfg *config.Config) { cfg.AuthRequired = true })

	rec := env.do(t, http.MethodPost, "/api/function?action=create-hero", map[string]any{"title": "Hi"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/function?action=create-demo-request", map[string]any{"name": "A", "email": "a@x.io"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/function?action=get-hero", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	token, _, err := env.server.Tokens.CreateAccessToken(models.Admin{ID: "admin-1", Email: "admin@nexus.com"})
	require.NoError(t, err)
	rec = env.do(t, http.MethodPost, "/api/function?action=create-hero", map[string]any{"title": "Hi"}, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodOptions, "/api/function?action=get-hero", nil,
		"Origin", "http://localhost:3001",
		"Access-Control-Request-Method", "PUT",
	)
	assert.Equal(t, "http://localhost:3001", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	rec = env.do(t, http.MethodGet, "/api/function?action=get-hero", nil, "Origin", "http://evil.test")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCreateThenGetRoundTrips(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		entity string
		get    string
		body   map[string]any
	}{
		{"hero", "get-hero", map[string]any{"title": "Build faster", "subtitle": "Nexus", "buttonLink": "/demo"}},
		{"product", "get-products", map[string]any{
			"title": "Nexus ERP", "category": "software", "price": 99.5, "status": "published",
			"features": []string{"billing", "crm"}, "specifications": map[string]any{"seats": 10},
		}},
		{"testimonial", "get-testimonials", map[string]any{"name": "Ada", "content": "Great!", "rating": 4}},
		{"why-choose-us", "get-why-choose-us", map[string]any{"title": "Support", "description": "24/7", "order": 2}},
		{"book-demo", "get-book-demo", map[string]any{"title": "Book a demo", "formFields": map[string]any{"company": true}}},
		{"demo-request", "get-demo-requests", map[string]any{"name": "Bo", "email": "bo@x.io", "company": "Acme"}},
		{"contact", "get-contacts", map[string]any{"name": "Bo", "email": "bo@x.io", "message": "Hello"}},
		{"job-application", "get-job-applications", map[string]any{"name": "Bo", "email": "bo@x.io", "position": "engineer"}},
	}
	for _, tc := range cases {
		t.Run(tc.entity, func(t *testing.T) {
			created := env.do(t, http.MethodPost, "/api/function?action=create-"+tc.entity, tc.body)
			require.Equal(t, http.StatusOK, created.Code, created.Body.String())

			var fields map[string]any
			require.NoError(t, json.Unmarshal(created.Body.Bytes(), &fields))
			id, _ := fields["id"].(string)
			require.NotEmpty(t, id)
			for key, want := range tc.body {
				wantJSON, err := json.Marshal(want)
				require.NoError(t, err)
				gotJSON, err := json.Marshal(fields[key])
				require.NoError(t, err)
				assert.JSONEq(t, string(wantJSON), string(gotJSON), key)
			}

			fetched := env.do(t, http.MethodGet, "/api/function?action="+tc.get+"&id="+id, nil)
			require.Equal(t, http.StatusOK, fetched.Code)
			assert.JSONEq(t, created.Body.String(), fetched.Body.String())
		})
	}
}

func TestUpdateRejectsNullAndBlankRequiredFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/function?action=create-hero", map[string]any{
		"title": "Keep", "subtitle": "Drop me", "isActive": true,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	hero := decode[models.HeroSection](t, rec)
	target := "/api/function?action=update-hero&id=" + hero.ID

	for _, body := range []string{`{"title":null}`, `{"isActive":null}`, `{"title":null,"isActive":null}`} {
		rec = env.do(t, http.MethodPut, target, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "Invalid payload", errorOf(t, rec), body)
	}

	rec = env.do(t, http.MethodPut, target, map[string]any{"title": " "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "title is required", errorOf(t, rec))

	// Nullable columns can still be cleared.
	rec = env.do(t, http.MethodPut, target, `{"subtitle":null}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[models.HeroSection](t, rec)
	assert.Nil(t, updated.Subtitle)
	assert.Equal(t, "Keep", updated.Title)
	assert.True(t, updated.IsActive)

	rec = env.do(t, http.MethodPost, "/api/function?action=create-product", map[string]any{"title": "P", "features": []string{"a"}})
	require.Equal(t, http.StatusOK, rec.Code)
	product := decode[models.Product](t, rec)

	rec = env.do(t, http.MethodPut, "/api/function?action=update-product&id="+product.ID, `{"order":null}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = env.do(t, http.MethodPut, "/api/function?action=update-product&id="+product.ID, map[string]any{"slug": ""})
	assert.Equal(t, "slug is required", errorOf(t, rec))
	rec = env.do(t, http.MethodPut, "/api/function?action=update-product&id="+product.ID, `{"features":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[models.Product](t, rec).Features)

	blanks := []struct {
		action string
		body   map[string]any
		want   string
	}{
		{"update-testimonial", map[string]any{"content": ""}, "content is required"},
		{"update-why-choose-us", map[string]any{"description": ""}, "description is required"},
		{"update-book-demo", map[string]any{"title": ""}, "title is required"},
		{"update-setting", map[string]any{"value": ""}, "value is required"},
		{"update-contact", map[string]any{"status": ""}, "status is required"},
	}
	for _, tc := range blanks {
		rec := env.do(t, http.MethodPut, "/api/function?action="+tc.action+"&id=any", tc.body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, tc.action)
		assert.Equal(t, tc.want, errorOf(t, rec), tc.action)
	}
}
