package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timhliu/portfolio/internal/store"
)

func (ts *testServer) login(t *testing.T) *http.Cookie {
	t.Helper()
	w := ts.postForm("/admin/login", url.Values{"username": {"admin"}, "password": {"s3cret"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
	for _, c := range w.Result().Cookies() {
		if c.Name == adminCookie {
			return c
		}
	}
	t.Fatal("no admin cookie set")
	return nil
}

func (ts *testServer) adminGet(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return ts.do(req)
}

func TestAdminRequiresLogin(t *testing.T) {
	ts := newTestServer(t)
	w := ts.adminGet("/admin/dashboard", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	w = ts.adminGet("/admin/dashboard", &http.Cookie{Name: adminCookie, Value: "forged"})
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestAdminBadCredentials(t *testing.T) {
	ts := newTestServer(t)
	w := ts.postForm("/admin/login", url.Values{"username": {"admin"}, "password": {"nope"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestAdminDashboard(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	require.NoError(t, ts.store.RecordSelection(ctx, "London", "h"))
	require.NoError(t, ts.store.RecordVisit(ctx, "h", "test", "/"))

	cookie := ts.login(t)
	w := ts.adminGet("/admin/dashboard", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "London")

	w = ts.adminGet("/admin/api/stats", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_selections":1`)

	w = ts.adminGet("/admin/visitors", cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.adminGet("/admin/export/stats", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "admin-stats.json")
}

func TestAdminMessages(t *testing.T) {
	ts := newTestServer(t)
	id, err := ts.store.SaveMessage(context.Background(), store.Message{Name: "Ada", Email: "ada@example.com", Body: "Hi"})
	require.NoError(t, err)

	cookie := ts.login(t)
	w := ts.adminGet("/admin/messages", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ada@example.com")

	del := func(path string) int {
		req := httptest.NewRequest(http.MethodDelete, path, nil)
		req.AddCookie(cookie)
		return ts.do(req).Code
	}
	assert.Equal(t, http.StatusOK, del("/admin/messages/"+strconv.FormatInt(id, 10)))
	assert.Equal(t, http.StatusNotFound, del("/admin/messages/"+strconv.FormatInt(id, 10)))
	assert.Equal(t, http.StatusBadRequest, del("/admin/messages/abc"))
}

func TestPrivacyPage(t *testing.T) {
	ts := newTestServer(t)
	w := ts.get("/privacy")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "1h0m0s")
}

func TestHashIPStable(t *testing.T) {
	ts := newTestServer(t)
	a := ts.srv.hashIP("203.0.113.7")
	assert.Len(t, a, 16)
	assert.Equal(t, a, ts.srv.hashIP("203.0.113.7"))
	assert.NotEqual(t, a, ts.srv.hashIP("203.0.113.8"))
}
