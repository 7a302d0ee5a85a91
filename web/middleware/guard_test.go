package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/thot-edu/campus/database/model"
	"github.com/thot-edu/campus/web/session"
)

type testApp struct {
	engine *gin.Engine

	// adminHits counts how often the admin-only handler actually ran, so
	// tests can assert that a failed guard produced no side effect.
	adminHits int
}

func newTestApp() *testApp {
	gin.SetMode(gin.TestMode)

	app := &testApp{engine: gin.New()}
	store := cookie.NewStore([]byte("test-secret"))
	app.engine.Use(sessions.Sessions("campus", store))

	app.engine.POST("/testlogin", func(c *gin.Context) {
		user := &model.User{
			Id:    1,
			Name:  "Bob",
			Email: "bob@x.com",
			Role:  model.Role(c.Query("rol")),
		}
		_ = session.SetLoginUser(c, user)
		c.Status(http.StatusOK)
	})
	app.engine.POST("/logout", func(c *gin.Context) {
		_ = session.ClearSession(c)
		c.Redirect(http.StatusFound, "/")
	})
	app.engine.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, string(session.GetRole(c)))
	})

	admin := app.engine.Group("")
	admin.Use(RequireLogin(), RequireRole(model.RoleAdmin))
	admin.GET("/create", func(c *gin.Context) {
		app.adminHits++
		c.Status(http.StatusOK)
	})

	return app
}

func (app *testApp) request(t *testing.T, method, target string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	app.engine.ServeHTTP(rec, req)
	return rec
}

func (app *testApp) login(t *testing.T, role model.Role) []*http.Cookie {
	t.Helper()
	rec := app.request(t, http.MethodPost, "/testlogin?rol="+string(role), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	return rec.Result().Cookies()
}

func TestGuardRedirectsAnonymous(t *testing.T) {
	app := newTestApp()

	rec := app.request(t, http.MethodGet, "/create", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Zero(t, app.adminHits)
}

func TestGuardShortCircuitsNonAdmin(t *testing.T) {
	app := newTestApp()
	cookies := app.login(t, model.RoleRegistered)

	rec := app.request(t, http.MethodGet, "/create", cookies)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Zero(t, app.adminHits)
}

func TestGuardPassesAdmin(t *testing.T) {
	app := newTestApp()
	cookies := app.login(t, model.RoleAdmin)

	rec := app.request(t, http.MethodGet, "/create", cookies)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, app.adminHits)
}

func TestSessionRoleSnapshot(t *testing.T) {
	app := newTestApp()

	rec := app.request(t, http.MethodGet, "/whoami", nil)
	assert.Equal(t, string(model.RolePublic), rec.Body.String())

	cookies := app.login(t, model.RoleRegistered)
	rec = app.request(t, http.MethodGet, "/whoami", cookies)
	assert.Equal(t, string(model.RoleRegistered), rec.Body.String())
}

func TestLogoutIsIdempotent(t *testing.T) {
	app := newTestApp()

	// logging out with no session at all is a no-op redirect
	rec := app.request(t, http.MethodPost, "/logout", nil)
	assert.Equal(t, http.StatusFound, rec.Code)

	cookies := app.login(t, model.RoleAdmin)
	rec = app.request(t, http.MethodPost, "/logout", cookies)
	assert.Equal(t, http.StatusFound, rec.Code)

	// the cleared cookie no longer authenticates
	cleared := rec.Result().Cookies()
	rec = app.request(t, http.MethodGet, "/whoami", cleared)
	assert.Equal(t, string(model.RolePublic), rec.Body.String())

	rec = app.request(t, http.MethodPost, "/logout", cleared)
	assert.Equal(t, http.StatusFound, rec.Code)
}
