package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/user-directory/internal/handler"
	"github.com/maxviazov/user-directory/internal/repository/memory"
	"github.com/maxviazov/user-directory/internal/service"
)

type fixture struct {
	r     *gin.Engine
	store *memory.UserStore
	svc   service.UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := memory.NewUserStore()
	svc := service.NewUserService(store, zerolog.New(io.Discard), service.Options{
		Now: func() time.Time { return time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC) },
	})
	r := gin.New()
	handler.Register(r, store, svc, zerolog.New(io.Discard))
	return &fixture{r: r, store: store, svc: svc}
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.r.ServeHTTP(w, req)
	return w
}

func (f *fixture) get(path string) *httptest.ResponseRecorder {
	return f.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (f *fixture) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return f.do(req)
}

// follow replays a redirect the way a browser would, carrying its cookies.
func (f *fixture) follow(t *testing.T, w *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	t.Helper()
	require.Equal(t, http.StatusSeeOther, w.Code, "body=%s", w.Body.String())
	req := httptest.NewRequest(http.MethodGet, w.Header().Get("Location"), nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return f.do(req)
}

func (f *fixture) seed(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := f.svc.CreateUser(context.Background(), service.UserInput{
			LastName: "Doe", FirstName: "Jane", Email: "jane@example.com", BirthDate: "1990-04-12",
		})
		require.NoError(t, err)
	}
}

func validForm() url.Values {
	return url.Values{
		"last_name":  {"Doe"},
		"first_name": {"Jane"},
		"email":      {"jane@example.com"},
		"birth_date": {"1990-04-12"},
	}
}

func TestIndexPage(t *testing.T) {
	f := newFixture(t)
	f.seed(t, 2)

	w := f.get("/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome to the user management application")
	assert.Contains(t, w.Body.String(), "2 user(s) registered")
}

func TestListPage_Empty(t *testing.T) {
	f := newFixture(t)

	w := f.get("/users")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "No users yet")
	assert.Contains(t, body, "Total users: 0")
	assert.Contains(t, body, "Page 1 of 1")
}

func TestListPage_PaginationClamps(t *testing.T) {
	f := newFixture(t)
	f.seed(t, 25)

	w := f.get("/users?page=99&size=10")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Page 3 of 3")
	assert.Contains(t, body, "<strong>3</strong>")
	assert.Contains(t, body, `href="/users/edit/25"`)
	assert.NotContains(t, body, `href="/users/edit/20"`)
	assert.NotContains(t, body, "Next &raquo;")
}

func TestListPage_MalformedQueryFallsBack(t *testing.T) {
	f := newFixture(t)
	f.seed(t, 3)

	w := f.get("/users?page=abc&size=-1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Page 1 of 1")
}

func TestAddUser_SuccessRedirectsWithFlash(t *testing.T) {
	f := newFixture(t)

	w := f.postForm("/users/add", validForm())
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/users", w.Header().Get("Location"))

	page := f.follow(t, w)
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "User created successfully")
	assert.Contains(t, page.Body.String(), "jane@example.com")

	// The flash is consumed: the list page expires the cookie.
	var expired bool
	for _, c := range page.Result().Cookies() {
		if c.Name == "flash" && c.MaxAge < 0 {
			expired = true
		}
	}
	assert.True(t, expired, "flash cookie should be cleared after display")

	n, _ := f.store.Count(context.Background())
	assert.Equal(t, 1, n)
}

func TestAddUser_InvalidRerendersForm(t *testing.T) {
	f := newFixture(t)
	form := validForm()
	form.Set("email", "not-an-email")
	form.Set("first_name", "  ")

	w := f.postForm("/users/add", form)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "must be a valid email address")
	assert.Contains(t, body, "must not be empty")
	assert.Contains(t, body, `value="not-an-email"`, "submitted values are kept")
	assert.Contains(t, body, "Create user")

	n, _ := f.store.Count(context.Background())
	assert.Zero(t, n)
}

func TestEditUser_FormPrefilled(t *testing.T) {
	f := newFixture(t)
	f.seed(t, 1)

	w := f.get("/users/edit/1")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `value="Doe"`)
	assert.Contains(t, body, `value="1990-04-12"`)
	assert.Contains(t, body, `action="/users/edit/1"`)
	assert.Contains(t, body, "Save changes")
}

func TestEditUser_UnknownRedirects(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{"/users/edit/42", "/users/edit/abc"} {
		page := f.follow(t, f.get(path))
		assert.Contains(t, page.Body.String(), "User not found", path)
	}
}

func TestEditUser_Submit(t *testing.T) {
	f := newFixture(t)
	f.seed(t, 1)

	form := validForm()
	form.Set("email", "renamed@example.com")
	page := f.follow(t, f.postForm("/users/edit/1", form))
	assert.Contains(t, page.Body.String(), "User updated successfully")
	assert.Contains(t, page.Body.String(), "renamed@example.com")

	u, err := f.svc.GetUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "renamed@example.com", u.Email)
}

func TestEditUser_SubmitInvalid(t *testing.T) {
	f := newFixture(t)
	f.seed(t, 1)

	form := validForm()
	form.Set("birth_date", "2999-01-01")
	w := f.postForm("/users/edit/1", form)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "must be in the past")
	assert.Contains(t, w.Body.String(), "Save changes")
}

func TestEditUser_SubmitMissing(t *testing.T) {
	f := newFixture(t)

	page := f.follow(t, f.postForm("/users/edit/7", validForm()))
	assert.Contains(t, page.Body.String(), "Error while updating the user")

	n, _ := f.store.Count(context.Background())
	assert.Zero(t, n, "update of a missing user must not create one")
}

func TestDeleteUser(t *testing.T) {
	f := newFixture(t)
	f.seed(t, 2)

	page := f.follow(t, f.get("/users/delete/1"))
	assert.Contains(t, page.Body.String(), "User deleted successfully")

	page = f.follow(t, f.postForm("/users/delete/1", nil))
	assert.Contains(t, page.Body.String(), "Error while deleting the user")

	n, _ := f.store.Count(context.Background())
	assert.Equal(t, 1, n)
}

func TestFlash_TamperedCookieIgnored(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.AddCookie(&http.Cookie{Name: "flash", Value: "%%%not-base64"})

	w := f.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `class="flash-`)
}
