package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okellojun/HackLab/internal/client"
	"github.com/okellojun/HackLab/internal/client/view"
	"github.com/okellojun/HackLab/internal/common/security"
	"github.com/okellojun/HackLab/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(int) ([]byte, error) { return []byte(pw), nil }
}

type fakeAPI struct {
	tokens   *security.TokenService
	problems []model.Problem
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/login":
		var req client.LoginRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "pw" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid username or password"})
			return
		}
		role := model.RoleHacker
		if req.Username == "acme" {
			role = model.RoleCompany
		}
		tok, _ := f.tokens.GenerateToken(security.Principal{ID: "u-1", Username: req.Username, Role: role})
		json.NewEncoder(w).Encode(client.AuthResponse{User: model.PublicUser{ID: "u-1", Username: req.Username, Role: role}, Token: tok})
	case "/problems":
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
			return
		}
		json.NewEncoder(w).Encode(f.problems)
	default:
		http.NotFound(w, r)
	}
}

func newTestApp(t *testing.T, stdin string) (*App, *bytes.Buffer, *client.TokenStore) {
	t.Helper()
	api := &fakeAPI{
		tokens: security.NewTokenService([]byte("cli-test"), nil),
		problems: []model.Problem{
			{Title: "API Rate Limiting", Category: "Backend", Difficulty: model.DifficultyMedium, Bounty: 1500, Status: model.StatusActive},
			{Title: "Mobile Checkout", Category: "Mobile", Difficulty: model.DifficultyEasy, Bounty: 700, Status: model.StatusActive},
		},
	}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	store := client.NewTokenStore(filepath.Join(t.TempDir(), "token"))
	out := &bytes.Buffer{}
	return NewApp(client.New(srv.URL, store, srv.Client()), strings.NewReader(stdin), out, 0), out, store
}

func TestLoginThenBrowse(t *testing.T) {
	stubPassword(t, "pw")
	app, out, store := newTestApp(t, "alice\n")

	require.NoError(t, app.Run(context.Background(), []string{"login"}))
	assert.Contains(t, out.String(), "Logged in as alice (hacker).")

	claims, err := store.Claims()
	require.NoError(t, err)
	assert.Equal(t, model.RoleHacker, claims.Role)

	out.Reset()
	require.NoError(t, app.Run(context.Background(), []string{"view", "problems", "-category", "Mobile"}))
	assert.Contains(t, out.String(), "Browse Problems (1 of 2)")
	assert.Contains(t, out.String(), "Mobile Checkout")
	assert.NotContains(t, out.String(), "API Rate Limiting")
}

func TestCompanyProblemsView(t *testing.T) {
	stubPassword(t, "pw")
	app, out, _ := newTestApp(t, "acme\n")

	require.NoError(t, app.Run(context.Background(), []string{"login"}))
	out.Reset()
	require.NoError(t, app.Run(context.Background(), []string{"view", "problems", "-search", "rate"}))
	assert.True(t, strings.HasPrefix(out.String(), "Problems\n"), out.String())
	assert.Contains(t, out.String(), "API Rate Limiting")
}

func TestLogin_WrongPassword(t *testing.T) {
	stubPassword(t, "nope")
	app, _, store := newTestApp(t, "alice\n")

	err := app.Run(context.Background(), []string{"login"})
	require.EqualError(t, err, "Invalid username or password")
	_, err = store.Load()
	assert.ErrorIs(t, err, client.ErrNoToken)
}

func TestView_WithoutLoginShowsServerMessage(t *testing.T) {
	app, _, _ := newTestApp(t, "")
	err := app.Run(context.Background(), []string{"view", "browse"})
	require.EqualError(t, err, "Unauthorized")
}

func TestLogoutAndUsage(t *testing.T) {
	app, out, store := newTestApp(t, "")
	require.NoError(t, store.Save("tok"))

	require.NoError(t, app.Run(context.Background(), []string{"logout"}))
	assert.Contains(t, out.String(), "Logged out.")
	_, err := store.Load()
	assert.ErrorIs(t, err, client.ErrNoToken)

	assert.ErrorIs(t, app.Run(context.Background(), nil), errUsage)
	assert.ErrorIs(t, app.Run(context.Background(), []string{"frobnicate"}), errUsage)
	assert.ErrorIs(t, app.Run(context.Background(), []string{"view"}), errUsage)
}

func TestView_RejectsUnknownChoices(t *testing.T) {
	app, out, _ := newTestApp(t, "")

	err := app.Run(context.Background(), []string{"view", "browse", "-difficulty", "hard"})
	require.ErrorIs(t, err, errUsage)
	assert.ErrorIs(t, err, view.ErrUnknownChoice)
	assert.Contains(t, err.Error(), "Easy, Medium, Hard")

	err = app.Run(context.Background(), []string{"view", "browse", "-category", "Gaming"})
	require.ErrorIs(t, err, errUsage)
	assert.ErrorIs(t, err, view.ErrUnknownChoice)
	assert.Empty(t, out.String())
}

func TestMenu_FollowsRole(t *testing.T) {
	app, out, _ := newTestApp(t, "")
	require.NoError(t, app.Run(context.Background(), []string{"menu"}))
	assert.Contains(t, out.String(), "Browse Problems")
	assert.NotContains(t, out.String(), "Analytics")

	stubPassword(t, "pw")
	app, out, _ = newTestApp(t, "acme\n")
	require.NoError(t, app.Run(context.Background(), []string{"login"}))
	out.Reset()
	require.NoError(t, app.Run(context.Background(), []string{"menu"}))
	assert.Contains(t, out.String(), "analytics")
	assert.Contains(t, out.String(), "Analytics")
	assert.NotContains(t, out.String(), "Browse Problems")
}

func TestForm_IsFilledButNotSent(t *testing.T) {
	app, out, _ := newTestApp(t, "Alex Chen\nSecurity Engineer\nBreaks things\nGo, Rust\ny\n")

	require.NoError(t, app.Run(context.Background(), []string{"form", "profile"}))
	assert.Contains(t, out.String(), "Edit Profile")
	assert.Contains(t, out.String(), "Security Engineer")
	assert.Contains(t, out.String(), "nothing was sent to the server")

	assert.ErrorIs(t, app.Run(context.Background(), []string{"form"}), errUsage)
	assert.ErrorIs(t, app.Run(context.Background(), []string{"form", "invoice"}), errUsage)
}
