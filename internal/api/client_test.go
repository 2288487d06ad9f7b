package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteErrorDetailFromBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "email already registered"})
	}))
	defer srv.Close()

	admin := NewAdmin(srv.URL, time.Second)
	defer admin.Close()

	_, err := admin.CreateUser(context.Background(), "jane@example.com", "Jane", 24)
	require.Error(t, err)

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusBadRequest, remote.StatusCode)
	assert.Equal(t, "email already registered", remote.Detail)
}

func TestRemoteErrorFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	admin := NewAdmin(srv.URL, time.Second)
	defer admin.Close()

	_, err := admin.ListUsers(context.Background(), 50, 0)
	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), remote.Detail)
}

func TestNotFoundIsEmptyResultNotError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	admin := NewAdmin(srv.URL, time.Second)
	defer admin.Close()
	ctx := context.Background()

	user, err := admin.UserByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, user)

	byEmail, err := admin.UserByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, byEmail)

	deleted, err := admin.DeleteUser(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, deleted)

	refreshed, err := admin.RefreshToken(ctx, "nope", 24)
	require.NoError(t, err)
	assert.Nil(t, refreshed)

	page, err := admin.History(ctx, "nope", 100)
	require.NoError(t, err)
	assert.Nil(t, page)
}

func TestConnectionErrorNamesConfiguredAddress(t *testing.T) {
	// Reserve a port, then close it so nothing is listening.
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	admin := NewAdmin(addr, time.Second)
	defer admin.Close()

	_, err := admin.UserByID(context.Background(), "42")
	require.Error(t, err)

	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, addr, connErr.Addr)
	assert.Contains(t, err.Error(), addr)
}

func TestAdminRequestShapes(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotQuery  map[string][]string
		gotBody   map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotBody = nil
		if r.Body != nil {
			json.NewDecoder(r.Body).Decode(&gotBody)
		}
		w.Write([]byte("{}"))
	}))
	defer srv.Close()

	admin := NewAdmin(srv.URL, time.Second)
	defer admin.Close()
	ctx := context.Background()

	_, err := admin.CreateUser(ctx, "jane@example.com", "Jane", 72)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/admin/users/", gotPath)
	assert.Equal(t, "jane@example.com", gotBody["email"])
	assert.Equal(t, "Jane", gotBody["name"])
	assert.Equal(t, float64(72), gotBody["token_validity_hours"])

	_, err = admin.RefreshToken(ctx, "42", 48)
	require.NoError(t, err)
	assert.Equal(t, "/admin/users/42/refresh-token", gotPath)
	assert.Equal(t, []string{"48"}, gotQuery["token_validity_hours"])

	_, err = admin.AddQA(ctx, "42", "Q?", "A.")
	require.NoError(t, err)
	assert.Equal(t, "/admin/users/42/add-qa", gotPath)
	assert.Equal(t, "Q?", gotBody["question"])
	assert.Equal(t, "A.", gotBody["answer"])

	_, err = admin.History(ctx, "42", 20)
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/admin/users/42/history", gotPath)
	assert.Equal(t, []string{"20"}, gotQuery["limit"])

	_, err = admin.ListUsers(ctx, 10, 5)
	require.NoError(t, err)
	assert.Equal(t, "/admin/users/list", gotPath)
	assert.Equal(t, []string{"10"}, gotQuery["limit"])
	assert.Equal(t, []string{"5"}, gotQuery["skip"])

	_, err = admin.UserByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "/admin/users/by-email/jane@example.com", gotPath)
}

func TestRequestCarriesCorrelationID(t *testing.T) {
	var gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte("{}"))
	}))
	defer srv.Close()

	admin := NewAdmin(srv.URL, time.Second)
	defer admin.Close()

	_, err := admin.ListUsers(context.Background(), 50, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, gotRequestID)
}

func TestValidateTokenSendsBearerAndMapsNotFound(t *testing.T) {
	var gotAuth string
	status := http.StatusOK
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(status)
		if status == http.StatusOK {
			json.NewEncoder(w).Encode(TokenValidation{Valid: true, User: &User{Name: "Jane"}})
		}
	}))
	defer srv.Close()

	admin := NewAdmin(srv.URL, time.Second)
	defer admin.Close()
	ctx := context.Background()

	res, err := admin.ValidateToken(ctx, "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.True(t, res.Valid)

	// Unknown tokens answer 404; the client reports them as invalid.
	status = http.StatusNotFound
	res, err = admin.ValidateToken(ctx, "tok-unknown")
	require.NoError(t, err)
	assert.False(t, res.Valid)
}

func TestCreateUserDecodesAllFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"user_id":    "u-1",
			"email":      "jane@example.com",
			"name":       "Jane",
			"token":      "tok-abc",
			"expires_at": "2026-08-30T12:00:00Z",
		})
	}))
	defer srv.Close()

	admin := NewAdmin(srv.URL, time.Second)
	defer admin.Close()

	created, err := admin.CreateUser(context.Background(), "jane@example.com", "Jane", 24)
	require.NoError(t, err)
	assert.Equal(t, "u-1", created.ID)
	assert.Equal(t, "jane@example.com", created.Email)
	assert.Equal(t, "Jane", created.Name)
	assert.Equal(t, "tok-abc", created.Token)
	assert.Equal(t, "2026-08-30T12:00:00Z", created.ExpiresAt)
}

func TestErrorTaxonomyHelpers(t *testing.T) {
	unauthorized := &RemoteError{StatusCode: http.StatusUnauthorized, Detail: "bad token"}
	assert.True(t, unauthorized.Unauthorized())
	assert.False(t, unauthorized.TooLarge())

	tooLarge := &RemoteError{StatusCode: http.StatusRequestEntityTooLarge, Detail: "cap exceeded"}
	assert.True(t, tooLarge.TooLarge())

	wrapped := &ConnectionError{Addr: "http://localhost:8000", Err: errors.New("refused")}
	assert.Contains(t, wrapped.Error(), "http://localhost:8000")
	assert.ErrorContains(t, wrapped, "refused")
}
