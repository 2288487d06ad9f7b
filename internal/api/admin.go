package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const adminPrefix = "/admin"

// AdminClient talks to the admin service, which owns the user, token and
// history lifecycle.
type AdminClient struct {
	c *Client
}

// NewAdmin creates a client for the admin service at baseURL.
func NewAdmin(baseURL string, timeout time.Duration) *AdminClient {
	return &AdminClient{c: newClient(baseURL, adminPrefix, "", timeout)}
}

// BaseURL returns the configured admin service address.
func (a *AdminClient) BaseURL() string { return a.c.BaseURL() }

// Close releases the underlying connection pool.
func (a *AdminClient) Close() { a.c.Close() }

type createUserRequest struct {
	Email              string `json:"email"`
	Name               string `json:"name"`
	TokenValidityHours int    `json:"token_validity_hours"`
}

// CreateUser creates a new user with a token valid for tokenHours.
func (a *AdminClient) CreateUser(ctx context.Context, email, name string, tokenHours int) (*CreatedUser, error) {
	var out CreatedUser
	req := createUserRequest{Email: email, Name: name, TokenValidityHours: tokenHours}
	if err := a.c.do(ctx, http.MethodPost, "/users/", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserByID retrieves a user by ID. Returns (nil, nil) if the user does not exist.
func (a *AdminClient) UserByID(ctx context.Context, id string) (*User, error) {
	var out User
	err := a.c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, nil, &out)
	if err != nil {
		return nil, notFoundToNil(err)
	}
	return &out, nil
}

// UserByEmail retrieves a user by email. Returns (nil, nil) if no user has
// that email.
func (a *AdminClient) UserByEmail(ctx context.Context, email string) (*User, error) {
	var out User
	err := a.c.do(ctx, http.MethodGet, "/users/by-email/"+url.PathEscape(email), nil, nil, &out)
	if err != nil {
		return nil, notFoundToNil(err)
	}
	return &out, nil
}

// ValidateToken checks a bearer token against the admin service. A 404 from
// the service is reported as an invalid token, matching how the service
// answers for tokens it has no record of.
func (a *AdminClient) ValidateToken(ctx context.Context, token string) (*TokenValidation, error) {
	var out TokenValidation
	err := a.c.withToken(token).do(ctx, http.MethodPost, "/users/validate-token", nil, nil, &out)
	if err != nil {
		if err := notFoundToNil(err); err != nil {
			return nil, err
		}
		return &TokenValidation{Valid: false}, nil
	}
	return &out, nil
}

// RefreshToken issues a new token for the user, valid for tokenHours.
// Returns (nil, nil) if the user does not exist.
func (a *AdminClient) RefreshToken(ctx context.Context, id string, tokenHours int) (*RefreshedToken, error) {
	query := url.Values{"token_validity_hours": {strconv.Itoa(tokenHours)}}
	var out RefreshedToken
	err := a.c.do(ctx, http.MethodPost, "/users/"+url.PathEscape(id)+"/refresh-token", query, nil, &out)
	if err != nil {
		return nil, notFoundToNil(err)
	}
	return &out, nil
}

type addQARequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AddQA appends a question/answer pair to the user's history.
// Returns (nil, nil) if the user does not exist.
func (a *AdminClient) AddQA(ctx context.Context, id, question, answer string) (*AddQAResult, error) {
	var out AddQAResult
	req := addQARequest{Question: question, Answer: answer}
	err := a.c.do(ctx, http.MethodPost, "/users/"+url.PathEscape(id)+"/add-qa", nil, req, &out)
	if err != nil {
		return nil, notFoundToNil(err)
	}
	return &out, nil
}

// History retrieves up to limit entries of the user's Q/A history.
// Returns (nil, nil) if the user does not exist.
func (a *AdminClient) History(ctx context.Context, id string, limit int) (*HistoryPage, error) {
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	var out HistoryPage
	err := a.c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id)+"/history", query, nil, &out)
	if err != nil {
		return nil, notFoundToNil(err)
	}
	return &out, nil
}

// DeleteUser removes a user. Returns (nil, nil) if the user does not exist.
func (a *AdminClient) DeleteUser(ctx context.Context, id string) (*DeleteUserResult, error) {
	var out DeleteUserResult
	err := a.c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil, &out)
	if err != nil {
		return nil, notFoundToNil(err)
	}
	return &out, nil
}

// ListUsers returns a page of users.
func (a *AdminClient) ListUsers(ctx context.Context, limit, skip int) (*UserPage, error) {
	query := url.Values{
		"limit": {strconv.Itoa(limit)},
		"skip":  {strconv.Itoa(skip)},
	}
	var out UserPage
	if err := a.c.do(ctx, http.MethodGet, "/users/list", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
