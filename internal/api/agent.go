package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultSessionID scopes conversational context on the agent service.
// Kept stable so the server groups all questions from this client into one
// conversation.
const DefaultSessionID = "cli-session"

// AgentClient talks to the agent service, which answers questions and manages
// the document store.
type AgentClient struct {
	c         *Client
	sessionID string
}

// NewAgent creates a client for the agent service at baseURL. token may be
// empty; operations that need authentication then fail locally with
// ErrNoToken before any request is sent. An empty sessionID falls back to
// DefaultSessionID.
func NewAgent(baseURL, token, sessionID string, timeout time.Duration) *AgentClient {
	if sessionID == "" {
		sessionID = DefaultSessionID
	}
	return &AgentClient{
		c:         newClient(baseURL, "", token, timeout),
		sessionID: sessionID,
	}
}

// BaseURL returns the configured agent service address.
func (ag *AgentClient) BaseURL() string { return ag.c.BaseURL() }

// SessionID returns the session identifier attached to every question.
func (ag *AgentClient) SessionID() string { return ag.sessionID }

// HasToken reports whether a bearer token is configured.
func (ag *AgentClient) HasToken() bool { return ag.c.HasToken() }

// Close releases the underlying connection pool.
func (ag *AgentClient) Close() { ag.c.Close() }

func (ag *AgentClient) requireToken() error {
	if !ag.c.HasToken() {
		return ErrNoToken
	}
	return nil
}

// Health reports whether the agent service answers its health endpoint.
func (ag *AgentClient) Health(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return ag.c.do(ctx, http.MethodGet, "/health", nil, nil, nil) == nil
}

type askRequest struct {
	Question  string `json:"question"`
	SessionID string `json:"session_id"`
	DocID     string `json:"doc_id,omitempty"`
}

// Ask sends a question to the QA endpoint. docID narrows the question to one
// document; pass "" to ask across the whole store.
func (ag *AgentClient) Ask(ctx context.Context, question, docID string) (*Answer, error) {
	var out Answer
	req := askRequest{Question: question, SessionID: ag.sessionID, DocID: docID}
	if err := ag.c.do(ctx, http.MethodPost, "/agent/qa", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListDocuments returns the documents known to the agent service.
func (ag *AgentClient) ListDocuments(ctx context.Context) (*DocumentList, error) {
	if err := ag.requireToken(); err != nil {
		return nil, err
	}
	var out DocumentList
	if err := ag.c.do(ctx, http.MethodGet, "/docs", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadDocument uploads a local file for ingestion. A missing local file
// surfaces as an *fs.PathError before any request is sent; a server refusal
// for size surfaces as a RemoteError for which TooLarge reports true.
func (ag *AgentClient) UploadDocument(ctx context.Context, filePath string) (*UploadResult, error) {
	if err := ag.requireToken(); err != nil {
		return nil, err
	}
	var out UploadResult
	if err := ag.c.doMultipart(ctx, "/agent/docs", filePath, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDocument removes a document by filename. Returns (nil, nil) if the
// agent service has no such file.
func (ag *AgentClient) DeleteDocument(ctx context.Context, filename string) (*DeleteDocumentResult, error) {
	if err := ag.requireToken(); err != nil {
		return nil, err
	}
	var out DeleteDocumentResult
	err := ag.c.do(ctx, http.MethodDelete, "/agent/docs/"+url.PathEscape(filename), nil, nil, &out)
	if err != nil {
		return nil, notFoundToNil(err)
	}
	return &out, nil
}

// Summary generates a summary of roughly length words for a document.
// Returns (nil, nil) if the document does not exist.
func (ag *AgentClient) Summary(ctx context.Context, docID string, length int) (*Summary, error) {
	if err := ag.requireToken(); err != nil {
		return nil, err
	}
	query := url.Values{"length": {strconv.Itoa(length)}}
	var out Summary
	err := ag.c.do(ctx, http.MethodGet, "/agent/docs/"+url.PathEscape(docID)+"/summary", query, nil, &out)
	if err != nil {
		return nil, notFoundToNil(err)
	}
	return &out, nil
}

// Topics extracts topics for a document. Returns (nil, nil) if the document
// does not exist.
func (ag *AgentClient) Topics(ctx context.Context, docID string) (*Topics, error) {
	if err := ag.requireToken(); err != nil {
		return nil, err
	}
	var out Topics
	err := ag.c.do(ctx, http.MethodGet, "/agent/docs/"+url.PathEscape(docID)+"/topics", nil, nil, &out)
	if err != nil {
		return nil, notFoundToNil(err)
	}
	return &out, nil
}
