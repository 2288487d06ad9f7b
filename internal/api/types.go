package api

// User is a user record as returned by the admin service.
type User struct {
	ID           string `json:"user_id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	TokenValid   bool   `json:"token_valid"`
	TokenExpires string `json:"token_expires"`
	HistoryCount int    `json:"history_count"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// CreatedUser is the admin service's response to a create-user request.
type CreatedUser struct {
	ID        string `json:"user_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// TokenValidation is the result of a validate-token request.
type TokenValidation struct {
	Valid bool  `json:"valid"`
	User  *User `json:"user,omitempty"`
}

// RefreshedToken is the result of a refresh-token request.
type RefreshedToken struct {
	NewToken  string `json:"new_token"`
	ExpiresAt string `json:"expires_at"`
}

// QAEntry is one question/answer pair from a user's history.
// Timestamp stays a string: the service has emitted both ISO timestamps and
// free-form values, and rendering decides how to show them.
type QAEntry struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Timestamp string `json:"timestamp"`
}

// AddQAResult is the admin service's response to an add-qa request.
type AddQAResult struct {
	TotalHistoryItems int `json:"total_history_items"`
}

// HistoryPage is a page of a user's Q/A history.
type HistoryPage struct {
	History    []QAEntry `json:"history"`
	TotalCount int       `json:"total_count"`
}

// UserPage is a page of the user listing.
type UserPage struct {
	Users      []User `json:"users"`
	TotalCount int    `json:"total_count"`
}

// DeletedUser identifies the user removed by a delete request.
type DeletedUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DeleteUserResult is the admin service's response to a delete request.
type DeleteUserResult struct {
	DeletedUser *DeletedUser `json:"deleted_user,omitempty"`
}

// Answer is the agent service's response to a question.
type Answer struct {
	Answer    string `json:"answer"`
	DocID     string `json:"doc_id,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// Document is a document known to the agent service.
type Document struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
}

// DocumentList is the agent service's document listing.
type DocumentList struct {
	Documents []Document `json:"documents"`
}

// UploadResult is the agent service's response to a document upload.
type UploadResult struct {
	FilePath string `json:"file_path"`
	Status   string `json:"status"`
}

// DeleteDocumentResult is the agent service's response to a document deletion.
type DeleteDocumentResult struct {
	Status string `json:"status"`
}

// Summary is a generated document summary.
type Summary struct {
	Summary string `json:"summary"`
}

// Topics is the list of topics extracted from a document.
type Topics struct {
	Topics []string `json:"topics"`
}
