package models

// Response statuses used in every JSON envelope returned by the API.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// UserResponse is the envelope returned by the register and profile
// endpoints. The embedded user never carries the password digest.
type UserResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	User    User   `json:"user"`
}

// LoginResponse is the envelope returned by the login endpoint. Token is
// the compact JWS string the client must present in the Authorization
// header on subsequent requests.
type LoginResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// IdeaResponse is the envelope returned by single-idea endpoints.
type IdeaResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    Idea   `json:"data"`
}

// IdeaListResponse is the envelope returned by the idea listing endpoint.
type IdeaListResponse struct {
	Status     string     `json:"status"`
	Data       []Idea     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Pagination describes the window of a paged listing.
// Pages is always ceil(Total/Limit).
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// NewPagination computes the paging metadata for a listing result.
func NewPagination(page, limit int, total int64) Pagination {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}

// MessageResponse is the bare status/message envelope used when an
// operation has no payload to return, e.g. a successful deletion.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// FieldError is a single per-field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope returned for every failed request.
// Errors carries per-field validation messages when present.
type ErrorResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// HealthResponse is the envelope returned by the liveness endpoint.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
