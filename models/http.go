package models

import "strings"

// Credentials carries the raw registration or login payload submitted by
// a client. The plaintext password never leaves the service layer: it is
// hashed at registration and compared against the stored digest at login.
type Credentials struct {
	// Email identifies the account. Normalized (trimmed, lowercased)
	// before any lookup or insert.
	Email string `json:"email"`

	// Password is the plaintext password as submitted. Never persisted
	// and never serialized back to the client.
	Password string `json:"password"`

	// FirstName is required at registration, ignored at login.
	FirstName string `json:"firstName"`

	// LastName is required at registration, ignored at login.
	LastName string `json:"lastName"`
}

// Normalize trims surrounding whitespace from every field and lowercases
// the email so that lookups and the unique constraint operate on a
// canonical form.
func (c *Credentials) Normalize() {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
}

// IdeaInput is the client-supplied payload for creating or updating an
// idea. Ownership is never taken from the payload: the service forces
// OwnerID from the authenticated identity, so a forged ownerId field in
// the request body has no effect.
type IdeaInput struct {
	Title                  string     `json:"title"`
	Description            string     `json:"description"`
	Problem                string     `json:"problem"`
	Solution               string     `json:"solution"`
	TargetMarket           string     `json:"targetMarket"`
	UniqueValueProposition string     `json:"uniqueValueProposition"`
	BusinessModel          string     `json:"businessModel"`
	Competitors            string     `json:"competitors"`
	Status                 IdeaStatus `json:"status"`
}

// Apply copies the input fields onto idea, leaving IdeaID, OwnerID, and
// the store-assigned timestamps untouched.
func (in IdeaInput) Apply(idea *Idea) {
	idea.Title = in.Title
	idea.Description = in.Description
	idea.Problem = in.Problem
	idea.Solution = in.Solution
	idea.TargetMarket = in.TargetMarket
	idea.UniqueValueProposition = in.UniqueValueProposition
	idea.BusinessModel = in.BusinessModel
	idea.Competitors = in.Competitors
	idea.Status = in.Status
}

// Pagination defaults applied by [IdeaFilter.Normalize].
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// IdeaFilter represents search criteria for querying a user's ideas.
// Listing is always scoped to the owner: OwnerID is populated from the
// authenticated identity, never from client input.
type IdeaFilter struct {
	// OwnerID restricts the result set to ideas owned by this user.
	// Required - there is no cross-user listing.
	OwnerID int64

	// Page is the 1-based page number.
	Page int

	// Limit is the page size.
	Limit int

	// Status, when non-empty, narrows the result to an exact status match.
	Status IdeaStatus

	// Search, when non-empty, narrows the result to ideas whose title or
	// description contains the term, case-insensitively.
	Search string
}

// Normalize replaces non-positive pagination values with the defaults.
func (f *IdeaFilter) Normalize() {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
}

// Offset returns the number of rows to skip for the current page.
func (f IdeaFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
