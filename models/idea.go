package models

import "time"

// IdeaStatus describes where an idea sits in its review lifecycle.
type IdeaStatus string

const (
	StatusDraft     IdeaStatus = "draft"
	StatusSubmitted IdeaStatus = "submitted"
	StatusReviewed  IdeaStatus = "reviewed"
	StatusAccepted  IdeaStatus = "accepted"
	StatusRejected  IdeaStatus = "rejected"
)

// IsValid reports whether s is one of the known idea statuses.
func (s IdeaStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusReviewed, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// IdeaOwner is the owner summary embedded in every outbound idea: enough
// to show who the idea belongs to without exposing the full account.
type IdeaOwner struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Idea is a startup idea owned by exactly one user. Only the owner or an
// administrator may read, modify, or delete it.
type Idea struct {
	// IdeaID is the internal unique identifier of the idea,
	// assigned by the persistence layer.
	IdeaID int64 `json:"id"`

	// Title is a short headline for the idea.
	Title string `json:"title"`

	// Description is the long-form summary of the idea.
	Description string `json:"description"`

	// Problem states the problem the idea addresses.
	Problem string `json:"problem"`

	// Solution states how the idea solves the problem.
	Solution string `json:"solution"`

	// TargetMarket names the intended audience.
	TargetMarket string `json:"targetMarket"`

	// UniqueValueProposition states what sets the idea apart.
	UniqueValueProposition string `json:"uniqueValueProposition"`

	// BusinessModel states how the idea generates revenue.
	BusinessModel string `json:"businessModel"`

	// Competitors lists known competing offerings.
	Competitors string `json:"competitors"`

	// Status is the idea's position in the review lifecycle.
	Status IdeaStatus `json:"status"`

	// OwnerID references the owning user. Set from the authenticated
	// identity at creation time and immutable afterwards.
	OwnerID int64 `json:"ownerId"`

	// Owner carries the owner's display fields, joined in by read paths
	// and attached by the service after mutations.
	Owner *IdeaOwner `json:"owner,omitempty"`

	// CreatedAt is the timestamp when the idea was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed by the persistence layer on every update.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Idea model.
func (i Idea) TableName() string {
	return "ideas"
}
