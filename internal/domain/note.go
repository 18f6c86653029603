package domain

import "time"

// Note is a free-text observation about a member, optionally tied to a PC.
// Resolving a note clears Active; notes are never hard-deleted.
type Note struct {
	ID            string    `json:"id"`
	Content       string    `json:"content"`
	MemberID      int       `json:"memberId"`
	MemberAccount string    `json:"memberAccount,omitempty"`
	PCName        string    `json:"pcName,omitempty"`
	Active        bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NotePage is one page of a filtered note listing.
type NotePage struct {
	Notes []Note `json:"notes"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}
