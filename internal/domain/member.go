package domain

// Member is a full member-directory record.
type Member struct {
	ID        int    `json:"memberId"`
	Account   string `json:"memberAccount"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Balance   string `json:"balance,omitempty"`
	Points    string `json:"points,omitempty"`
	Active    bool   `json:"active"`
}

// Ref converts a directory record into the minimal identity a tab session
// works with.
func (m Member) Ref() MemberRef {
	return MemberRef{ID: m.ID, Account: m.Account}
}

// MemberRef is the identity a tab is opened against. Provisional refs are
// synthesized from PC occupancy data and carry no profile fields, so callers
// cannot mistake them for a loaded Member.
type MemberRef struct {
	ID          int    `json:"memberId"`
	Account     string `json:"memberAccount"`
	Provisional bool   `json:"provisional,omitempty"`
}

// MemberRanking is one row of the spend leaderboard for a timeframe.
type MemberRanking struct {
	Rank       int    `json:"rank"`
	MemberID   int    `json:"memberId"`
	Account    string `json:"memberAccount"`
	TotalSpent int64  `json:"totalSpent"`
	Sessions   int    `json:"sessions,omitempty"`
}
