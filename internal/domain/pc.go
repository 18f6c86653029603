package domain

// PC status values as reported by the backend.
const (
	PCStatusAvailable   = "available"
	PCStatusInUse       = "in_use"
	PCStatusOffline     = "offline"
	PCStatusMaintenance = "maintenance"
)

// PC is one seat of the cafe floor.
type PC struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Status               string `json:"status"`
	CurrentMemberID      int    `json:"currentMemberId,omitempty"`
	CurrentMemberAccount string `json:"currentMemberAccount,omitempty"`
	TimeLeft             string `json:"timeLeft,omitempty"`
	HasNotes             bool   `json:"hasNotes"`
	HasActiveTab         bool   `json:"hasActiveTab"`
}

// Occupant returns a provisional reference to the member currently using the
// PC. The second return is false when the PC is not in use by a known member.
func (p PC) Occupant() (MemberRef, bool) {
	if p.Status != PCStatusInUse || p.CurrentMemberID == 0 {
		return MemberRef{}, false
	}
	account := p.CurrentMemberAccount
	if account == "" {
		account = "unknown"
	}
	return MemberRef{ID: p.CurrentMemberID, Account: account, Provisional: true}, true
}
