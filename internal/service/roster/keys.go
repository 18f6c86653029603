package roster

import "time"

// Cache keys for backend snapshots. TTLs are short: the push channel usually
// invalidates them first, the TTL only bounds staleness when it is down.
const (
	keyMembers = "roster:members"
	keyPCs     = "roster:pcs"
)

var cacheTTL = 30 * time.Second
