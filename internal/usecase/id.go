package usecase

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// NewLeadID generates a lead id of the form LEAD-<epoch-millis>-<0000-9999>.
// Two creations in the same millisecond can collide with probability 1/10000
// and nothing checks the store for duplicates; at inbound-inquiry volume that
// gap is accepted, not eliminated.
func NewLeadID() string {
	return fmt.Sprintf("LEAD-%d-%04d", time.Now().UnixMilli(), rand.IntN(10000))
}
