package entity

// StatusNew is the sentinel every lead starts with. It is also substituted
// whenever a stored status cell is empty, so older rows written before the
// status column existed still list as actionable.
const StatusNew = "New Lead"

// Lead is one inbound inquiry. ID and SubmittedAt are immutable once the row
// is appended; Status and Notes are the only fields mutated afterwards. There
// is no delete at the application layer.
//
// SubmittedAt is kept as the raw cell text. The backing store has no typed
// columns, and listing is the only place that needs to parse it.
type Lead struct {
	ID                 string   `json:"id"`
	SubmittedAt        string   `json:"submittedAt"`
	FullName           string   `json:"fullName"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone,omitempty"`
	BusinessName       string   `json:"businessName,omitempty"`
	ServiceInterest    string   `json:"serviceInterest"`
	Budget             string   `json:"budget,omitempty"`
	ProjectDescription string   `json:"projectDescription,omitempty"`
	ReferralSource     string   `json:"referralSource,omitempty"`
	Status             string   `json:"status"`
	Notes              []string `json:"notes"`
}

// Valid reports whether the row this lead came from holds a real record.
// Rows with an empty id or email are leftovers (manual edits, half-deleted
// lines) and are excluded from every listing.
func (l *Lead) Valid() bool {
	return l.ID != "" && l.Email != ""
}
