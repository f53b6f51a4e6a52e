package entities

// VerifyReport summarises the participants imported for the test event.
type VerifyReport struct {
	Event        Event
	Total        int64
	Expected     int64
	Sample       []Participant
	EmailDomains []GroupCount
	TopProvinces []GroupCount
}

// Mismatch is true when the imported row count differs from the expected one.
func (r *VerifyReport) Mismatch() bool {
	return r.Total != r.Expected
}

// CleanupResult describes the outcome of a cleanup run.
type CleanupResult struct {
	Event     Event
	Total     int64 // participants counted before the prompt
	Deleted   int64
	Cancelled bool
}
