package entities

// Participant represents one attendance row (presensi) of an event.
// Empty strings stand for NULL columns.
type Participant struct {
	ID                uint
	EventID           uint
	FullName          string
	Email             string
	Unit              string
	Province          string
	CertificateNumber string
}
