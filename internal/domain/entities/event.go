package entities

// Event is a row of the kegiatan table. Only the columns this tool reads
// are mapped.
type Event struct {
	ID        uint
	Name      string
	Reference string // nomor_surat, unique
}
