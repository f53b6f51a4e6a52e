package database

const (
	findEventByReferenceQuery = `SELECT id, nama_kegiatan, nomor_surat FROM kegiatan WHERE nomor_surat = ?`

	countParticipantsQuery = `SELECT COUNT(*) AS total FROM presensi WHERE event_id = ?`

	sampleParticipantsQuery = `SELECT id, event_id, nama_lengkap, email, unit_kerja, provinsi, nomor_sertifikat
FROM presensi
WHERE event_id = ?
ORDER BY id
LIMIT ?`

	// %s is the dialect's email domain expression.
	emailDomainsQuery = `SELECT %s AS email_domain, COUNT(*) AS total
FROM presensi
WHERE event_id = ?
GROUP BY email_domain
ORDER BY total DESC, email_domain`

	topProvincesQuery = `SELECT provinsi, COUNT(*) AS total
FROM presensi
WHERE event_id = ?
GROUP BY provinsi
ORDER BY total DESC, provinsi
LIMIT ?`

	deleteParticipantsQuery = `DELETE FROM presensi WHERE event_id = ?`
	deleteEventQuery        = `DELETE FROM kegiatan WHERE id = ?`
)
