// file: internals/helpers/sqlerr.go
package helper

import "strings"

// IsDuplicateKey: deteksi pelanggaran unique constraint.
// Postgres: SQLSTATE 23505 / "duplicate key value violates unique constraint".
// SQLite (dipakai saat test): "UNIQUE constraint failed".
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "unique") ||
		strings.Contains(s, "23505")
}
