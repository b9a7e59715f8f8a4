package constants

// Token lifecycle per jenis entitas.
//
// Kosakata status TIDAK seragam di seluruh aplikasi: entitas orang
// (teacher/parent/student) dan assignment memakai "Archived", sedangkan
// subject dan grade memakai "Archive". Restore SELALU mengembalikan ke
// "Live" untuk semua entitas.
const (
	StatusLive = "Live"

	// Orang + assignment
	StatusArchived = "Archived"

	// Subject + grade
	StatusArchive = "Archive"
)

var (
	PersonStatuses   = []string{StatusLive, StatusArchived}
	AcademicStatuses = []string{StatusLive, StatusArchive}
)

func IsPersonStatus(s string) bool {
	return s == StatusLive || s == StatusArchived
}

func IsAcademicStatus(s string) bool {
	return s == StatusLive || s == StatusArchive
}
