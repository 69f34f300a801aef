package seeds

import (
	"gorm.io/gorm"

	admins "presensiku_backend/internals/seeds/users/admins"
	students "presensiku_backend/internals/seeds/schools/students"
	subjects "presensiku_backend/internals/seeds/schools/subjects"
)

// Run menjalankan semua seed. Idempotent: baris yang sudah ada dilewati.
func Run(db *gorm.DB) error {
	if err := admins.SeedAdminsFromJSON(db, "internals/seeds/users/admins/data_admins.json"); err != nil {
		return err
	}
	if err := subjects.SeedSubjectsFromJSON(db, "internals/seeds/schools/subjects/data_subjects.json"); err != nil {
		return err
	}
	if err := students.SeedStudentsFromJSON(db, "internals/seeds/schools/students/data_students.json"); err != nil {
		return err
	}
	return nil
}
