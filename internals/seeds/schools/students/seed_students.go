package students

import (
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/students/model"
	helper "presensiku_backend/internals/helpers"
)

type StudentSeed struct {
	StudentNumber string `json:"student_number"`
	Name          string `json:"name"`
	Section       string `json:"section"`
	YearLevel     string `json:"year_level"`
}

func SeedStudentsFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Membaca file murid:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	var inputs []StudentSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return err
	}

	for _, data := range inputs {
		if !helper.IsValidStudentNumber(data.StudentNumber) {
			log.Printf("❌ Nomor induk '%s' tidak valid, dilewati.", data.StudentNumber)
			continue
		}

		var existing model.StudentModel
		if err := db.Where("student_number = ?", data.StudentNumber).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Murid '%s' sudah ada, dilewati.", data.StudentNumber)
			continue
		}

		student := model.StudentModel{
			StudentNumber:    data.StudentNumber,
			StudentName:      data.Name,
			StudentSection:   data.Section,
			StudentYearLevel: data.YearLevel,
			StudentIsActive:  true,
		}
		if err := db.Create(&student).Error; err != nil {
			log.Printf("❌ Gagal insert murid '%s': %v", data.StudentNumber, err)
		} else {
			log.Printf("✅ Berhasil insert murid '%s'", data.StudentNumber)
		}
	}
	return nil
}
