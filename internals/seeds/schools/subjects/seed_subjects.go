package subjects

import (
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"presensiku_backend/internals/constants"
	"presensiku_backend/internals/features/school/subjects/model"
)

type ScheduleSeed struct {
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type SubjectSeed struct {
	Code      string         `json:"code"`
	Name      string         `json:"name"`
	Room      string         `json:"room"`
	Schedules []ScheduleSeed `json:"schedules"`
}

func SeedSubjectsFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Membaca file subject:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	var inputs []SubjectSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return err
	}

	for _, data := range inputs {
		var existing model.SubjectModel
		if err := db.Where("subject_code = ?", data.Code).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Subject '%s' sudah ada, dilewati.", data.Code)
			continue
		}

		subject := model.SubjectModel{
			SubjectCode: data.Code,
			SubjectName: data.Name,
			SubjectRoom: data.Room,
		}
		for _, s := range data.Schedules {
			if !constants.IsValidDay(s.DayOfWeek) {
				log.Printf("❌ Hari '%s' pada subject '%s' tidak valid, slot dilewati.", s.DayOfWeek, data.Code)
				continue
			}
			subject.SubjectSchedules = append(subject.SubjectSchedules, model.SubjectScheduleModel{
				SubjectScheduleDayOfWeek: s.DayOfWeek,
				SubjectScheduleStartTime: s.StartTime,
				SubjectScheduleEndTime:   s.EndTime,
			})
		}

		if err := db.Create(&subject).Error; err != nil {
			log.Printf("❌ Gagal insert subject '%s': %v", data.Code, err)
		} else {
			log.Printf("✅ Berhasil insert subject '%s' (%d slot)", data.Code, len(subject.SubjectSchedules))
		}
	}
	return nil
}
