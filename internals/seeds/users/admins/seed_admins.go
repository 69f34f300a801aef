package admins

import (
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/users/auth/model"
	authService "presensiku_backend/internals/features/users/auth/service"
)

type AdminSeed struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

func SeedAdminsFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Membaca file admin:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	var inputs []AdminSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return err
	}

	for _, data := range inputs {
		var existing model.AdminModel
		if err := db.Where("admin_username = ?", data.Username).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Admin '%s' sudah ada, dilewati.", data.Username)
			continue
		}

		hash, err := authService.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Username, err)
			continue
		}

		admin := model.AdminModel{
			AdminUsername:     data.Username,
			AdminPasswordHash: hash,
			AdminFullName:     data.FullName,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Printf("❌ Gagal insert admin '%s': %v", data.Username, err)
		} else {
			log.Printf("✅ Berhasil insert admin '%s'", data.Username)
		}
	}
	return nil
}
