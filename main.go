package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/google/uuid"

	"presensiku_backend/internals/configs"
	database "presensiku_backend/internals/databases"
	attendanceModel "presensiku_backend/internals/features/school/attendance/model"
	logModel "presensiku_backend/internals/features/school/attendance_logs/model"
	exemptionModel "presensiku_backend/internals/features/school/exemptions/model"
	studentModel "presensiku_backend/internals/features/school/students/model"
	subjectModel "presensiku_backend/internals/features/school/subjects/model"
	adminModel "presensiku_backend/internals/features/users/auth/model"
	middlewares "presensiku_backend/internals/middlewares"
	routes "presensiku_backend/internals/route"
	seeds "presensiku_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	// ⚙️ middleware performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// 🔎 Request-ID + timing
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	if err := database.DB.AutoMigrate(
		&adminModel.AdminModel{},
		&studentModel.StudentModel{},
		&subjectModel.SubjectModel{},
		&subjectModel.SubjectScheduleModel{},
		&exemptionModel.ExemptionModel{},
		&attendanceModel.AttendanceModel{},
		&logModel.AttendanceLogModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi: %v", err)
	}

	if configs.GetEnv("RUN_SEEDS") == "true" {
		if err := seeds.Run(database.DB); err != nil {
			log.Fatalf("❌ Gagal seeding: %v", err)
		}
	}

	// ✅ Routes
	routes.SetupRoutes(app, database.DB)

	// 🔒 timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
