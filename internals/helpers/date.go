package helper

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const DateLayout = "2006-01-02"

// ParseDate menerima tanggal kalender polos (tanpa timezone) format YYYY-MM-DD.
// Seluruh kolom DATE dinormalisasi ke UTC midnight supaya perbandingan konsisten.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
	}
	return t, nil
}

// DayName mengembalikan nama hari Gregorian dari tanggal (Monday..Sunday).
func DayName(date time.Time) string {
	return date.Weekday().String()
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
