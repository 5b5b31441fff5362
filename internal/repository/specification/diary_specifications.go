package specification

import (
	"time"

	"gorm.io/gorm"
)

type ByID struct {
	ID uint
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

type ByDiaryID struct {
	DiaryID uint
}

func (s ByDiaryID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("diary_id = ?", s.DiaryID)
}

type OwnedByUser struct {
	UserID string
}

func (s OwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ByDate struct {
	Date time.Time
}

func (s ByDate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date = ?", s.Date.Format("2006-01-02"))
}

type ByYearMonth struct {
	Year  int
	Month time.Month
}

func (s ByYearMonth) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("YEAR(date) = ? AND MONTH(date) = ?", s.Year, int(s.Month))
}
