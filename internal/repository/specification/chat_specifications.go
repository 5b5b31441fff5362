package specification

import "gorm.io/gorm"

type WrittenBy struct {
	Role string
}

func (s WrittenBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("written_by = ?", s.Role)
}

// OrderByCreatedAsc sorts oldest first, with id as tiebreaker so turns
// written within the same second keep insertion order.
type OrderByCreatedAsc struct{}

func (s OrderByCreatedAsc) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC, id ASC")
}
