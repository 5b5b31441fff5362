package memory

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// TurnGuard serializes conversation processing per diary: at most one
// turn (or seeding pass) may be in flight for a given diary at a time.
// Entries expire so a crashed request cannot wedge a diary forever.
type TurnGuard struct {
	cache *cache.Cache
}

func NewTurnGuard() *TurnGuard {
	// Expiration is a backstop; the normal path releases explicitly.
	c := cache.New(2*time.Minute, 5*time.Minute)
	return &TurnGuard{
		cache: c,
	}
}

// Acquire reserves the diary. Returns false when a turn is already in flight.
func (g *TurnGuard) Acquire(diaryId uint) bool {
	key := fmt.Sprintf("diary:%d", diaryId)
	err := g.cache.Add(key, struct{}{}, cache.DefaultExpiration)
	return err == nil
}

func (g *TurnGuard) Release(diaryId uint) {
	g.cache.Delete(fmt.Sprintf("diary:%d", diaryId))
}
