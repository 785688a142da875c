package usecase

import (
	"sync"
	"time"
)

// BotScheduler holds at most one pending bot move per game.
type BotScheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewBotScheduler() *BotScheduler {
	return &BotScheduler{
		timers: make(map[string]*time.Timer),
	}
}

// Schedule runs fn after delay unless the game's move is cancelled first.
// A move already pending for gameID is replaced.
func (that *BotScheduler) Schedule(gameID string, delay time.Duration, fn func()) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if pending, ok := that.timers[gameID]; ok {
		pending.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		that.mu.Lock()
		if that.timers[gameID] == timer {
			delete(that.timers, gameID)
		}
		that.mu.Unlock()

		fn()
	})

	that.timers[gameID] = timer
}

// Cancel reports whether a pending move was stopped before it fired.
func (that *BotScheduler) Cancel(gameID string) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	timer, ok := that.timers[gameID]
	if !ok {
		return false
	}

	delete(that.timers, gameID)

	return timer.Stop()
}

func (that *BotScheduler) pending(gameID string) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	_, ok := that.timers[gameID]

	return ok
}

// Stop cancels every pending move.
func (that *BotScheduler) Stop() {
	that.mu.Lock()
	defer that.mu.Unlock()

	for gameID, timer := range that.timers {
		timer.Stop()
		delete(that.timers, gameID)
	}
}
