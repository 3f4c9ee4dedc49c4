// Package lock serializes booking attempts that target the same doctor-day or
// room-day, so that two concurrent creates cannot both pass validation
// against a stale view and double-book.
package lock

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

var ErrLockNotAcquired = errors.New("booking lock not acquired")

// Locker guards a validate-then-write critical section. Keys must identify
// every resource the booking contends on (doctor day, room day).
type Locker interface {
	WithLock(ctx context.Context, keys []string, fn func(ctx context.Context) error) error
}

func DoctorDayKey(doctorID int64, date time.Time) string {
	return fmt.Sprintf("lock:doctor:%d:%s", doctorID, date.Format("2006-01-02"))
}

func RoomDayKey(roomID int64, date time.Time) string {
	return fmt.Sprintf("lock:room:%d:%s", roomID, date.Format("2006-01-02"))
}

// KeyedMutexLocker is the single-process implementation: one mutex per key.
// Keys are locked in sorted order so two bookings contending on the same
// doctor and room pair cannot deadlock.
type KeyedMutexLocker struct {
	mu      sync.Mutex
	mutexes map[string]*sync.Mutex
}

func NewKeyedMutexLocker() *KeyedMutexLocker {
	return &KeyedMutexLocker{
		mutexes: make(map[string]*sync.Mutex),
	}
}

func (l *KeyedMutexLocker) WithLock(ctx context.Context, keys []string, fn func(ctx context.Context) error) error {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)

	for _, key := range sorted {
		l.forKey(key).Lock()
	}
	defer func() {
		for i := len(sorted) - 1; i >= 0; i-- {
			l.forKey(sorted[i]).Unlock()
		}
	}()

	return fn(ctx)
}

func (l *KeyedMutexLocker) forKey(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.mutexes[key]
	if !ok {
		m = &sync.Mutex{}
		l.mutexes[key] = m
	}
	return m
}
