package lock

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestKeyedMutexLocker_SerializesSameKey(t *testing.T) {
	locker := NewKeyedMutexLocker()
	key := DoctorDayKey(1, time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC))

	var inside, maxInside int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = locker.WithLock(context.Background(), []string{key}, func(ctx context.Context) error {
				mu.Lock()
				inside++
				if inside > maxInside {
					maxInside = inside
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	if maxInside != 1 {
		t.Errorf("critical section entered concurrently %d times", maxInside)
	}
}

func TestKeyedMutexLocker_ReversedKeyOrderDoesNotDeadlock(t *testing.T) {
	locker := NewKeyedMutexLocker()
	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	doctorKey := DoctorDayKey(1, date)
	roomKey := RoomDayKey(2, date)

	done := make(chan struct{})
	go func() {
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_ = locker.WithLock(context.Background(), []string{doctorKey, roomKey}, func(ctx context.Context) error {
					return nil
				})
			}()
			go func() {
				defer wg.Done()
				_ = locker.WithLock(context.Background(), []string{roomKey, doctorKey}, func(ctx context.Context) error {
					return nil
				})
			}()
		}
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("lockers deadlocked on reversed key order")
	}
}

func TestDayKeys(t *testing.T) {
	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

	if got := DoctorDayKey(7, date); got != "lock:doctor:7:2026-09-07" {
		t.Errorf("unexpected doctor key %s", got)
	}
	if got := RoomDayKey(3, date); got != "lock:room:3:2026-09-07" {
		t.Errorf("unexpected room key %s", got)
	}
}
