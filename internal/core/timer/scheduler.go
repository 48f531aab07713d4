package timer

import (
	"sync"
	"time"
)

// Task is a handle to a scheduled recurring callback.
type Task interface {
	Stop()
}

// Scheduler starts recurring callbacks.
type Scheduler interface {
	Every(interval time.Duration, fn func(time.Time)) Task
}

// TickerScheduler runs every task on its own goroutine driven by time.Ticker.
type TickerScheduler struct{}

// Every starts fn with the given period until the returned task is stopped.
func (TickerScheduler) Every(interval time.Duration, fn func(time.Time)) Task {
	task := &tickerTask{stopCh: make(chan struct{})}
	go task.run(interval, fn)
	return task
}

type tickerTask struct {
	stopCh chan struct{}
	once   sync.Once
}

// Stop never waits for the goroutine, so it is safe to call from fn itself.
func (task *tickerTask) Stop() {
	task.once.Do(func() {
		close(task.stopCh)
	})
}

func (task *tickerTask) run(interval time.Duration, fn func(time.Time)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-task.stopCh:
			return
		case tickTime := <-ticker.C:
			fn(tickTime)
		}
	}
}
