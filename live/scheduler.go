package live

import (
	"sync"
	"time"

	"github.com/sourcegraph/conc"
)

// Task 一个已启动的周期任务
// Stop 同步取消：返回时回调要么从未在执行，要么已经执行完毕
type Task interface {
	Stop()
}

// Scheduler 周期任务调度，随直播状态启停
// 进入 live 时装载，离开 live 时保证释放
type Scheduler interface {
	Every(d time.Duration, fn func()) Task
}

type TickerScheduler struct{}

func NewScheduler() Scheduler {
	return TickerScheduler{}
}

func (TickerScheduler) Every(d time.Duration, fn func()) Task {
	t := &tickerTask{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
	t.wg.Go(func() {
		for {
			select {
			case <-t.done:
				return
			case <-t.ticker.C:
				fn()
			}
		}
	})
	return t
}

type tickerTask struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
	wg     conc.WaitGroup
}

func (t *tickerTask) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
	t.wg.Wait()
}
