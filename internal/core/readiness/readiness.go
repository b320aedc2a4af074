// Package readiness 实现主通道就绪的一次性广播信号
//
// 底层多路复用连接只会就绪一次（成功或失败），所有端点共享同一个
// 信号：任何在结算前后注册的等待者都观察到同一个结果，且只观察一次。
package readiness

import (
	"context"
	"sync"

	"github.com/dep2p/go-subchannel/pkg/lib/log"
)

var logger = log.Logger("core/readiness")

// Signal 一次性就绪信号
//
// 三种状态：等待中、就绪、失败。首次结算生效，后续结算为空操作。
// 通过关闭通道广播结算结果，等待者任意多个。
type Signal struct {
	once sync.Once
	done chan struct{}
	err  error
}

// NewSignal 创建未结算的就绪信号
func NewSignal() *Signal {
	return &Signal{
		done: make(chan struct{}),
	}
}

// Ready 以成功结算信号
//
// 仅首次结算生效。
func (s *Signal) Ready() {
	s.settle(nil)
}

// Fail 以失败结算信号
//
// err 会原样传播给所有等待者。仅首次结算生效。
func (s *Signal) Fail(err error) {
	s.settle(err)
}

func (s *Signal) settle(err error) {
	s.once.Do(func() {
		s.err = err
		// err 先于 close 写入，等待者经由通道关闭建立 happens-before
		close(s.done)
		if err != nil {
			logger.Warn("主通道就绪失败", "error", err)
		} else {
			logger.Debug("主通道已就绪")
		}
	})
}

// Wait 阻塞直到信号结算或 ctx 结束
//
// 信号成功结算返回 nil；失败结算返回结算时的错误；
// ctx 先结束则返回 ctx.Err()。结算后调用立即返回。
func (s *Signal) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return s.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Settled 检查信号是否已结算
func (s *Signal) Settled() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Err 返回结算错误
//
// 未结算或成功结算时返回 nil。
func (s *Signal) Err() error {
	if !s.Settled() {
		return nil
	}
	return s.err
}
