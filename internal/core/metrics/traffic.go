// Package metrics 实现子通道流量统计
//
// TrafficCounter 跟踪整条连接以及每个子通道收发的字节数。
// 使用原子操作实现并发安全的计数器。
package metrics

import (
	"sync"
	"sync/atomic"

	"github.com/dep2p/go-subchannel/pkg/types"
)

// TrafficCounter 流量计数器
type TrafficCounter struct {
	// 全局计数器（使用 atomic）
	totalIn  atomic.Int64
	totalOut atomic.Int64

	// 子通道级计数器
	mu  sync.RWMutex
	in  map[types.SubchannelID]*atomic.Int64
	out map[types.SubchannelID]*atomic.Int64
}

// NewTrafficCounter 创建新的 TrafficCounter
func NewTrafficCounter() *TrafficCounter {
	return &TrafficCounter{
		in:  make(map[types.SubchannelID]*atomic.Int64),
		out: make(map[types.SubchannelID]*atomic.Int64),
	}
}

// LogRecv 记录指定子通道收到的字节数
func (c *TrafficCounter) LogRecv(id types.SubchannelID, n int64) {
	c.totalIn.Add(n)
	c.counter(c.in, id).Add(n)
}

// LogSent 记录指定子通道发出的字节数
func (c *TrafficCounter) LogSent(id types.SubchannelID, n int64) {
	c.totalOut.Add(n)
	c.counter(c.out, id).Add(n)
}

// Totals 返回整条连接的收/发字节总数
func (c *TrafficCounter) Totals() (in, out int64) {
	return c.totalIn.Load(), c.totalOut.Load()
}

// ForSubchannel 返回指定子通道的收/发字节数
func (c *TrafficCounter) ForSubchannel(id types.SubchannelID) (in, out int64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if ctr, ok := c.in[id]; ok {
		in = ctr.Load()
	}
	if ctr, ok := c.out[id]; ok {
		out = ctr.Load()
	}
	return in, out
}

// Remove 移除指定子通道的计数器
//
// 子通道关闭后调用，全局总数保留。
func (c *TrafficCounter) Remove(id types.SubchannelID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.in, id)
	delete(c.out, id)
}

// Reset 清零所有计数器
func (c *TrafficCounter) Reset() {
	c.totalIn.Store(0)
	c.totalOut.Store(0)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.in = make(map[types.SubchannelID]*atomic.Int64)
	c.out = make(map[types.SubchannelID]*atomic.Int64)
}

// counter 返回指定子通道的计数器，不存在时创建
func (c *TrafficCounter) counter(m map[types.SubchannelID]*atomic.Int64, id types.SubchannelID) *atomic.Int64 {
	c.mu.RLock()
	ctr, ok := m[id]
	c.mu.RUnlock()
	if ok {
		return ctr
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if ctr, ok = m[id]; ok {
		return ctr
	}
	ctr = new(atomic.Int64)
	m[id] = ctr
	return ctr
}
