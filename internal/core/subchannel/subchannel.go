package subchannel

import (
	"fmt"
	"sync"

	"github.com/dep2p/go-subchannel/internal/core/metrics"
	pkgif "github.com/dep2p/go-subchannel/pkg/interfaces"
	"github.com/dep2p/go-subchannel/pkg/lib/log"
	"github.com/dep2p/go-subchannel/pkg/types"
)

var logger = log.Logger("core/subchannel")

// event 投递队列中的一个待投递事件
type event struct {
	data  []byte
	close bool
	err   error
}

// Subchannel 子通道状态机
//
// 对应用侧实现 pkgif.Subchannel 流接口，对管理器侧接收
// RemoteData/RemoteClose 事件。所有状态转移在互斥锁下原子执行，
// 协议回调在锁外按顺序投递。
type Subchannel struct {
	id       types.SubchannelID
	manager  pkgif.Manager
	hostAddr types.HostAddress
	peerAddr types.SubchannelAddress
	traffic  *metrics.TrafficCounter

	mu           sync.Mutex
	state        types.SubchannelState
	protocol     pkgif.StreamProtocol
	pendingData  [][]byte // 绑定协议前缓冲的入站数据
	pendingClose bool     // 绑定协议前收到的远端关闭
	pendingErr   error
	queue        []event // 绑定协议后的投递队列
	delivering   bool    // 投递循环占用标记，保证回调串行且有序
}

// 确保实现接口
var _ pkgif.Subchannel = (*Subchannel)(nil)

// Option 子通道构造选项
type Option func(*Subchannel)

// WithTraffic 启用流量统计
func WithTraffic(tc *metrics.TrafficCounter) Option {
	return func(s *Subchannel) {
		s.traffic = tc
	}
}

// New 创建 OPEN 状态的子通道
//
// id 由管理器分配（本地发起）或随远端 OPEN 事件到达（远端发起）。
func New(id types.SubchannelID, manager pkgif.Manager, hostAddr types.HostAddress, peerAddr types.SubchannelAddress, opts ...Option) *Subchannel {
	s := &Subchannel{
		id:       id,
		manager:  manager,
		hostAddr: hostAddr,
		peerAddr: peerAddr,
		state:    types.StateOpen,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID 返回子通道 ID
func (s *Subchannel) ID() types.SubchannelID {
	return s.id
}

// LocalAddr 返回连接地址（整条多路复用连接）
func (s *Subchannel) LocalAddr() types.HostAddress {
	return s.hostAddr
}

// RemoteAddr 返回子通道地址（连接内的这条流）
func (s *Subchannel) RemoteAddr() types.SubchannelAddress {
	return s.peerAddr
}

// State 返回当前状态
func (s *Subchannel) State() types.SubchannelState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ============================================================================
//                              本地输入（应用侧）
// ============================================================================

// Write 写入一个出站数据帧
//
// 载荷超过 types.MaxFrameLength 返回 ErrFrameTooLarge；
// CLOSING/CLOSED 状态返回 ErrAlreadyClosed。
func (s *Subchannel) Write(p []byte) (int, error) {
	if err := validateFrameLength(len(p)); err != nil {
		return 0, err
	}

	s.mu.Lock()
	if s.state != types.StateOpen {
		s.mu.Unlock()
		return 0, fmt.Errorf("write on subchannel %d: %w", s.id, ErrAlreadyClosed)
	}
	s.mu.Unlock()

	s.manager.SendData(s.id, p)
	if s.traffic != nil {
		s.traffic.LogSent(s.id, int64(len(p)))
	}
	return len(p), nil
}

// WriteSequence 拼接多段载荷后作为单帧写入
func (s *Subchannel) WriteSequence(iovec [][]byte) (int, error) {
	total := 0
	for _, p := range iovec {
		total += len(p)
	}
	buf := make([]byte, 0, total)
	for _, p := range iovec {
		buf = append(buf, p...)
	}
	return s.Write(buf)
}

// Close 发起本地关闭
//
// 发送关闭帧并进入 CLOSING，等待远端关闭帧完成双向关闭。
// CLOSING/CLOSED 状态返回 ErrAlreadyClosed。
func (s *Subchannel) Close() error {
	s.mu.Lock()
	if s.state != types.StateOpen {
		s.mu.Unlock()
		return fmt.Errorf("close on subchannel %d: %w", s.id, ErrAlreadyClosed)
	}
	s.state = types.StateClosing
	s.mu.Unlock()

	logger.Debug("本地关闭子通道", "id", s.id)
	s.manager.SendClose(s.id)
	return nil
}

// validateFrameLength 校验单帧载荷长度
func validateFrameLength(n int) error {
	if uint64(n) > types.MaxFrameLength {
		return fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, n, uint64(types.MaxFrameLength))
	}
	return nil
}

// ============================================================================
//                              远端输入（管理器侧）
// ============================================================================

// RemoteData 投递远端数据事件
//
// 已绑定协议时按分派顺序投递 DataReceived，未绑定时按序缓冲。
// CLOSED 状态拒绝投递（管理器契约违规）。
func (s *Subchannel) RemoteData(data []byte) {
	s.mu.Lock()
	if s.state == types.StateClosed {
		s.mu.Unlock()
		logger.Error("已关闭的子通道收到远端数据，拒绝投递", "id", s.id, "len", len(data))
		return
	}

	if s.traffic != nil {
		s.traffic.LogRecv(s.id, int64(len(data)))
	}

	if s.protocol == nil {
		s.pendingData = append(s.pendingData, data)
		s.mu.Unlock()
		return
	}

	s.queue = append(s.queue, event{data: data})
	s.deliverLocked()
}

// RemoteClose 投递远端关闭事件
//
// OPEN 状态先回发关闭帧再投递 ConnectionLost；CLOSING 状态只投递。
// 投递完成后通知管理器移除本子通道。CLOSED 状态拒绝投递。
func (s *Subchannel) RemoteClose() {
	s.mu.Lock()
	var echoClose bool
	switch s.state {
	case types.StateOpen:
		echoClose = true
	case types.StateClosing:
	default:
		s.mu.Unlock()
		logger.Error("已关闭的子通道收到远端关闭，拒绝投递", "id", s.id)
		return
	}
	s.state = types.StateClosed

	attached := s.protocol != nil
	if attached {
		s.queue = append(s.queue, event{close: true, err: ErrConnectionDone})
	} else {
		s.pendingClose = true
		s.pendingErr = ErrConnectionDone
	}
	s.mu.Unlock()

	if echoClose {
		s.manager.SendClose(s.id)
	}

	if attached {
		s.mu.Lock()
		s.deliverLocked()
	}

	logger.Debug("子通道已关闭", "id", s.id)
	s.manager.SubchannelClosed(s.id, s)
	if s.traffic != nil {
		s.traffic.Remove(s.id)
	}
}

// ============================================================================
//                              协议绑定
// ============================================================================

// SetProtocol 绑定应用协议（一次性操作）
//
// 绑定时先按原始顺序投递全部缓冲数据，再投递挂起的关闭通知。
// 重复绑定是内部不变量违规，直接 panic。
func (s *Subchannel) SetProtocol(p pkgif.StreamProtocol) {
	s.mu.Lock()
	if s.protocol != nil {
		s.mu.Unlock()
		panic(fmt.Sprintf("subchannel %d: protocol already attached", s.id))
	}
	s.protocol = p

	for _, d := range s.pendingData {
		s.queue = append(s.queue, event{data: d})
	}
	s.pendingData = nil
	if s.pendingClose {
		s.queue = append(s.queue, event{close: true, err: s.pendingErr})
		s.pendingClose = false
		s.pendingErr = nil
	}
	s.deliverLocked()
}

// deliverLocked 排空投递队列
//
// 调用方必须持有 s.mu；返回时锁已释放。回调在锁外执行，
// delivering 标记保证同一时刻只有一个投递循环，从而保持顺序：
// 数据严格先于其后的关闭投递。
func (s *Subchannel) deliverLocked() {
	if s.delivering {
		s.mu.Unlock()
		return
	}
	s.delivering = true
	for len(s.queue) > 0 {
		ev := s.queue[0]
		s.queue = s.queue[1:]
		p := s.protocol
		s.mu.Unlock()

		if ev.close {
			p.ConnectionLost(ev.err)
		} else {
			p.DataReceived(ev.data)
		}

		s.mu.Lock()
	}
	s.delivering = false
	s.mu.Unlock()
}

// ============================================================================
//                              流控中继
// ============================================================================

// 子通道自身不做任何缓冲或速率决策，只把两个方向的节流信号
// 原样转发给管理器，并带上自身标识，使每个子通道可被独立节流。

// PauseProducing 请求管理器暂停向本子通道投递入站数据
func (s *Subchannel) PauseProducing() {
	s.manager.SubchannelPauseProducing(s)
}

// ResumeProducing 请求管理器恢复向本子通道投递入站数据
func (s *Subchannel) ResumeProducing() {
	s.manager.SubchannelResumeProducing(s)
}

// StopProducing 请求管理器停止向本子通道投递入站数据
func (s *Subchannel) StopProducing() {
	s.manager.SubchannelStopProducing(s)
}

// RegisterProducer 向管理器登记本子通道的出站数据生产者
func (s *Subchannel) RegisterProducer(p pkgif.Producer, streaming bool) {
	s.manager.SubchannelRegisterProducer(s, p, streaming)
}

// UnregisterProducer 向管理器注销本子通道的出站数据生产者
func (s *Subchannel) UnregisterProducer() {
	s.manager.SubchannelUnregisterProducer(s)
}
