package endpoint

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dep2p/go-subchannel/internal/core/readiness"
	pkgif "github.com/dep2p/go-subchannel/pkg/interfaces"
	"github.com/dep2p/go-subchannel/pkg/types"
)

// pendingOpen 工厂登记前排队的入站子通道
type pendingOpen struct {
	sc       pkgif.Subchannel
	peerAddr types.SubchannelAddress
}

// ListenerEndpoint 子通道接受端点
//
// Listen 是一次性操作；接受入站子通道不设上限。工厂登记前
// 到达的入站 OPEN 事件按 FIFO 排队而不是丢弃，登记后按序连接。
type ListenerEndpoint struct {
	hostAddr types.HostAddress
	ready    *readiness.Signal
	used     atomic.Bool

	mu      sync.Mutex
	factory pkgif.ProtocolFactory
	pending []pendingOpen
}

// 确保实现接口
var _ pkgif.ServerEndpoint = (*ListenerEndpoint)(nil)

// NewListenerEndpoint 创建接受端点
func NewListenerEndpoint(hostAddr types.HostAddress, ready *readiness.Signal) *ListenerEndpoint {
	return &ListenerEndpoint{
		hostAddr: hostAddr,
		ready:    ready,
	}
}

// GotOpen 管理器投递一个入站 OPEN 事件
//
// 已登记工厂时立即连接；否则排队等待 Listen。
func (e *ListenerEndpoint) GotOpen(sc pkgif.Subchannel, peerAddr types.SubchannelAddress) {
	e.mu.Lock()
	factory := e.factory
	if factory == nil {
		e.pending = append(e.pending, pendingOpen{sc: sc, peerAddr: peerAddr})
		e.mu.Unlock()
		logger.Debug("入站子通道排队等待工厂", "addr", peerAddr)
		return
	}
	e.mu.Unlock()

	e.connect(factory, sc, peerAddr)
}

// Listen 登记协议工厂，开始接受入站子通道
//
// 挂起直到主通道就绪；就绪失败时原样返回失败原因。就绪后登记
// 工厂并按到达顺序连接所有排队的子通道。第二次调用返回
// ErrSingleUse，且不影响首次调用的结果。
func (e *ListenerEndpoint) Listen(ctx context.Context, factory pkgif.ProtocolFactory) (pkgif.ListeningPort, error) {
	if e.used.Swap(true) {
		return nil, ErrSingleUse
	}

	if err := e.ready.Wait(ctx); err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.factory = factory
	drained := e.pending
	e.pending = nil
	e.mu.Unlock()

	logger.Debug("开始接受入站子通道", "queued", len(drained))
	for _, po := range drained {
		e.connect(factory, po.sc, po.peerAddr)
	}

	return NewListeningPort(e.hostAddr), nil
}

// connect 把入站子通道交给应用
func (e *ListenerEndpoint) connect(factory pkgif.ProtocolFactory, sc pkgif.Subchannel, peerAddr types.SubchannelAddress) {
	p := factory.BuildProtocol(peerAddr)
	sc.SetProtocol(p)
	p.ConnectionMade(sc)
}
