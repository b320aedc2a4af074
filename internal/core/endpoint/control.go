package endpoint

import (
	"context"
	"sync/atomic"

	"github.com/dep2p/go-subchannel/internal/core/readiness"
	pkgif "github.com/dep2p/go-subchannel/pkg/interfaces"
	"github.com/dep2p/go-subchannel/pkg/lib/log"
	"github.com/dep2p/go-subchannel/pkg/types"
)

var logger = log.Logger("core/endpoint")

// ControlEndpoint 控制子通道端点
//
// 一次性端点：把应用协议直接绑定到管理器保留的控制子通道
// （子通道零），用于多路复用层之上的控制面握手流量。
type ControlEndpoint struct {
	zero     pkgif.Subchannel
	peerAddr types.SubchannelAddress
	ready    *readiness.Signal
	used     atomic.Bool
}

// 确保实现接口
var _ pkgif.ClientEndpoint = (*ControlEndpoint)(nil)

// NewControlEndpoint 创建控制端点
//
// zero 是管理器预先构造的控制子通道。
func NewControlEndpoint(zero pkgif.Subchannel, peerAddr types.SubchannelAddress, ready *readiness.Signal) *ControlEndpoint {
	return &ControlEndpoint{
		zero:     zero,
		peerAddr: peerAddr,
		ready:    ready,
	}
}

// Connect 绑定应用协议到控制子通道
//
// 挂起直到主通道就绪；就绪失败时原样返回失败原因。
// 第二次调用返回 ErrSingleUse，且不影响首次调用的结果。
func (e *ControlEndpoint) Connect(ctx context.Context, factory pkgif.ProtocolFactory) (pkgif.StreamProtocol, error) {
	if e.used.Swap(true) {
		return nil, ErrSingleUse
	}

	if err := e.ready.Wait(ctx); err != nil {
		return nil, err
	}

	logger.Debug("绑定控制子通道", "addr", e.peerAddr)
	p := factory.BuildProtocol(e.peerAddr)
	e.zero.SetProtocol(p)
	p.ConnectionMade(e.zero)
	return p, nil
}
