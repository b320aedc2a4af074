package endpoint

import (
	"context"

	"github.com/dep2p/go-subchannel/internal/core/metrics"
	"github.com/dep2p/go-subchannel/internal/core/readiness"
	"github.com/dep2p/go-subchannel/internal/core/subchannel"
	pkgif "github.com/dep2p/go-subchannel/pkg/interfaces"
	"github.com/dep2p/go-subchannel/pkg/types"
)

// ConnectorEndpoint 子通道发起端点
//
// 可复用端点：每次 Connect 分配一个新的子通道 ID，向对端发出
// OPEN，并把一条就绪的流交给应用。
type ConnectorEndpoint struct {
	manager  pkgif.Manager
	hostAddr types.HostAddress
	ready    *readiness.Signal
	traffic  *metrics.TrafficCounter
}

// 确保实现接口
var _ pkgif.ClientEndpoint = (*ConnectorEndpoint)(nil)

// NewConnectorEndpoint 创建发起端点
//
// traffic 可为 nil，表示不统计流量。
func NewConnectorEndpoint(manager pkgif.Manager, hostAddr types.HostAddress, ready *readiness.Signal, traffic *metrics.TrafficCounter) *ConnectorEndpoint {
	return &ConnectorEndpoint{
		manager:  manager,
		hostAddr: hostAddr,
		ready:    ready,
		traffic:  traffic,
	}
}

// Connect 打开一条新的子通道
//
// 挂起直到主通道就绪；就绪失败时原样返回失败原因。就绪后：
// 分配 ID、发出 OPEN、构造子通道并登记到管理器、构造并绑定
// 协议实例、触发 ConnectionMade。
func (e *ConnectorEndpoint) Connect(ctx context.Context, factory pkgif.ProtocolFactory) (pkgif.StreamProtocol, error) {
	if err := e.ready.Wait(ctx); err != nil {
		return nil, err
	}

	id := e.manager.AllocateSubchannelID()
	e.manager.SendOpen(id)
	peerAddr := types.NewSubchannelAddress(id)

	var opts []subchannel.Option
	if e.traffic != nil {
		opts = append(opts, subchannel.WithTraffic(e.traffic))
	}
	sc := subchannel.New(id, e.manager, e.hostAddr, peerAddr, opts...)
	e.manager.SubchannelLocalOpen(id, sc)

	logger.Debug("打开子通道", "id", id)
	p := factory.BuildProtocol(peerAddr)
	sc.SetProtocol(p)
	p.ConnectionMade(sc)
	return p, nil
}
