package endpoint

import (
	"go.uber.org/fx"

	"github.com/dep2p/go-subchannel/internal/core/metrics"
	"github.com/dep2p/go-subchannel/internal/core/readiness"
	pkgif "github.com/dep2p/go-subchannel/pkg/interfaces"
	"github.com/dep2p/go-subchannel/pkg/types"
)

// Params 端点依赖参数
type Params struct {
	fx.In

	Manager  pkgif.Manager
	HostAddr types.HostAddress
	Ready    *readiness.Signal
	Zero     pkgif.Subchannel        `name:"zero"`
	Traffic  *metrics.TrafficCounter `optional:"true"`
}

// Module 是 endpoint 的 Fx 模块
//
// 提供三种端点的具体类型；控制/发起端点同时满足
// pkgif.ClientEndpoint，监听端点满足 pkgif.ServerEndpoint。
var Module = fx.Module("endpoint",
	fx.Provide(
		NewControlEndpointFromParams,
		NewConnectorEndpointFromParams,
		NewListenerEndpointFromParams,
	),
)

// NewControlEndpointFromParams 从参数创建控制端点
func NewControlEndpointFromParams(p Params) *ControlEndpoint {
	return NewControlEndpoint(p.Zero, p.Zero.RemoteAddr(), p.Ready)
}

// NewConnectorEndpointFromParams 从参数创建发起端点
func NewConnectorEndpointFromParams(p Params) *ConnectorEndpoint {
	return NewConnectorEndpoint(p.Manager, p.HostAddr, p.Ready, p.Traffic)
}

// NewListenerEndpointFromParams 从参数创建接受端点
func NewListenerEndpointFromParams(p Params) *ListenerEndpoint {
	return NewListenerEndpoint(p.HostAddr, p.Ready)
}
