package subchannel

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/dep2p/go-subchannel/internal/core/endpoint"
	"github.com/dep2p/go-subchannel/internal/core/metrics"
	"github.com/dep2p/go-subchannel/internal/core/readiness"
	corechan "github.com/dep2p/go-subchannel/internal/core/subchannel"
	pkgif "github.com/dep2p/go-subchannel/pkg/interfaces"
	"github.com/dep2p/go-subchannel/pkg/types"
)

// Module 是子通道层的 Fx 模块
//
// 使用方需要在容器中提供 pkgif.Manager。组装顺序：
// HostAddress / 就绪信号 / 流量计数器 -> 子通道零 -> 三种端点 -> Dilator。
var Module = fx.Module("subchannel",
	fx.Provide(
		types.NewHostAddress,
		readiness.NewSignal,
		metrics.NewTrafficCounter,
		fx.Annotate(
			newSubchannelZero,
			fx.As(new(pkgif.Subchannel)),
			fx.ResultTags(`name:"zero"`),
		),
	),
	endpoint.Module,
	fx.Provide(newDilatorFromParams),
)

// newSubchannelZero 创建保留的控制子通道
func newSubchannelZero(manager pkgif.Manager, hostAddr types.HostAddress, traffic *metrics.TrafficCounter) *corechan.Subchannel {
	return corechan.New(
		types.ControlSubchannelID,
		manager,
		hostAddr,
		types.NewSubchannelAddress(types.ControlSubchannelID),
		corechan.WithTraffic(traffic),
	)
}

// dilatorParams Dilator 依赖参数
type dilatorParams struct {
	fx.In

	Manager   pkgif.Manager
	HostAddr  types.HostAddress
	Ready     *readiness.Signal
	Traffic   *metrics.TrafficCounter
	Zero      pkgif.Subchannel `name:"zero"`
	Control   *endpoint.ControlEndpoint
	Connector *endpoint.ConnectorEndpoint
	Listener  *endpoint.ListenerEndpoint
}

// newDilatorFromParams 从容器组件组装 Dilator
func newDilatorFromParams(p dilatorParams) *Dilator {
	return &Dilator{
		manager:   p.Manager,
		hostAddr:  p.HostAddr,
		ready:     p.Ready,
		traffic:   p.Traffic,
		zero:      p.Zero,
		control:   p.Control,
		connector: p.Connector,
		listener:  p.Listener,
	}
}

// NewApp 构建包含子通道层的 Fx 应用
//
// manager 由使用方实现并注入；extra 用于追加应用自身的模块。
func NewApp(manager pkgif.Manager, extra ...fx.Option) *fx.App {
	opts := append([]fx.Option{
		fx.Supply(fx.Annotate(manager, fx.As(new(pkgif.Manager)))),
		Module,
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}),
	}, extra...)
	return fx.New(opts...)
}
