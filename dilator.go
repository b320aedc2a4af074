package subchannel

import (
	"github.com/dep2p/go-subchannel/internal/core/endpoint"
	"github.com/dep2p/go-subchannel/internal/core/metrics"
	"github.com/dep2p/go-subchannel/internal/core/readiness"
	corechan "github.com/dep2p/go-subchannel/internal/core/subchannel"
	pkgif "github.com/dep2p/go-subchannel/pkg/interfaces"
	"github.com/dep2p/go-subchannel/pkg/lib/log"
	"github.com/dep2p/go-subchannel/pkg/types"
)

var logger = log.Logger("subchannel")

// Dilator 子通道多路复用层的门面
//
// 持有连接地址、主通道就绪信号、控制子通道（子通道零）与三种端点，
// 对管理器暴露驱动入口（就绪通知、入站 OPEN 路由、子通道构造），
// 对应用暴露端点访问器。
type Dilator struct {
	manager   pkgif.Manager
	hostAddr  types.HostAddress
	ready     *readiness.Signal
	traffic   *metrics.TrafficCounter
	zero      pkgif.Subchannel
	control   *endpoint.ControlEndpoint
	connector *endpoint.ConnectorEndpoint
	listener  *endpoint.ListenerEndpoint
}

// New 创建 Dilator
//
// manager 是拥有底层加密连接的外部协作者。
func New(manager pkgif.Manager, opts ...Option) *Dilator {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.apply()

	d := &Dilator{
		manager:  manager,
		hostAddr: cfg.hostAddr,
		ready:    readiness.NewSignal(),
	}
	if cfg.traffic {
		d.traffic = metrics.NewTrafficCounter()
	}

	zeroAddr := types.NewSubchannelAddress(types.ControlSubchannelID)
	d.zero = d.newSubchannel(types.ControlSubchannelID, zeroAddr)
	d.control = endpoint.NewControlEndpoint(d.zero, zeroAddr, d.ready)
	d.connector = endpoint.NewConnectorEndpoint(manager, d.hostAddr, d.ready, d.traffic)
	d.listener = endpoint.NewListenerEndpoint(d.hostAddr, d.ready)

	logger.Debug("Dilator 已创建", "host", d.hostAddr.ShortString())
	return d
}

// newSubchannel 构造绑定到本连接的子通道
func (d *Dilator) newSubchannel(id types.SubchannelID, peerAddr types.SubchannelAddress) pkgif.Subchannel {
	var opts []corechan.Option
	if d.traffic != nil {
		opts = append(opts, corechan.WithTraffic(d.traffic))
	}
	return corechan.New(id, d.manager, d.hostAddr, peerAddr, opts...)
}

// ============================================================================
//                              管理器驱动入口
// ============================================================================

// MainChannelReady 主通道就绪通知
//
// 底层多路复用连接可用时由管理器调用一次，唤醒所有等待中的
// Connect/Listen。重复调用为空操作。
func (d *Dilator) MainChannelReady() {
	d.ready.Ready()
}

// MainChannelFailed 主通道就绪失败通知
//
// err 原样传播给所有等待中与后续的 Connect/Listen 调用。
// 重复调用为空操作。
func (d *Dilator) MainChannelFailed(err error) {
	d.ready.Fail(err)
}

// NewSubchannel 为管理器构造一条绑定到本连接的子通道
//
// 用于远端发起的子通道：管理器收到 OPEN 帧后以远端给出的 ID
// 构造子通道，自行登记后通过 GotOpen 路由给监听端点。
func (d *Dilator) NewSubchannel(id types.SubchannelID) pkgif.Subchannel {
	return d.newSubchannel(id, types.NewSubchannelAddress(id))
}

// GotOpen 路由一个入站 OPEN 事件到监听端点
//
// 构造子通道并交给监听端点（立即连接或排队），返回该子通道
// 供管理器登记到注册表。
func (d *Dilator) GotOpen(id types.SubchannelID) pkgif.Subchannel {
	peerAddr := types.NewSubchannelAddress(id)
	sc := d.newSubchannel(id, peerAddr)
	d.listener.GotOpen(sc, peerAddr)
	return sc
}

// ============================================================================
//                              应用侧访问器
// ============================================================================

// ControlEndpoint 返回控制子通道端点（一次性）
func (d *Dilator) ControlEndpoint() pkgif.ClientEndpoint {
	return d.control
}

// ConnectorEndpoint 返回子通道发起端点（可复用）
func (d *Dilator) ConnectorEndpoint() pkgif.ClientEndpoint {
	return d.connector
}

// ListenerEndpoint 返回子通道接受端点（Listen 一次性）
func (d *Dilator) ListenerEndpoint() pkgif.ServerEndpoint {
	return d.listener
}

// SubchannelZero 返回保留的控制子通道
func (d *Dilator) SubchannelZero() pkgif.Subchannel {
	return d.zero
}

// HostAddress 返回连接地址
func (d *Dilator) HostAddress() types.HostAddress {
	return d.hostAddr
}

// TrafficTotals 返回整条连接的收/发字节总数
//
// 流量统计被 WithoutTraffic 关闭时返回零值。
func (d *Dilator) TrafficTotals() (in, out int64) {
	if d.traffic == nil {
		return 0, 0
	}
	return d.traffic.Totals()
}

// TrafficFor 返回指定子通道的收/发字节数
func (d *Dilator) TrafficFor(id types.SubchannelID) (in, out int64) {
	if d.traffic == nil {
		return 0, 0
	}
	return d.traffic.ForSubchannel(id)
}
