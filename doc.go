// Package subchannel 实现安全隧道传输的子通道多路复用层
//
// 多条独立、有序、双向的逻辑字节流（子通道）共享一条加密连接，
// 每条子通道拥有自己的打开/关闭生命周期、流控与寻址，对使用它的
// 应用来说与原生点对点流无异。
//
// 本层不负责加密、成帧调度与重连，这些属于外部协作者 Manager
// （见 pkg/interfaces.Manager）。数据流向：
//
//	应用 -> 端点 -> 子通道 -> 管理器 -> 线路
//	线路 -> 管理器 -> 子通道 -> 应用
//
// 典型用法：
//
//	d := subchannel.New(manager)
//	// 管理器在底层连接可用时调用：
//	d.MainChannelReady()
//	// 应用发起一条新的子通道：
//	p, err := d.ConnectorEndpoint().Connect(ctx, factory)
package subchannel
