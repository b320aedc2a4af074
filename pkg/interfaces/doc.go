// Package interfaces 定义子通道多路复用层的公共接口
//
// 接口集中定义在此包，避免内部包之间的循环依赖。
// 使用方约定以 pkgif 别名导入：
//
//	import pkgif "github.com/dep2p/go-subchannel/pkg/interfaces"
//
// 主要接口分为三组：
//   - Manager：外部协作者契约，负责加密、成帧、线路传输与 ID 簿记
//   - Subchannel / StreamProtocol：数据面，子通道与应用协议之间的流接口
//   - ClientEndpoint / ServerEndpoint：控制面，子通道的建立与接受
package interfaces
