package interfaces

import (
	"github.com/dep2p/go-subchannel/pkg/types"
)

// Manager 多路复用连接管理器
//
// 外部协作者：拥有底层加密连接，负责密钥协商、帧加解密、线路传输、
// 序列号分配以及跨重连的子通道 ID 簿记。本层只通过该契约与之交互，
// 不关心字节如何加密、帧如何调度上线。
//
// 契约约定：
//   - 管理器串行分派同一子通道的入站事件，进入 CLOSED 的子通道
//     不再收到任何事件（重复 OPEN 也由管理器过滤）。
//   - 管理器是子通道 ID 分配的唯一写者，本层从不自行生成 ID。
type Manager interface {
	// SendData 为指定子通道发出一个出站数据帧
	SendData(id types.SubchannelID, data []byte)

	// SendClose 为指定子通道发出一个出站关闭帧
	SendClose(id types.SubchannelID)

	// SendOpen 为指定子通道发出一个出站打开帧
	SendOpen(id types.SubchannelID)

	// AllocateSubchannelID 分配一个连接内唯一的新子通道 ID
	//
	// 用于本地发起的子通道。
	AllocateSubchannelID() types.SubchannelID

	// SubchannelLocalOpen 向注册表登记一个本地打开的子通道
	SubchannelLocalOpen(id types.SubchannelID, sc Subchannel)

	// SubchannelClosed 通知注册表子通道已关闭，可以移除
	SubchannelClosed(id types.SubchannelID, sc Subchannel)

	// SubchannelPauseProducing 请求暂停向指定子通道投递入站数据
	SubchannelPauseProducing(sc Subchannel)

	// SubchannelResumeProducing 请求恢复向指定子通道投递入站数据
	SubchannelResumeProducing(sc Subchannel)

	// SubchannelStopProducing 请求停止向指定子通道投递入站数据
	SubchannelStopProducing(sc Subchannel)

	// SubchannelRegisterProducer 登记指定子通道的出站数据生产者
	//
	// streaming 为 true 表示推模式生产者（可被暂停/恢复），
	// false 表示拉模式生产者。
	SubchannelRegisterProducer(sc Subchannel, p Producer, streaming bool)

	// SubchannelUnregisterProducer 注销指定子通道的出站数据生产者
	SubchannelUnregisterProducer(sc Subchannel)
}
