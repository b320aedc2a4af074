package interfaces

import (
	"github.com/dep2p/go-subchannel/pkg/types"
)

// ============================================================================
//                              流控能力接口
// ============================================================================

// Producer 可被节流的数据生产者
//
// 实现方是一个数据源，接受暂停/恢复/停止信号。
type Producer interface {
	// PauseProducing 暂停产出数据
	PauseProducing()

	// ResumeProducing 恢复产出数据
	ResumeProducing()

	// StopProducing 永久停止产出数据
	StopProducing()
}

// Consumer 可登记生产者的数据接收方
//
// 实现方是一个数据汇，通过登记的生产者反向传递节流信号。
type Consumer interface {
	// RegisterProducer 登记出站数据生产者
	RegisterProducer(p Producer, streaming bool)

	// UnregisterProducer 注销出站数据生产者
	UnregisterProducer()
}

// ============================================================================
//                              Subchannel - 子通道
// ============================================================================

// Subchannel 一条多路复用逻辑流
//
// 对应用侧呈现为普通的有序双向字节流：Write/Close 加上流控钩子。
// 对管理器侧暴露入站事件入口：RemoteData/RemoteClose。
// 每个子通道至多绑定一个应用协议（SetProtocol 仅允许调用一次）。
type Subchannel interface {
	Producer
	Consumer

	// ID 返回子通道 ID
	ID() types.SubchannelID

	// Write 写入一个出站数据帧
	//
	// 载荷不得超过 types.MaxFrameLength，否则返回校验错误；
	// 子通道已关闭时返回 ErrAlreadyClosed。
	Write(p []byte) (n int, err error)

	// WriteSequence 拼接多段载荷后写入
	WriteSequence(iovec [][]byte) (n int, err error)

	// Close 发起本地关闭（发送关闭帧，等待远端关闭）
	Close() error

	// LocalAddr 返回连接地址（整条多路复用连接）
	LocalAddr() types.HostAddress

	// RemoteAddr 返回子通道地址（连接内的这条流）
	RemoteAddr() types.SubchannelAddress

	// State 返回当前状态
	State() types.SubchannelState

	// SetProtocol 绑定应用协议（一次性操作）
	//
	// 绑定时按原始顺序投递所有缓冲的入站数据，随后投递挂起的
	// 关闭通知（若有）。重复绑定是致命的内部不变量违规。
	SetProtocol(p StreamProtocol)

	// RemoteData 管理器投递入站数据（远端 DATA 事件）
	RemoteData(data []byte)

	// RemoteClose 管理器投递入站关闭（远端 CLOSE 事件）
	RemoteClose()
}

// ============================================================================
//                              应用协议接口
// ============================================================================

// StreamProtocol 绑定到子通道的应用协议
//
// 应用代码实现该接口以消费子通道上的入站数据。
type StreamProtocol interface {
	// ConnectionMade 子通道就绪回调，传入可写的流句柄
	ConnectionMade(sc Subchannel)

	// DataReceived 入站数据回调，按线路顺序投递
	DataReceived(data []byte)

	// ConnectionLost 子通道关闭回调，在所有数据之后投递
	ConnectionLost(err error)
}

// ProtocolFactory 应用协议工厂
type ProtocolFactory interface {
	// BuildProtocol 为指定对端地址构造一个协议实例
	BuildProtocol(addr types.SubchannelAddress) StreamProtocol
}
