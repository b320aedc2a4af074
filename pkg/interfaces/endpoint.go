package interfaces

import (
	"context"

	"github.com/dep2p/go-subchannel/pkg/types"
)

// ============================================================================
//                              端点接口
// ============================================================================

// ClientEndpoint 发起侧端点
//
// Connect 挂起直到底层连接就绪，随后构造协议实例并绑定到子通道。
// 就绪信号以失败收场时原样返回该错误。
type ClientEndpoint interface {
	// Connect 建立一条子通道并返回已连接的协议实例
	Connect(ctx context.Context, factory ProtocolFactory) (StreamProtocol, error)
}

// ServerEndpoint 接受侧端点
//
// Listen 挂起直到底层连接就绪，随后登记协议工厂并连接所有
// 排队的入站子通道。
type ServerEndpoint interface {
	// Listen 登记协议工厂，开始接受入站子通道
	Listen(ctx context.Context, factory ProtocolFactory) (ListeningPort, error)
}

// ListeningPort 监听端口句柄
//
// 绑定/解绑的生命周期由管理器负责，本层的启停是空操作。
type ListeningPort interface {
	// StartListening 开始监听（本层为空操作）
	StartListening() error

	// StopListening 停止监听（本层为空操作）
	StopListening() error

	// Addr 返回监听地址（整条连接的地址）
	Addr() types.HostAddress
}
