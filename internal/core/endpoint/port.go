package endpoint

import (
	pkgif "github.com/dep2p/go-subchannel/pkg/interfaces"
	"github.com/dep2p/go-subchannel/pkg/types"
)

// ListeningPort 监听端口句柄
//
// 子通道的绑定/解绑由管理器负责，本层的启停是空操作。
type ListeningPort struct {
	hostAddr types.HostAddress
}

// 确保实现接口
var _ pkgif.ListeningPort = (*ListeningPort)(nil)

// NewListeningPort 创建监听端口句柄
func NewListeningPort(hostAddr types.HostAddress) *ListeningPort {
	return &ListeningPort{hostAddr: hostAddr}
}

// StartListening 开始监听（空操作）
func (p *ListeningPort) StartListening() error {
	return nil
}

// StopListening 停止监听（空操作）
func (p *ListeningPort) StopListening() error {
	return nil
}

// Addr 返回监听地址
func (p *ListeningPort) Addr() types.HostAddress {
	return p.hostAddr
}
