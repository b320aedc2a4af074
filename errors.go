package subchannel

import (
	"github.com/dep2p/go-subchannel/internal/core/endpoint"
	corechan "github.com/dep2p/go-subchannel/internal/core/subchannel"
	"github.com/dep2p/go-subchannel/pkg/types"
)

// 常用错误的根包再导出，使用方无需导入内部包。
var (
	// ErrAlreadyClosed 子通道已关闭，本地 Write/Close 不再允许
	ErrAlreadyClosed = corechan.ErrAlreadyClosed

	// ErrFrameTooLarge 载荷超过单帧上限 MaxFrameLength
	ErrFrameTooLarge = corechan.ErrFrameTooLarge

	// ErrConnectionDone 连接正常关闭（ConnectionLost 的原因）
	ErrConnectionDone = corechan.ErrConnectionDone

	// ErrSingleUse 一次性端点被重复调用
	ErrSingleUse = endpoint.ErrSingleUse
)

// MaxFrameLength 单次写入允许的最大载荷字节数
const MaxFrameLength = types.MaxFrameLength
