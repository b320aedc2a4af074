package subchannel

import (
	"errors"
)

var (
	// ErrAlreadyClosed 子通道已关闭（本地 Write/Close 不再允许）
	ErrAlreadyClosed = errors.New("subchannel already closed")

	// ErrFrameTooLarge 载荷超过单帧上限
	ErrFrameTooLarge = errors.New("frame payload too large")

	// ErrConnectionDone 连接正常关闭
	//
	// 远端正常关闭子通道时作为 ConnectionLost 的原因传递。
	ErrConnectionDone = errors.New("connection was closed cleanly")
)
