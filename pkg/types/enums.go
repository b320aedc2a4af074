package types

// ============================================================================
//                              SubchannelState - 子通道状态
// ============================================================================

// SubchannelState 子通道状态
//
// 状态机定义见 internal/core/subchannel：
//
//	(OPEN) 收到远端 DATA：投递 DataReceived -> (OPEN)
//	(OPEN) 收到远端 CLOSE：发送 CLOSE，投递 ConnectionLost -> (CLOSED)
//	(OPEN) 本地 Write：发送 DATA -> (OPEN)
//	(OPEN) 本地 Close：发送 CLOSE -> (CLOSING)
//	(CLOSING) 本地 Write / Close：返回 ErrAlreadyClosed
//	(CLOSING) 收到远端 DATA：投递 DataReceived -> (CLOSING)
//	(CLOSING) 收到远端 CLOSE：投递 ConnectionLost -> (CLOSED)
//
// 进入 CLOSED 后对象立即从注册表移除，不再接收任何事件。
type SubchannelState int

const (
	// StateOpen 打开状态（初始状态）
	StateOpen SubchannelState = iota
	// StateClosing 本地已关闭，等待远端 CLOSE
	StateClosing
	// StateClosed 完全关闭（终止状态）
	StateClosed
)

// String 返回状态的字符串表示
func (s SubchannelState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
