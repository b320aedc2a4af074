package types

// ============================================================================
//                              帧布局常量
// ============================================================================

// 每个子通道载荷成帧后带 9 字节头部（帧类型 + 子通道 ID + 序列号），
// 随后整体加密并追加 16 字节认证标签，密文在线路上以 4 字节长度前缀
// 发送（长度只覆盖密文+标签，不含前缀自身）。
// 因此单次写入的载荷不能超过 MaxFrameLength。
const (
	// LengthPrefixSize 线路长度前缀字节数
	LengthPrefixSize = 4

	// FrameHeaderSize 子通道帧头部字节数（类型 + 子通道 ID + 序列号）
	FrameHeaderSize = 9

	// AuthTagSize 加密认证标签字节数
	AuthTagSize = 16

	// MaxFrameLength 单次写入允许的最大载荷字节数
	MaxFrameLength = 1<<32 - 1 - FrameHeaderSize - AuthTagSize
)
