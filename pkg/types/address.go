package types

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// ============================================================================
//                              SubchannelID - 子通道标识
// ============================================================================

// SubchannelID 子通道唯一标识符
//
// 在一条多路复用连接的生命周期内唯一。
// 本地发起的子通道由管理器分配，远端发起的随 OPEN 事件到达。
type SubchannelID uint64

// ControlSubchannelID 保留的控制子通道 ID（子通道零）
const ControlSubchannelID SubchannelID = 0

// String 返回 SubchannelID 的字符串表示
func (id SubchannelID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ============================================================================
//                              HostAddress - 连接地址
// ============================================================================

// HostAddress 标识整条多路复用连接
//
// 所有子通道共享同一个 HostAddress。身份标签在连接建立时生成一次，
// 之后不可变。
//
// 外部表示格式：
//   - String(): UUID 字符串（日志、诊断）
//   - ShortString(): 前 8 个字符（日志简短标识）
type HostAddress struct {
	tag uuid.UUID
}

// EmptyHostAddress 空连接地址
var EmptyHostAddress HostAddress

// NewHostAddress 创建新的连接地址
//
// 每条连接调用一次，由构造子通道的组件持有。
func NewHostAddress() HostAddress {
	return HostAddress{tag: uuid.New()}
}

// String 返回 HostAddress 的字符串表示
func (a HostAddress) String() string {
	if a.IsEmpty() {
		return ""
	}
	return a.tag.String()
}

// ShortString 返回 HostAddress 的短字符串表示
//
// 格式：UUID 前 8 个字符，用于日志中的简短标识。
func (a HostAddress) ShortString() string {
	s := a.String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

// Equal 比较两个 HostAddress 是否相等
func (a HostAddress) Equal(other HostAddress) bool {
	return a.tag == other.tag
}

// IsEmpty 检查 HostAddress 是否为空
func (a HostAddress) IsEmpty() bool {
	return a.tag == uuid.Nil
}

// ============================================================================
//                              SubchannelAddress - 子通道地址
// ============================================================================

// SubchannelAddress 标识连接内的一个子通道
//
// 纯值类型，多个实例可以引用同一个 ID 而不拥有任何资源。
type SubchannelAddress struct {
	id SubchannelID
}

// NewSubchannelAddress 创建子通道地址
func NewSubchannelAddress(id SubchannelID) SubchannelAddress {
	return SubchannelAddress{id: id}
}

// ID 返回子通道 ID
func (a SubchannelAddress) ID() SubchannelID {
	return a.id
}

// String 返回子通道地址的字符串表示
func (a SubchannelAddress) String() string {
	return fmt.Sprintf("subchannel:%d", uint64(a.id))
}

// Equal 比较两个子通道地址是否相等
func (a SubchannelAddress) Equal(other SubchannelAddress) bool {
	return a.id == other.id
}
