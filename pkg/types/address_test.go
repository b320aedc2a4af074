package types

import (
	"testing"
)

// TestHostAddress 测试连接地址
func TestHostAddress(t *testing.T) {
	a := NewHostAddress()
	b := NewHostAddress()

	if a.IsEmpty() {
		t.Fatal("NewHostAddress() 不应为空")
	}
	if a.Equal(b) {
		t.Fatal("两次创建的地址不应相等")
	}
	if !a.Equal(a) {
		t.Fatal("地址应与自身相等")
	}
	if a.String() == "" {
		t.Fatal("String() 不应为空")
	}
	if got := len(a.ShortString()); got != 8 {
		t.Fatalf("ShortString() 长度 = %d, want 8", got)
	}
}

// TestHostAddress_Empty 测试空地址
func TestHostAddress_Empty(t *testing.T) {
	var a HostAddress
	if !a.IsEmpty() {
		t.Fatal("零值地址应为空")
	}
	if a.String() != "" {
		t.Fatalf("空地址 String() = %q, want \"\"", a.String())
	}
	if !a.Equal(EmptyHostAddress) {
		t.Fatal("零值地址应等于 EmptyHostAddress")
	}
}

// TestSubchannelAddress 测试子通道地址
func TestSubchannelAddress(t *testing.T) {
	a := NewSubchannelAddress(5)
	if a.ID() != 5 {
		t.Fatalf("ID() = %d, want 5", a.ID())
	}
	if a.String() != "subchannel:5" {
		t.Fatalf("String() = %q, want %q", a.String(), "subchannel:5")
	}
	if !a.Equal(NewSubchannelAddress(5)) {
		t.Fatal("相同 ID 的地址应相等")
	}
	if a.Equal(NewSubchannelAddress(6)) {
		t.Fatal("不同 ID 的地址不应相等")
	}
}

// TestSubchannelState_String 测试状态字符串
func TestSubchannelState_String(t *testing.T) {
	cases := []struct {
		state SubchannelState
		want  string
	}{
		{StateOpen, "open"},
		{StateClosing, "closing"},
		{StateClosed, "closed"},
		{SubchannelState(99), "unknown"},
	}
	for _, c := range cases {
		if got := c.state.String(); got != c.want {
			t.Errorf("State(%d).String() = %q, want %q", c.state, got, c.want)
		}
	}
}

// TestMaxFrameLength 测试帧布局常量
func TestMaxFrameLength(t *testing.T) {
	// 4 字节长度前缀只覆盖密文+标签：载荷 + 9 字节头部 + 16 字节
	// 认证标签不得超过 2^32 - 1
	const want = 1<<32 - 1 - 9 - 16
	if uint64(MaxFrameLength) != uint64(want) {
		t.Fatalf("MaxFrameLength = %d, want %d", uint64(MaxFrameLength), uint64(want))
	}
}
