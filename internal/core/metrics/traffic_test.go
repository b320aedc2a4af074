package metrics

import (
	"sync"
	"testing"

	"github.com/dep2p/go-subchannel/pkg/types"
)

// TestTrafficCounter_Basic 测试基本计数
func TestTrafficCounter_Basic(t *testing.T) {
	tc := NewTrafficCounter()

	tc.LogRecv(1, 10)
	tc.LogSent(1, 20)
	tc.LogRecv(2, 5)

	in, out := tc.Totals()
	if in != 15 || out != 20 {
		t.Fatalf("Totals() = (%d, %d), want (15, 20)", in, out)
	}

	in, out = tc.ForSubchannel(1)
	if in != 10 || out != 20 {
		t.Fatalf("ForSubchannel(1) = (%d, %d), want (10, 20)", in, out)
	}

	in, out = tc.ForSubchannel(3)
	if in != 0 || out != 0 {
		t.Fatalf("ForSubchannel(3) = (%d, %d), want (0, 0)", in, out)
	}
}

// TestTrafficCounter_Remove 测试移除子通道计数
func TestTrafficCounter_Remove(t *testing.T) {
	tc := NewTrafficCounter()
	tc.LogRecv(7, 100)

	tc.Remove(7)

	in, _ := tc.ForSubchannel(7)
	if in != 0 {
		t.Fatalf("移除后 ForSubchannel(7) in = %d, want 0", in)
	}
	// 全局总数保留
	if tin, _ := tc.Totals(); tin != 100 {
		t.Fatalf("移除后 Totals() in = %d, want 100", tin)
	}
}

// TestTrafficCounter_Reset 测试清零
func TestTrafficCounter_Reset(t *testing.T) {
	tc := NewTrafficCounter()
	tc.LogRecv(1, 1)
	tc.LogSent(1, 2)

	tc.Reset()

	if in, out := tc.Totals(); in != 0 || out != 0 {
		t.Fatalf("Reset 后 Totals() = (%d, %d), want (0, 0)", in, out)
	}
}

// TestTrafficCounter_Concurrent 测试并发计数
func TestTrafficCounter_Concurrent(t *testing.T) {
	tc := NewTrafficCounter()

	const goroutines = 16
	const per = 100
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		id := types.SubchannelID(i % 4)
		go func(id types.SubchannelID) {
			defer wg.Done()
			for j := 0; j < per; j++ {
				tc.LogRecv(id, 1)
				tc.LogSent(id, 2)
			}
		}(id)
	}
	wg.Wait()

	in, out := tc.Totals()
	if in != goroutines*per || out != 2*goroutines*per {
		t.Fatalf("Totals() = (%d, %d), want (%d, %d)", in, out, goroutines*per, 2*goroutines*per)
	}
}
