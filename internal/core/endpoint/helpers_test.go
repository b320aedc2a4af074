package endpoint

import (
	"sync"

	"github.com/dep2p/go-subchannel/internal/core/subchannel"
	pkgif "github.com/dep2p/go-subchannel/pkg/interfaces"
	"github.com/dep2p/go-subchannel/pkg/types"
)

// fakeManager 记录管理器调用的测试替身
type fakeManager struct {
	mu         sync.Mutex
	data       [][]byte
	closes     []types.SubchannelID
	opens      []types.SubchannelID
	allocated  int
	nextID     types.SubchannelID
	localOpens []types.SubchannelID
	closed     []types.SubchannelID
}

var _ pkgif.Manager = (*fakeManager)(nil)

func (m *fakeManager) SendData(id types.SubchannelID, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append(m.data, data)
}

func (m *fakeManager) SendClose(id types.SubchannelID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closes = append(m.closes, id)
}

func (m *fakeManager) SendOpen(id types.SubchannelID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opens = append(m.opens, id)
}

func (m *fakeManager) AllocateSubchannelID() types.SubchannelID {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.allocated++
	m.nextID++
	return m.nextID
}

func (m *fakeManager) SubchannelLocalOpen(id types.SubchannelID, sc pkgif.Subchannel) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.localOpens = append(m.localOpens, id)
}

func (m *fakeManager) SubchannelClosed(id types.SubchannelID, sc pkgif.Subchannel) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = append(m.closed, id)
}

func (m *fakeManager) SubchannelPauseProducing(sc pkgif.Subchannel)  {}
func (m *fakeManager) SubchannelResumeProducing(sc pkgif.Subchannel) {}
func (m *fakeManager) SubchannelStopProducing(sc pkgif.Subchannel)   {}

func (m *fakeManager) SubchannelRegisterProducer(sc pkgif.Subchannel, p pkgif.Producer, streaming bool) {
}

func (m *fakeManager) SubchannelUnregisterProducer(sc pkgif.Subchannel) {}

func (m *fakeManager) allocCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.allocated
}

// recordingProtocol 记录回调的协议测试替身
type recordingProtocol struct {
	mu        sync.Mutex
	transport pkgif.Subchannel
	made      int
	data      [][]byte
	lost      []error
}

var _ pkgif.StreamProtocol = (*recordingProtocol)(nil)

func (p *recordingProtocol) ConnectionMade(sc pkgif.Subchannel) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.made++
	p.transport = sc
}

func (p *recordingProtocol) DataReceived(data []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data = append(p.data, data)
}

func (p *recordingProtocol) ConnectionLost(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lost = append(p.lost, err)
}

// recordingFactory 记录构造顺序的协议工厂
type recordingFactory struct {
	mu    sync.Mutex
	addrs []types.SubchannelAddress
	built []*recordingProtocol
}

var _ pkgif.ProtocolFactory = (*recordingFactory)(nil)

func (f *recordingFactory) BuildProtocol(addr types.SubchannelAddress) pkgif.StreamProtocol {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addrs = append(f.addrs, addr)
	p := &recordingProtocol{}
	f.built = append(f.built, p)
	return p
}

// newZero 创建测试用的控制子通道
func newZero(mgr pkgif.Manager, host types.HostAddress) (pkgif.Subchannel, types.SubchannelAddress) {
	addr := types.NewSubchannelAddress(types.ControlSubchannelID)
	return subchannel.New(types.ControlSubchannelID, mgr, host, addr), addr
}
