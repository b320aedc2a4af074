package subchannel

import (
	"log/slog"

	"github.com/dep2p/go-subchannel/pkg/lib/log"
	"github.com/dep2p/go-subchannel/pkg/types"
)

// options Dilator 构造配置
type options struct {
	hostAddr types.HostAddress
	logLevel *slog.Level
	traffic  bool
}

// defaultOptions 返回默认配置
func defaultOptions() *options {
	return &options{
		traffic: true,
	}
}

// Option Dilator 构造选项
type Option func(*options)

// WithHostAddress 指定连接地址
//
// 默认每个 Dilator 生成一个新的随机地址。
func WithHostAddress(addr types.HostAddress) Option {
	return func(o *options) {
		o.hostAddr = addr
	}
}

// WithLogLevel 设置全局日志级别
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logLevel = &level
	}
}

// WithoutTraffic 关闭流量统计
func WithoutTraffic() Option {
	return func(o *options) {
		o.traffic = false
	}
}

// apply 应用配置的副作用
func (o *options) apply() {
	if o.logLevel != nil {
		log.SetLevel(*o.logLevel)
	}
	if o.hostAddr.IsEmpty() {
		o.hostAddr = types.NewHostAddress()
	}
}
