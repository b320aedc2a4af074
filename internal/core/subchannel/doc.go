// Package subchannel 实现子通道状态机
//
// 子通道是多路复用的基本单元：一条加密连接内的有序双向逻辑字节流。
// 每个子通道以 OPEN 状态创建，来源有两种：
//   - 收到远端的 OPEN 事件（由管理器构造并路由到监听端点）
//   - 本地 Connect 调用（由连接端点构造）
//
// 状态转移：
//
//	(OPEN) 远端 DATA：投递 DataReceived -> (OPEN)
//	(OPEN) 远端 CLOSE：发送 CLOSE，投递 ConnectionLost -> (CLOSED)
//	(OPEN) 本地 Write：发送 DATA -> (OPEN)
//	(OPEN) 本地 Close：发送 CLOSE -> (CLOSING)
//	(CLOSING) 远端 DATA：投递 DataReceived -> (CLOSING)
//	(CLOSING) 远端 CLOSE：投递 ConnectionLost -> (CLOSED)
//	(CLOSING) 本地 Write / Close：返回 ErrAlreadyClosed
//
// 重复的 OPEN 事件由管理器过滤，不会到达状态机。进入 CLOSED 后
// 对象立即从管理器注册表移除，之后不应再收到任何事件。
//
// 协议绑定是一次性操作：绑定前到达的入站数据按原始顺序缓冲，
// 绑定时先投递全部缓冲数据，再投递挂起的关闭通知。
package subchannel
