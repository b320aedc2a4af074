// Package endpoint 实现子通道的建立与接受端点
//
// 三种端点都持有共享的主通道就绪信号，Connect/Listen 是本层
// 仅有的挂起点：
//   - ControlEndpoint：一次性端点，绑定到管理器保留的控制子通道（子通道零）
//   - ConnectorEndpoint：可复用端点，每次调用打开一条新的逻辑流
//   - ListenerEndpoint：接受管理器投递的入站 OPEN 事件，
//     工厂登记前按 FIFO 排队，登记后立即连接
package endpoint
