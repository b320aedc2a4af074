// Package types 定义子通道多路复用层的基础类型
//
// 这是整个模块的最底层包，不依赖任何其他内部包。
// 所有类型都是纯值类型，用于在各模块间传递数据。
package types
