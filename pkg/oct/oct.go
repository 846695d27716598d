// Package oct 实现客户端专用的 OctData 二进制编码。
//
// 所有整数为小端序；浮点数按其底层整数位编码；字符串为 i32 长度前缀，
// 空串写入 -1；容器长度为负数时表示差量（delta）编码。
// bt_property_tag 为结构化框架的上下文字：同一个值在不同 tag 下
// 会产生不同的外层框架（字段计数、标签列表等）。
package oct

// Data 可编解码的协议值。
// tag 即 bt_property_tag，随嵌套调用向下传递。
type Data interface {
	Marshal(w *Writer, tag uint16) error
	Unmarshal(r *Reader, tag uint16) error
}
