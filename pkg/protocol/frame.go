package protocol

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"

	"github.com/lk2023060901/hollowzero/pkg/oct"
)

// ErrTruncatedPacket 包体声明长度超出实际数据。
var ErrTruncatedPacket = errors.New("protocol: truncated packet")

const protocolHeaderSize = 13

// ProtocolHeader 包头，线上固定 13 字节。
// is_rpc_ret 字节写 1 表示应答，其余约定写 100。
type ProtocolHeader struct {
	ToChannel   uint16
	FromChannel uint16
	IsRpcRet    bool
	RpcArgUid   uint64
}

func (h ProtocolHeader) Encode() []byte {
	out := make([]byte, protocolHeaderSize)
	binary.LittleEndian.PutUint16(out[0:2], h.ToChannel)
	binary.LittleEndian.PutUint16(out[2:4], h.FromChannel)
	if h.IsRpcRet {
		out[4] = 1
	} else {
		out[4] = 100
	}
	binary.LittleEndian.PutUint64(out[5:13], h.RpcArgUid)
	return out
}

// ParseProtocolHeader 解析包头，长度不足按零值头处理。
func ParseProtocolHeader(buf []byte) ProtocolHeader {
	if len(buf) < protocolHeaderSize {
		return ProtocolHeader{}
	}
	return ProtocolHeader{
		ToChannel:   binary.LittleEndian.Uint16(buf[0:2]),
		FromChannel: binary.LittleEndian.Uint16(buf[2:4]),
		IsRpcRet:    buf[4] != 100,
		RpcArgUid:   binary.LittleEndian.Uint64(buf[5:13]),
	}
}

// Packet 一个完整的传输包。
type Packet struct {
	ToChannel uint16
	Header    ProtocolHeader
	Body      []byte
}

// DecodePacket 从缓冲区头部解析一个完整包，返回消耗的字节数。
// 数据不足时返回 (nil, 0, nil)，由调用方等待更多数据。
func DecodePacket(buf []byte) (*Packet, int, error) {
	if len(buf) < 8 {
		return nil, 0, nil
	}
	toChannel := binary.LittleEndian.Uint16(buf[0:2])
	bodySize := int(binary.LittleEndian.Uint32(buf[2:6]))
	headerSize := int(binary.LittleEndian.Uint16(buf[6:8]))
	total := 8 + headerSize + bodySize
	if len(buf) < total {
		return nil, 0, nil
	}
	header := ParseProtocolHeader(buf[8 : 8+headerSize])
	body := make([]byte, bodySize)
	copy(body, buf[8+headerSize:total])
	return &Packet{
		ToChannel: toChannel,
		Header:    header,
		Body:      body,
	}, total, nil
}

// RequestBody 请求体：协议号小端 + 载荷长度大端 + 载荷。
type RequestBody struct {
	ProtocolID uint16
	Payload    []byte
}

func ParseRequestBody(body []byte) (RequestBody, error) {
	if len(body) < 6 {
		return RequestBody{}, errors.Wrap(ErrTruncatedPacket, "request body")
	}
	protocolID := binary.LittleEndian.Uint16(body[0:2])
	payloadLen := int(binary.BigEndian.Uint32(body[2:6]))
	if len(body) < 6+payloadLen {
		return RequestBody{}, errors.Wrapf(ErrTruncatedPacket, "request payload want %d have %d", payloadLen, len(body)-6)
	}
	return RequestBody{
		ProtocolID: protocolID,
		Payload:    body[6 : 6+payloadLen],
	}, nil
}

func (b RequestBody) Encode() []byte {
	out := make([]byte, 6+len(b.Payload))
	binary.LittleEndian.PutUint16(out[0:2], b.ProtocolID)
	binary.BigEndian.PutUint32(out[2:6], uint32(len(b.Payload)))
	copy(out[6:], b.Payload)
	return out
}

// ResponseBody 应答体：中间件号 + 中间件错误码 + 载荷。
type ResponseBody struct {
	MiddlewareID        uint16
	MiddlewareErrorCode uint16
	Payload             []byte
}

func (b ResponseBody) Encode() []byte {
	out := make([]byte, 4+len(b.Payload))
	binary.LittleEndian.PutUint16(out[0:2], b.MiddlewareID)
	binary.LittleEndian.PutUint16(out[2:4], b.MiddlewareErrorCode)
	copy(out[4:], b.Payload)
	return out
}

// EncodeRetPacket 编码一个 Rpc 应答包。
func EncodeRetPacket(rpcArgUid uint64, data oct.Data) ([]byte, error) {
	w := oct.NewWriter()
	if err := data.Marshal(w, 0); err != nil {
		return nil, err
	}
	body := ResponseBody{Payload: w.Bytes()}.Encode()
	header := ProtocolHeader{IsRpcRet: true, RpcArgUid: rpcArgUid}.Encode()

	out := make([]byte, 0, 8+len(header)+len(body))
	out = binary.LittleEndian.AppendUint16(out, 0)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(body)))
	out = binary.LittleEndian.AppendUint16(out, uint16(len(header)))
	out = append(out, header...)
	out = append(out, body...)
	return out, nil
}

// EncodeArgPacket 编码一个服务器主动下发包，结尾附 u16 中间件数量 0，
// 该两字节计入 body_size。
func EncodeArgPacket(protocolID uint16, data oct.Data) ([]byte, error) {
	w := oct.NewWriter()
	if err := data.Marshal(w, 0); err != nil {
		return nil, err
	}
	body := RequestBody{ProtocolID: protocolID, Payload: w.Bytes()}.Encode()
	header := ProtocolHeader{}.Encode()

	out := make([]byte, 0, 8+len(header)+len(body)+2)
	out = binary.LittleEndian.AppendUint16(out, 0)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(body)+2))
	out = binary.LittleEndian.AppendUint16(out, uint16(len(header)))
	out = append(out, header...)
	out = append(out, body...)
	out = binary.LittleEndian.AppendUint16(out, 0)
	return out, nil
}
