package interop

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// Wire layout sizes in bytes. Every variant encodes to a fixed size; there
// are no variable-length or pointer-bearing fields on the wire.
const (
	pingWireSize         = 4
	pongWireSize         = 4
	dataRequestWireSize  = 4 + StringMax + 4
	dataResponseWireSize = 4 + 8 + 4
	subscribeWireSize    = TopicMax
	unsubscribeWireSize  = TopicMax
	marketUpdateWireSize = SymbolMax + 8 + 8 + 4
	marketDepthWireSize  = SymbolMax + 4 + DepthLevels*8*2 + DepthLevels*4*2
)

// All multi-byte fields are big-endian, matching the framing codec used by
// the transport layer on both islands.
var order = binary.BigEndian

// putFixedString writes s into dst truncated to len(dst)-1 bytes, zero
// padding the remainder. The final byte is always zero.
func putFixedString(dst []byte, s string) {
	n := copy(dst[:len(dst)-1], s)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

// getFixedString reads a zero-terminated string from src. Bytes that do not
// form valid UTF-8 decode to the empty string rather than an error; inbound
// data is recovered, never fatal.
func getFixedString(src []byte) string {
	n := 0
	for n < len(src) && src[n] != 0 {
		n++
	}
	if !utf8.Valid(src[:n]) {
		return ""
	}
	return string(src[:n])
}

// putCountedString writes the fixed bytes of s followed by a 32-bit length
// word holding the truncated byte count.
func putCountedString(dst []byte, s string) {
	capn := len(dst) - 4
	putFixedString(dst[:capn], s)
	n := len(s)
	if n > capn-1 {
		n = capn - 1
	}
	order.PutUint32(dst[capn:], uint32(n))
}

// getCountedString is the inverse of putCountedString. A length word larger
// than the field capacity is clamped, not rejected.
func getCountedString(src []byte) string {
	capn := len(src) - 4
	n := int(order.Uint32(src[capn:]))
	if n > capn-1 {
		n = capn - 1
	}
	b := src[:n]
	for i, c := range b {
		if c == 0 {
			b = b[:i]
			break
		}
	}
	if !utf8.Valid(b) {
		return ""
	}
	return string(b)
}

func putFloat64(dst []byte, v float64) {
	order.PutUint64(dst, math.Float64bits(v))
}

func getFloat64(src []byte) float64 {
	return math.Float64frombits(order.Uint64(src))
}

func putBool(dst []byte, v bool) {
	if v {
		order.PutUint32(dst, 1)
	} else {
		order.PutUint32(dst, 0)
	}
}

// wireCodec bundles the fixed size and the two pure conversion functions for
// one catalog variant. encode reports false when the concrete message type
// does not match the variant, which callers surface as a distinct mismatch
// condition.
type wireCodec struct {
	size   int
	encode func(Message) ([]byte, bool)
	decode func([]byte) Message
}

var codecs = map[TypeID]wireCodec{
	TypePing: {
		size: pingWireSize,
		encode: func(m Message) ([]byte, bool) {
			p, ok := m.(Ping)
			if !ok {
				return nil, false
			}
			buf := make([]byte, pingWireSize)
			order.PutUint32(buf[0:4], uint32(p.Count))
			return buf, true
		},
		decode: func(b []byte) Message {
			return Ping{Count: int32(order.Uint32(b[0:4]))}
		},
	},
	TypePong: {
		size: pongWireSize,
		encode: func(m Message) ([]byte, bool) {
			p, ok := m.(Pong)
			if !ok {
				return nil, false
			}
			buf := make([]byte, pongWireSize)
			order.PutUint32(buf[0:4], uint32(p.Count))
			return buf, true
		},
		decode: func(b []byte) Message {
			return Pong{Count: int32(order.Uint32(b[0:4]))}
		},
	},
	TypeDataRequest: {
		size: dataRequestWireSize,
		encode: func(m Message) ([]byte, bool) {
			r, ok := m.(DataRequest)
			if !ok {
				return nil, false
			}
			buf := make([]byte, dataRequestWireSize)
			order.PutUint32(buf[0:4], uint32(r.RequestID))
			putCountedString(buf[4:], r.Symbol)
			return buf, true
		},
		decode: func(b []byte) Message {
			return DataRequest{
				RequestID: int32(order.Uint32(b[0:4])),
				Symbol:    getCountedString(b[4:dataRequestWireSize]),
			}
		},
	},
	TypeDataResponse: {
		size: dataResponseWireSize,
		encode: func(m Message) ([]byte, bool) {
			r, ok := m.(DataResponse)
			if !ok {
				return nil, false
			}
			buf := make([]byte, dataResponseWireSize)
			order.PutUint32(buf[0:4], uint32(r.RequestID))
			putFloat64(buf[4:12], r.Value)
			putBool(buf[12:16], r.Found)
			return buf, true
		},
		decode: func(b []byte) Message {
			return DataResponse{
				RequestID: int32(order.Uint32(b[0:4])),
				Value:     getFloat64(b[4:12]),
				Found:     order.Uint32(b[12:16]) != 0,
			}
		},
	},
	TypeSubscribe: {
		size: subscribeWireSize,
		encode: func(m Message) ([]byte, bool) {
			s, ok := m.(Subscribe)
			if !ok {
				return nil, false
			}
			buf := make([]byte, subscribeWireSize)
			putFixedString(buf, s.Topic)
			return buf, true
		},
		decode: func(b []byte) Message {
			return Subscribe{Topic: getFixedString(b[:subscribeWireSize])}
		},
	},
	TypeUnsubscribe: {
		size: unsubscribeWireSize,
		encode: func(m Message) ([]byte, bool) {
			s, ok := m.(Unsubscribe)
			if !ok {
				return nil, false
			}
			buf := make([]byte, unsubscribeWireSize)
			putFixedString(buf, s.Topic)
			return buf, true
		},
		decode: func(b []byte) Message {
			return Unsubscribe{Topic: getFixedString(b[:unsubscribeWireSize])}
		},
	},
	TypeMarketUpdate: {
		size: marketUpdateWireSize,
		encode: func(m Message) ([]byte, bool) {
			u, ok := m.(MarketUpdate)
			if !ok {
				return nil, false
			}
			buf := make([]byte, marketUpdateWireSize)
			putFixedString(buf[0:SymbolMax], u.Symbol)
			putFloat64(buf[8:16], u.Price)
			order.PutUint64(buf[16:24], uint64(u.Timestamp))
			order.PutUint32(buf[24:28], uint32(u.Volume))
			return buf, true
		},
		decode: func(b []byte) Message {
			return MarketUpdate{
				Symbol:    getFixedString(b[0:SymbolMax]),
				Price:     getFloat64(b[8:16]),
				Timestamp: int64(order.Uint64(b[16:24])),
				Volume:    int32(order.Uint32(b[24:28])),
			}
		},
	},
	TypeMarketDepth: {
		size: marketDepthWireSize,
		encode: func(m Message) ([]byte, bool) {
			d, ok := m.(MarketDepth)
			if !ok {
				return nil, false
			}
			buf := make([]byte, marketDepthWireSize)
			putFixedString(buf[0:SymbolMax], d.Symbol)
			order.PutUint32(buf[8:12], uint32(d.NumLevels))
			off := 12
			for i := 0; i < DepthLevels; i++ {
				putFloat64(buf[off:off+8], d.BidPrices[i])
				off += 8
			}
			for i := 0; i < DepthLevels; i++ {
				putFloat64(buf[off:off+8], d.AskPrices[i])
				off += 8
			}
			for i := 0; i < DepthLevels; i++ {
				order.PutUint32(buf[off:off+4], uint32(d.BidSizes[i]))
				off += 4
			}
			for i := 0; i < DepthLevels; i++ {
				order.PutUint32(buf[off:off+4], uint32(d.AskSizes[i]))
				off += 4
			}
			return buf, true
		},
		decode: func(b []byte) Message {
			d := MarketDepth{
				Symbol:    getFixedString(b[0:SymbolMax]),
				NumLevels: int32(order.Uint32(b[8:12])),
			}
			off := 12
			for i := 0; i < DepthLevels; i++ {
				d.BidPrices[i] = getFloat64(b[off : off+8])
				off += 8
			}
			for i := 0; i < DepthLevels; i++ {
				d.AskPrices[i] = getFloat64(b[off : off+8])
				off += 8
			}
			for i := 0; i < DepthLevels; i++ {
				d.BidSizes[i] = int32(order.Uint32(b[off : off+4]))
				off += 4
			}
			for i := 0; i < DepthLevels; i++ {
				d.AskSizes[i] = int32(order.Uint32(b[off : off+4]))
				off += 4
			}
			return d
		},
	},
}

// Registered reports whether id belongs to the catalog.
func Registered(id TypeID) bool {
	_, ok := codecs[id]
	return ok
}

// WireSize returns the fixed encoded size for id.
func WireSize(id TypeID) (int, bool) {
	c, ok := codecs[id]
	if !ok {
		return 0, false
	}
	return c.size, true
}

// Encode converts m to its fixed-layout wire form, selected by the message's
// declared type identifier. Returns ErrUnknownType for an identifier absent
// from the catalog and ErrTypeMismatch when the concrete type does not match
// the identifier it declares.
func Encode(m Message) ([]byte, error) {
	c, ok := codecs[m.TypeID()]
	if !ok {
		return nil, ErrUnknownType
	}
	buf, ok := c.encode(m)
	if !ok {
		return nil, ErrTypeMismatch
	}
	return buf, nil
}

// Decode converts wire bytes declared as id back into a catalog message.
// Returns ErrUnknownType for an identifier absent from the catalog and
// ErrShortBuffer when data is smaller than the fixed layout.
func Decode(id TypeID, data []byte) (Message, error) {
	c, ok := codecs[id]
	if !ok {
		return nil, ErrUnknownType
	}
	if len(data) < c.size {
		return nil, ErrShortBuffer
	}
	return c.decode(data), nil
}
