// Package interop defines the closed message catalog shared by both runtime
// islands, together with the fixed-layout wire encoding used to carry a
// message across the island boundary.
//
// Every message variant has a numeric type identifier that is stable on both
// sides of the bridge. The identifier uniquely determines the wire layout and
// the conversion functions; both islands must be built from this catalog.
// Identifiers below 1000 are reserved for runtime control messages (see the
// core package) and never cross the boundary.
package interop

// TypeID identifies a message variant. The id-to-layout mapping must be
// identical in both islands; a mismatch is a build-time defect.
type TypeID = int32

// Catalog type identifiers.
const (
	TypePing         TypeID = 1000
	TypePong         TypeID = 1001
	TypeDataRequest  TypeID = 1002
	TypeDataResponse TypeID = 1003
	TypeSubscribe    TypeID = 1010
	TypeUnsubscribe  TypeID = 1011
	TypeMarketUpdate TypeID = 1012
	TypeMarketDepth  TypeID = 1013
)

// Fixed string capacities. A string field longer than its capacity is
// silently truncated to capacity-1 bytes; the terminator byte is always
// present on the wire.
const (
	// StringMax is the capacity of a general-purpose string field.
	StringMax = 64

	// TopicMax is the capacity of a pub/sub topic field.
	TopicMax = 32

	// SymbolMax is the capacity of a market symbol field.
	SymbolMax = 8

	// DepthLevels is the number of book levels carried by MarketDepth.
	DepthLevels = 5
)

// Message is implemented by every catalog variant.
type Message interface {
	// TypeID returns the variant's numeric identifier.
	TypeID() TypeID
}

// Ping requests a Pong carrying the same count.
type Ping struct {
	Count int32
}

// Pong answers a Ping.
type Pong struct {
	Count int32
}

// DataRequest asks for the current value of a symbol.
type DataRequest struct {
	RequestID int32
	Symbol    string // capacity StringMax
}

// DataResponse answers a DataRequest.
type DataResponse struct {
	RequestID int32
	Value     float64
	Found     bool
}

// Subscribe registers interest in a topic.
type Subscribe struct {
	Topic string // capacity TopicMax
}

// Unsubscribe withdraws interest in a topic.
type Unsubscribe struct {
	Topic string // capacity TopicMax
}

// MarketUpdate is a single price tick for a symbol.
type MarketUpdate struct {
	Symbol    string // capacity SymbolMax
	Price     float64
	Timestamp int64
	Volume    int32
}

// MarketDepth is an order-book snapshot with up to DepthLevels levels.
type MarketDepth struct {
	Symbol    string // capacity SymbolMax
	NumLevels int32
	BidPrices [DepthLevels]float64
	AskPrices [DepthLevels]float64
	BidSizes  [DepthLevels]int32
	AskSizes  [DepthLevels]int32
}

func (Ping) TypeID() TypeID         { return TypePing }
func (Pong) TypeID() TypeID         { return TypePong }
func (DataRequest) TypeID() TypeID  { return TypeDataRequest }
func (DataResponse) TypeID() TypeID { return TypeDataResponse }
func (Subscribe) TypeID() TypeID    { return TypeSubscribe }
func (Unsubscribe) TypeID() TypeID  { return TypeUnsubscribe }
func (MarketUpdate) TypeID() TypeID { return TypeMarketUpdate }
func (MarketDepth) TypeID() TypeID  { return TypeMarketDepth }
