package openrtb

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Wire names of the extendable OpenRTB 3.0 messages.
const (
	RequestName  = "com.iabtechlab.openrtb.v3.Request"
	ItemName     = "com.iabtechlab.openrtb.v3.Item"
	ResponseName = "com.iabtechlab.openrtb.v3.Response"
	SeatBidName  = "com.iabtechlab.openrtb.v3.SeatBid"
	BidName      = "com.iabtechlab.openrtb.v3.Bid"

	openrtbName = "com.iabtechlab.openrtb.v3.Openrtb"
)

// Openrtb is the top-level envelope: a versioned container carrying either a
// request or a response payload.
type Openrtb struct {
	Ver        *string
	Domainspec *string
	Domainver  *string

	// At most one of Request and Response is set.
	Request  *Request
	Response *Response

	Ext ExtensionSet
}

// GetRequest returns the request payload, or nil.
func (m *Openrtb) GetRequest() *Request {
	if m == nil {
		return nil
	}
	return m.Request
}

// GetResponse returns the response payload, or nil.
func (m *Openrtb) GetResponse() *Response {
	if m == nil {
		return nil
	}
	return m.Response
}

func (m *Openrtb) AppendWire(b []byte) []byte {
	b = AppendString(b, 1, m.Ver)
	b = AppendString(b, 2, m.Domainspec)
	b = AppendString(b, 3, m.Domainver)
	if m.Request != nil {
		b = AppendMessage(b, 4, m.Request)
	}
	if m.Response != nil {
		b = AppendMessage(b, 5, m.Response)
	}
	return m.Ext.appendWire(b)
}

func (m *Openrtb) UnmarshalWire(b []byte, reg *Registry) error {
	*m = Openrtb{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Ver = &v
			b = rest[n:]
		case 2:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Domainspec = &v
			b = rest[n:]
		case 3:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Domainver = &v
			b = rest[n:]
		case 4:
			v, n, err := ConsumeBytes(rest, num, typ)
			if err != nil {
				return err
			}
			m.Request = new(Request)
			if err := m.Request.UnmarshalWire(v, reg); err != nil {
				return err
			}
			m.Response = nil
			b = rest[n:]
		case 5:
			v, n, err := ConsumeBytes(rest, num, typ)
			if err != nil {
				return err
			}
			m.Response = new(Response)
			if err := m.Response.UnmarshalWire(v, reg); err != nil {
				return err
			}
			m.Request = nil
			b = rest[n:]
		default:
			n, err := m.Ext.consumeField(openrtbName, num, typ, tagLen, b, reg)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}

// Request is the OpenRTB 3.0 bid request. The Context field carries the
// separately-serialized AdCOM context block as opaque bytes.
type Request struct {
	ID      *string
	Test    *bool
	Tmax    *uint32
	At      *AuctionType
	Cur     []string
	Seat    []string
	Wseat   *bool
	Cdata   *string
	Item    []*Item
	Package *bool
	Context []byte

	Ext ExtensionSet
}

func (m *Request) WireName() string          { return RequestName }
func (m *Request) Extensions() *ExtensionSet { return &m.Ext }

func (m *Request) AppendWire(b []byte) []byte {
	b = AppendString(b, 1, m.ID)
	b = AppendBool(b, 2, m.Test)
	b = AppendUint32(b, 3, m.Tmax)
	b = AppendEnum(b, 4, m.At)
	b = AppendRepeatedString(b, 5, m.Cur)
	b = AppendRepeatedString(b, 6, m.Seat)
	b = AppendBool(b, 7, m.Wseat)
	b = AppendString(b, 8, m.Cdata)
	for _, it := range m.Item {
		b = AppendMessage(b, 10, it)
	}
	b = AppendBool(b, 11, m.Package)
	b = AppendBytes(b, 12, m.Context)
	return m.Ext.appendWire(b)
}

func (m *Request) UnmarshalWire(b []byte, reg *Registry) error {
	*m = Request{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.ID = &v
			b = rest[n:]
		case 2:
			v, n, err := ConsumeBool(rest, num, typ)
			if err != nil {
				return err
			}
			m.Test = &v
			b = rest[n:]
		case 3:
			v, n, err := ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			u := uint32(v)
			m.Tmax = &u
			b = rest[n:]
		case 4:
			v, n, err := ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			at := AuctionType(v)
			m.At = &at
			b = rest[n:]
		case 5:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Cur = append(m.Cur, v)
			b = rest[n:]
		case 6:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Seat = append(m.Seat, v)
			b = rest[n:]
		case 7:
			v, n, err := ConsumeBool(rest, num, typ)
			if err != nil {
				return err
			}
			m.Wseat = &v
			b = rest[n:]
		case 8:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Cdata = &v
			b = rest[n:]
		case 10:
			v, n, err := ConsumeBytes(rest, num, typ)
			if err != nil {
				return err
			}
			it := new(Item)
			if err := it.UnmarshalWire(v, reg); err != nil {
				return err
			}
			m.Item = append(m.Item, it)
			b = rest[n:]
		case 11:
			v, n, err := ConsumeBool(rest, num, typ)
			if err != nil {
				return err
			}
			m.Package = &v
			b = rest[n:]
		case 12:
			v, n, err := ConsumeBytes(rest, num, typ)
			if err != nil {
				return err
			}
			m.Context = v
			b = rest[n:]
		default:
			n, err := m.Ext.consumeField(RequestName, num, typ, tagLen, b, reg)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}

// Item is one unit of inventory offered for sale: the ad placement.
type Item struct {
	ID     *string
	Qty    *uint32
	Seq    *uint32
	Flr    *float32
	Flrcur *string
	Exp    *uint32
	Dlvy   *int32
	Spec   []byte

	Ext ExtensionSet
}

func (m *Item) WireName() string          { return ItemName }
func (m *Item) Extensions() *ExtensionSet { return &m.Ext }

func (m *Item) AppendWire(b []byte) []byte {
	b = AppendString(b, 1, m.ID)
	b = AppendUint32(b, 2, m.Qty)
	b = AppendUint32(b, 4, m.Seq)
	b = AppendFloat32(b, 5, m.Flr)
	b = AppendString(b, 6, m.Flrcur)
	b = AppendUint32(b, 7, m.Exp)
	b = AppendInt32(b, 9, m.Dlvy)
	b = AppendBytes(b, 13, m.Spec)
	return m.Ext.appendWire(b)
}

func (m *Item) UnmarshalWire(b []byte, reg *Registry) error {
	*m = Item{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.ID = &v
			b = rest[n:]
		case 2:
			v, n, err := ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			u := uint32(v)
			m.Qty = &u
			b = rest[n:]
		case 4:
			v, n, err := ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			u := uint32(v)
			m.Seq = &u
			b = rest[n:]
		case 5:
			v, n, err := ConsumeFloat32(rest, num, typ)
			if err != nil {
				return err
			}
			m.Flr = &v
			b = rest[n:]
		case 6:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Flrcur = &v
			b = rest[n:]
		case 7:
			v, n, err := ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			u := uint32(v)
			m.Exp = &u
			b = rest[n:]
		case 9:
			v, n, err := ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			i := int32(v)
			m.Dlvy = &i
			b = rest[n:]
		case 13:
			v, n, err := ConsumeBytes(rest, num, typ)
			if err != nil {
				return err
			}
			m.Spec = v
			b = rest[n:]
		default:
			n, err := m.Ext.consumeField(ItemName, num, typ, tagLen, b, reg)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}

// Response is the OpenRTB 3.0 bid response.
type Response struct {
	ID      *string
	Bidid   *string
	Nbr     *int32
	Cur     *string
	Cdata   *string
	Seatbid []*SeatBid

	Ext ExtensionSet
}

func (m *Response) WireName() string          { return ResponseName }
func (m *Response) Extensions() *ExtensionSet { return &m.Ext }

func (m *Response) AppendWire(b []byte) []byte {
	b = AppendString(b, 1, m.ID)
	b = AppendString(b, 2, m.Bidid)
	b = AppendInt32(b, 3, m.Nbr)
	b = AppendString(b, 4, m.Cur)
	b = AppendString(b, 5, m.Cdata)
	for _, sb := range m.Seatbid {
		b = AppendMessage(b, 6, sb)
	}
	return m.Ext.appendWire(b)
}

func (m *Response) UnmarshalWire(b []byte, reg *Registry) error {
	*m = Response{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.ID = &v
			b = rest[n:]
		case 2:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Bidid = &v
			b = rest[n:]
		case 3:
			v, n, err := ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			i := int32(v)
			m.Nbr = &i
			b = rest[n:]
		case 4:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Cur = &v
			b = rest[n:]
		case 5:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Cdata = &v
			b = rest[n:]
		case 6:
			v, n, err := ConsumeBytes(rest, num, typ)
			if err != nil {
				return err
			}
			sb := new(SeatBid)
			if err := sb.UnmarshalWire(v, reg); err != nil {
				return err
			}
			m.Seatbid = append(m.Seatbid, sb)
			b = rest[n:]
		default:
			n, err := m.Ext.consumeField(ResponseName, num, typ, tagLen, b, reg)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}

// SeatBid is a collection of bids attributed to one upstream bidder.
type SeatBid struct {
	Seat    *string
	Package *bool
	Bid     []*Bid

	Ext ExtensionSet
}

func (m *SeatBid) WireName() string          { return SeatBidName }
func (m *SeatBid) Extensions() *ExtensionSet { return &m.Ext }

func (m *SeatBid) AppendWire(b []byte) []byte {
	b = AppendString(b, 1, m.Seat)
	b = AppendBool(b, 2, m.Package)
	for _, bid := range m.Bid {
		b = AppendMessage(b, 3, bid)
	}
	return m.Ext.appendWire(b)
}

func (m *SeatBid) UnmarshalWire(b []byte, reg *Registry) error {
	*m = SeatBid{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Seat = &v
			b = rest[n:]
		case 2:
			v, n, err := ConsumeBool(rest, num, typ)
			if err != nil {
				return err
			}
			m.Package = &v
			b = rest[n:]
		case 3:
			v, n, err := ConsumeBytes(rest, num, typ)
			if err != nil {
				return err
			}
			bid := new(Bid)
			if err := bid.UnmarshalWire(v, reg); err != nil {
				return err
			}
			m.Bid = append(m.Bid, bid)
			b = rest[n:]
		default:
			n, err := m.Ext.consumeField(SeatBidName, num, typ, tagLen, b, reg)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}

// Bid is one offer to buy an item.
type Bid struct {
	ID     *string
	Item   *string
	Price  *float32
	Deal   *string
	Cid    *string
	Tactic *string
	Purl   *string
	Burl   *string
	Lurl   *string
	Exp    *uint32
	Mid    *string

	Ext ExtensionSet
}

func (m *Bid) WireName() string          { return BidName }
func (m *Bid) Extensions() *ExtensionSet { return &m.Ext }

func (m *Bid) AppendWire(b []byte) []byte {
	b = AppendString(b, 1, m.ID)
	b = AppendString(b, 2, m.Item)
	b = AppendFloat32(b, 3, m.Price)
	b = AppendString(b, 4, m.Deal)
	b = AppendString(b, 5, m.Cid)
	b = AppendString(b, 6, m.Tactic)
	b = AppendString(b, 7, m.Purl)
	b = AppendString(b, 8, m.Burl)
	b = AppendString(b, 9, m.Lurl)
	b = AppendUint32(b, 10, m.Exp)
	b = AppendString(b, 11, m.Mid)
	return m.Ext.appendWire(b)
}

func (m *Bid) UnmarshalWire(b []byte, reg *Registry) error {
	*m = Bid{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.ID = &v
			b = rest[n:]
		case 2:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Item = &v
			b = rest[n:]
		case 3:
			v, n, err := ConsumeFloat32(rest, num, typ)
			if err != nil {
				return err
			}
			m.Price = &v
			b = rest[n:]
		case 4:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Deal = &v
			b = rest[n:]
		case 5:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Cid = &v
			b = rest[n:]
		case 6:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Tactic = &v
			b = rest[n:]
		case 7:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Purl = &v
			b = rest[n:]
		case 8:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Burl = &v
			b = rest[n:]
		case 9:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Lurl = &v
			b = rest[n:]
		case 10:
			v, n, err := ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			u := uint32(v)
			m.Exp = &u
			b = rest[n:]
		case 11:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Mid = &v
			b = rest[n:]
		default:
			n, err := m.Ext.consumeField(BidName, num, typ, tagLen, b, reg)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}
