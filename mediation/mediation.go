package mediation

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bidon-io/bidon-proxy/openrtb"
)

// RequestExt is the request-level mediation payload: what kind of auction
// this is and which SDK adapters the client ships.
type RequestExt struct {
	AdType   *AdType
	Adapters map[string]*SdkAdapter
	Ext      *string
}

func (m *RequestExt) AppendWire(b []byte) []byte {
	b = openrtb.AppendEnum(b, 1, m.AdType)
	for _, k := range sortedKeys(m.Adapters) {
		b = appendMapEntry(b, 2, k, m.Adapters[k].AppendWire(nil))
	}
	b = openrtb.AppendString(b, 3, m.Ext)
	return b
}

func (m *RequestExt) UnmarshalWire(b []byte, reg *openrtb.Registry) error {
	*m = RequestExt{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1:
			v, n, err := openrtb.ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			at := AdType(v)
			m.AdType = &at
			b = rest[n:]
		case 2:
			key, val, n, err := consumeMapEntry(rest, num, typ)
			if err != nil {
				return err
			}
			adapter := new(SdkAdapter)
			if err := adapter.UnmarshalWire(val, reg); err != nil {
				return err
			}
			if m.Adapters == nil {
				m.Adapters = make(map[string]*SdkAdapter)
			}
			m.Adapters[key] = adapter
			b = rest[n:]
		case 3:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Ext = &v
			b = rest[n:]
		default:
			n, err := skipField(rest, num, typ)
			if err != nil {
				return err
			}
			b = rest[n:]
		}
	}
	return nil
}

// SdkAdapter is one mediation network adapter bundled with the client SDK.
type SdkAdapter struct {
	Version    *string
	SdkVersion *string
}

func (m *SdkAdapter) AppendWire(b []byte) []byte {
	b = openrtb.AppendString(b, 1, m.Version)
	b = openrtb.AppendString(b, 2, m.SdkVersion)
	return b
}

func (m *SdkAdapter) UnmarshalWire(b []byte, _ *openrtb.Registry) error {
	*m = SdkAdapter{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Version = &v
			b = rest[n:]
		case 2:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.SdkVersion = &v
			b = rest[n:]
		default:
			n, err := skipField(rest, num, typ)
			if err != nil {
				return err
			}
			b = rest[n:]
		}
	}
	return nil
}

// AppExt carries SDK identification data about the publisher application.
type AppExt struct {
	Key              *string
	Framework        *string
	FrameworkVersion *string
	PluginVersion    *string
	SdkVersion       *string
	Skadn            []string
	BidonVersion     *string
}

func (m *AppExt) AppendWire(b []byte) []byte {
	b = openrtb.AppendString(b, 1, m.Key)
	b = openrtb.AppendString(b, 2, m.Framework)
	b = openrtb.AppendString(b, 3, m.FrameworkVersion)
	b = openrtb.AppendString(b, 4, m.PluginVersion)
	b = openrtb.AppendString(b, 5, m.SdkVersion)
	b = openrtb.AppendRepeatedString(b, 6, m.Skadn)
	b = openrtb.AppendString(b, 7, m.BidonVersion)
	return b
}

func (m *AppExt) UnmarshalWire(b []byte, _ *openrtb.Registry) error {
	*m = AppExt{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1, 2, 3, 4, 5, 7:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			switch num {
			case 1:
				m.Key = &v
			case 2:
				m.Framework = &v
			case 3:
				m.FrameworkVersion = &v
			case 4:
				m.PluginVersion = &v
			case 5:
				m.SdkVersion = &v
			case 7:
				m.BidonVersion = &v
			}
			b = rest[n:]
		case 6:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Skadn = append(m.Skadn, v)
			b = rest[n:]
		default:
			n, err := skipField(rest, num, typ)
			if err != nil {
				return err
			}
			b = rest[n:]
		}
	}
	return nil
}

// DeviceExt carries the SDK session telemetry attached to the device.
type DeviceExt struct {
	ID                        *string
	LaunchTs                  *int64
	LaunchMonotonicTs         *int64
	StartTs                   *int64
	StartMonotonicTs          *int64
	Ts                        *int64
	MonotonicTs               *int64
	MemoryWarningsTs          []int64
	MemoryWarningsMonotonicTs []int64
	RAMUsed                   *int64
	RAMSize                   *int64
	StorageFree               *int64
	StorageUsed               *int64
	Battery                   *float64
	CPUUsage                  *float64
}

func (m *DeviceExt) AppendWire(b []byte) []byte {
	b = openrtb.AppendString(b, 1, m.ID)
	b = openrtb.AppendInt64(b, 2, m.LaunchTs)
	b = openrtb.AppendInt64(b, 3, m.LaunchMonotonicTs)
	b = openrtb.AppendInt64(b, 4, m.StartTs)
	b = openrtb.AppendInt64(b, 5, m.StartMonotonicTs)
	b = openrtb.AppendInt64(b, 6, m.Ts)
	b = openrtb.AppendInt64(b, 7, m.MonotonicTs)
	b = openrtb.AppendRepeatedInt64(b, 8, m.MemoryWarningsTs)
	b = openrtb.AppendRepeatedInt64(b, 9, m.MemoryWarningsMonotonicTs)
	b = openrtb.AppendInt64(b, 10, m.RAMUsed)
	b = openrtb.AppendInt64(b, 11, m.RAMSize)
	b = openrtb.AppendInt64(b, 12, m.StorageFree)
	b = openrtb.AppendInt64(b, 13, m.StorageUsed)
	b = openrtb.AppendFloat64(b, 14, m.Battery)
	b = openrtb.AppendFloat64(b, 15, m.CPUUsage)
	return b
}

func (m *DeviceExt) UnmarshalWire(b []byte, _ *openrtb.Registry) error {
	*m = DeviceExt{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.ID = &v
			b = rest[n:]
		case 2, 3, 4, 5, 6, 7, 10, 11, 12, 13:
			v, n, err := openrtb.ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			i := int64(v)
			switch num {
			case 2:
				m.LaunchTs = &i
			case 3:
				m.LaunchMonotonicTs = &i
			case 4:
				m.StartTs = &i
			case 5:
				m.StartMonotonicTs = &i
			case 6:
				m.Ts = &i
			case 7:
				m.MonotonicTs = &i
			case 10:
				m.RAMUsed = &i
			case 11:
				m.RAMSize = &i
			case 12:
				m.StorageFree = &i
			case 13:
				m.StorageUsed = &i
			}
			b = rest[n:]
		case 8:
			v, n, err := openrtb.ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			m.MemoryWarningsTs = append(m.MemoryWarningsTs, int64(v))
			b = rest[n:]
		case 9:
			v, n, err := openrtb.ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			m.MemoryWarningsMonotonicTs = append(m.MemoryWarningsMonotonicTs, int64(v))
			b = rest[n:]
		case 14:
			v, n, err := openrtb.ConsumeFloat64(rest, num, typ)
			if err != nil {
				return err
			}
			m.Battery = &v
			b = rest[n:]
		case 15:
			v, n, err := openrtb.ConsumeFloat64(rest, num, typ)
			if err != nil {
				return err
			}
			m.CPUUsage = &v
			b = rest[n:]
		default:
			n, err := skipField(rest, num, typ)
			if err != nil {
				return err
			}
			b = rest[n:]
		}
	}
	return nil
}

// UserExt carries the SDK user identifiers and segment assignments that do
// not fit the standard user object.
type UserExt struct {
	Idfa                        *string
	TrackingAuthorizationStatus *string
	Idfv                        *string
	Idg                         *string
	Segments                    []*Segment
}

func (m *UserExt) AppendWire(b []byte) []byte {
	b = openrtb.AppendString(b, 1, m.Idfa)
	b = openrtb.AppendString(b, 2, m.TrackingAuthorizationStatus)
	b = openrtb.AppendString(b, 3, m.Idfv)
	b = openrtb.AppendString(b, 4, m.Idg)
	for _, s := range m.Segments {
		b = openrtb.AppendMessage(b, 5, s)
	}
	return b
}

func (m *UserExt) UnmarshalWire(b []byte, reg *openrtb.Registry) error {
	*m = UserExt{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Idfa = &v
			b = rest[n:]
		case 2:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.TrackingAuthorizationStatus = &v
			b = rest[n:]
		case 3:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Idfv = &v
			b = rest[n:]
		case 4:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Idg = &v
			b = rest[n:]
		case 5:
			v, n, err := openrtb.ConsumeBytes(rest, num, typ)
			if err != nil {
				return err
			}
			s := new(Segment)
			if err := s.UnmarshalWire(v, reg); err != nil {
				return err
			}
			m.Segments = append(m.Segments, s)
			b = rest[n:]
		default:
			n, err := skipField(rest, num, typ)
			if err != nil {
				return err
			}
			b = rest[n:]
		}
	}
	return nil
}

// Segment is one audience segment assignment.
type Segment struct {
	ID  *string
	UID *string
	Ext *string
}

func (m *Segment) AppendWire(b []byte) []byte {
	b = openrtb.AppendString(b, 1, m.ID)
	b = openrtb.AppendString(b, 2, m.UID)
	b = openrtb.AppendString(b, 3, m.Ext)
	return b
}

func (m *Segment) UnmarshalWire(b []byte, _ *openrtb.Registry) error {
	*m = Segment{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.ID = &v
			b = rest[n:]
		case 2:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.UID = &v
			b = rest[n:]
		case 3:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Ext = &v
			b = rest[n:]
		default:
			n, err := skipField(rest, num, typ)
			if err != nil {
				return err
			}
			b = rest[n:]
		}
	}
	return nil
}

// RegsExt carries privacy regulation strings beyond the standard flags.
type RegsExt struct {
	UsPrivacy *string
	EuPrivacy *string
	Iab       *string
}

func (m *RegsExt) AppendWire(b []byte) []byte {
	b = openrtb.AppendString(b, 1, m.UsPrivacy)
	b = openrtb.AppendString(b, 2, m.EuPrivacy)
	b = openrtb.AppendString(b, 3, m.Iab)
	return b
}

func (m *RegsExt) UnmarshalWire(b []byte, _ *openrtb.Registry) error {
	*m = RegsExt{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.UsPrivacy = &v
			b = rest[n:]
		case 2:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.EuPrivacy = &v
			b = rest[n:]
		case 3:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Iab = &v
			b = rest[n:]
		default:
			n, err := skipField(rest, num, typ)
			if err != nil {
				return err
			}
			b = rest[n:]
		}
	}
	return nil
}

// AdObjectExt is the per-item mediation payload: the auction identity, its
// configuration, and the demand tokens collected by the client.
type AdObjectExt struct {
	AuctionID               *string
	AuctionKey              *string
	AuctionConfigurationID  *int64
	AuctionConfigurationUID *string
	Orientation             *Orientation
	Demands                 map[string]*Demand
	Banner                  *BannerAd
	Interstitial            *string
	Rewarded                *string
}

func (m *AdObjectExt) AppendWire(b []byte) []byte {
	b = openrtb.AppendString(b, 1, m.AuctionID)
	b = openrtb.AppendString(b, 2, m.AuctionKey)
	b = openrtb.AppendInt64(b, 3, m.AuctionConfigurationID)
	b = openrtb.AppendString(b, 4, m.AuctionConfigurationUID)
	b = openrtb.AppendEnum(b, 5, m.Orientation)
	for _, k := range sortedKeys(m.Demands) {
		b = appendMapEntry(b, 6, k, m.Demands[k].AppendWire(nil))
	}
	if m.Banner != nil {
		b = openrtb.AppendMessage(b, 7, m.Banner)
	}
	b = openrtb.AppendString(b, 8, m.Interstitial)
	b = openrtb.AppendString(b, 9, m.Rewarded)
	return b
}

func (m *AdObjectExt) UnmarshalWire(b []byte, reg *openrtb.Registry) error {
	*m = AdObjectExt{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.AuctionID = &v
			b = rest[n:]
		case 2:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.AuctionKey = &v
			b = rest[n:]
		case 3:
			v, n, err := openrtb.ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			i := int64(v)
			m.AuctionConfigurationID = &i
			b = rest[n:]
		case 4:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.AuctionConfigurationUID = &v
			b = rest[n:]
		case 5:
			v, n, err := openrtb.ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			o := Orientation(v)
			m.Orientation = &o
			b = rest[n:]
		case 6:
			key, val, n, err := consumeMapEntry(rest, num, typ)
			if err != nil {
				return err
			}
			d := new(Demand)
			if err := d.UnmarshalWire(val, reg); err != nil {
				return err
			}
			if m.Demands == nil {
				m.Demands = make(map[string]*Demand)
			}
			m.Demands[key] = d
			b = rest[n:]
		case 7:
			v, n, err := openrtb.ConsumeBytes(rest, num, typ)
			if err != nil {
				return err
			}
			m.Banner = new(BannerAd)
			if err := m.Banner.UnmarshalWire(v, reg); err != nil {
				return err
			}
			b = rest[n:]
		case 8:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Interstitial = &v
			b = rest[n:]
		case 9:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Rewarded = &v
			b = rest[n:]
		default:
			n, err := skipField(rest, num, typ)
			if err != nil {
				return err
			}
			b = rest[n:]
		}
	}
	return nil
}

// Demand is one bidding network's token material for an auction.
type Demand struct {
	Token         *string
	Status        *string
	TokenStartTs  *int64
	TokenFinishTs *int64
}

func (m *Demand) AppendWire(b []byte) []byte {
	b = openrtb.AppendString(b, 1, m.Token)
	b = openrtb.AppendString(b, 2, m.Status)
	b = openrtb.AppendInt64(b, 3, m.TokenStartTs)
	b = openrtb.AppendInt64(b, 4, m.TokenFinishTs)
	return b
}

func (m *Demand) UnmarshalWire(b []byte, _ *openrtb.Registry) error {
	*m = Demand{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Token = &v
			b = rest[n:]
		case 2:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Status = &v
			b = rest[n:]
		case 3:
			v, n, err := openrtb.ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			i := int64(v)
			m.TokenStartTs = &i
			b = rest[n:]
		case 4:
			v, n, err := openrtb.ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			i := int64(v)
			m.TokenFinishTs = &i
			b = rest[n:]
		default:
			n, err := skipField(rest, num, typ)
			if err != nil {
				return err
			}
			b = rest[n:]
		}
	}
	return nil
}

// BannerAd describes the banner slot of an ad object.
type BannerAd struct {
	Format *AdFormat
}

func (m *BannerAd) AppendWire(b []byte) []byte {
	return openrtb.AppendEnum(b, 1, m.Format)
}

func (m *BannerAd) UnmarshalWire(b []byte, _ *openrtb.Registry) error {
	*m = BannerAd{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1:
			v, n, err := openrtb.ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			f := AdFormat(v)
			m.Format = &f
			b = rest[n:]
		default:
			n, err := skipField(rest, num, typ)
			if err != nil {
				return err
			}
			b = rest[n:]
		}
	}
	return nil
}

// BidExt is the per-bid mediation payload returned by the bidding engine.
type BidExt struct {
	Label   *string
	BidType *string
	Ext     map[string]string
}

func (m *BidExt) AppendWire(b []byte) []byte {
	b = openrtb.AppendString(b, 1, m.Label)
	b = openrtb.AppendString(b, 2, m.BidType)
	for _, k := range sortedKeys(m.Ext) {
		b = appendMapEntry(b, 3, k, []byte(m.Ext[k]))
	}
	return b
}

func (m *BidExt) UnmarshalWire(b []byte, _ *openrtb.Registry) error {
	*m = BidExt{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Label = &v
			b = rest[n:]
		case 2:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.BidType = &v
			b = rest[n:]
		case 3:
			key, val, n, err := consumeMapEntry(rest, num, typ)
			if err != nil {
				return err
			}
			if m.Ext == nil {
				m.Ext = make(map[string]string)
			}
			m.Ext[key] = string(val)
			b = rest[n:]
		default:
			n, err := skipField(rest, num, typ)
			if err != nil {
				return err
			}
			b = rest[n:]
		}
	}
	return nil
}

// AuctionResponseExt is the response-level mediation payload: the auction
// identity echoed back plus the engine's auction settings.
type AuctionResponseExt struct {
	AuctionID                *string
	AuctionConfigurationID   *int64
	AuctionConfigurationUID  *string
	Token                    *string
	AuctionPricefloor        *float64
	AuctionTimeout           *int32
	ExternalWinNotifications *bool
	Segment                  *Segment
}

func (m *AuctionResponseExt) AppendWire(b []byte) []byte {
	b = openrtb.AppendString(b, 1, m.AuctionID)
	b = openrtb.AppendInt64(b, 2, m.AuctionConfigurationID)
	b = openrtb.AppendString(b, 3, m.AuctionConfigurationUID)
	b = openrtb.AppendString(b, 4, m.Token)
	b = openrtb.AppendFloat64(b, 5, m.AuctionPricefloor)
	b = openrtb.AppendInt32(b, 6, m.AuctionTimeout)
	b = openrtb.AppendBool(b, 7, m.ExternalWinNotifications)
	if m.Segment != nil {
		b = openrtb.AppendMessage(b, 8, m.Segment)
	}
	return b
}

func (m *AuctionResponseExt) UnmarshalWire(b []byte, reg *openrtb.Registry) error {
	*m = AuctionResponseExt{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.AuctionID = &v
			b = rest[n:]
		case 2:
			v, n, err := openrtb.ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			i := int64(v)
			m.AuctionConfigurationID = &i
			b = rest[n:]
		case 3:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.AuctionConfigurationUID = &v
			b = rest[n:]
		case 4:
			v, n, err := openrtb.ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Token = &v
			b = rest[n:]
		case 5:
			v, n, err := openrtb.ConsumeFloat64(rest, num, typ)
			if err != nil {
				return err
			}
			m.AuctionPricefloor = &v
			b = rest[n:]
		case 6:
			v, n, err := openrtb.ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			i := int32(v)
			m.AuctionTimeout = &i
			b = rest[n:]
		case 7:
			v, n, err := openrtb.ConsumeBool(rest, num, typ)
			if err != nil {
				return err
			}
			m.ExternalWinNotifications = &v
			b = rest[n:]
		case 8:
			v, n, err := openrtb.ConsumeBytes(rest, num, typ)
			if err != nil {
				return err
			}
			m.Segment = new(Segment)
			if err := m.Segment.UnmarshalWire(v, reg); err != nil {
				return err
			}
			b = rest[n:]
		default:
			n, err := skipField(rest, num, typ)
			if err != nil {
				return err
			}
			b = rest[n:]
		}
	}
	return nil
}
