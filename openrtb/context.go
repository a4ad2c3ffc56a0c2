package openrtb

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Wire names of the AdCOM context and placement messages.
const (
	ContextName             = "com.iabtechlab.adcom.v1.context.Context"
	DistributionChannelName = "com.iabtechlab.adcom.v1.context.DistributionChannel"
	AppName                 = "com.iabtechlab.adcom.v1.context.DistributionChannel.App"
	DeviceName              = "com.iabtechlab.adcom.v1.context.Device"
	GeoName                 = "com.iabtechlab.adcom.v1.context.Geo"
	UserName                = "com.iabtechlab.adcom.v1.context.User"
	RegsName                = "com.iabtechlab.adcom.v1.context.Regs"
	PlacementName           = "com.iabtechlab.adcom.v1.placement.Placement"
	DisplayPlacementName    = "com.iabtechlab.adcom.v1.placement.DisplayPlacement"
	VideoPlacementName      = "com.iabtechlab.adcom.v1.placement.VideoPlacement"
)

// Context is the AdCOM context block serialized into Request.Context.
type Context struct {
	DistributionChannel *DistributionChannel
	Device              *Device
	User                *User
	Regs                *Regs

	Ext ExtensionSet
}

func (m *Context) WireName() string          { return ContextName }
func (m *Context) Extensions() *ExtensionSet { return &m.Ext }

func (m *Context) AppendWire(b []byte) []byte {
	if m.DistributionChannel != nil {
		b = AppendMessage(b, 1, m.DistributionChannel)
	}
	if m.Device != nil {
		b = AppendMessage(b, 2, m.Device)
	}
	if m.User != nil {
		b = AppendMessage(b, 3, m.User)
	}
	if m.Regs != nil {
		b = AppendMessage(b, 4, m.Regs)
	}
	return m.Ext.appendWire(b)
}

func (m *Context) UnmarshalWire(b []byte, reg *Registry) error {
	*m = Context{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1:
			v, n, err := ConsumeBytes(rest, num, typ)
			if err != nil {
				return err
			}
			m.DistributionChannel = new(DistributionChannel)
			if err := m.DistributionChannel.UnmarshalWire(v, reg); err != nil {
				return err
			}
			b = rest[n:]
		case 2:
			v, n, err := ConsumeBytes(rest, num, typ)
			if err != nil {
				return err
			}
			m.Device = new(Device)
			if err := m.Device.UnmarshalWire(v, reg); err != nil {
				return err
			}
			b = rest[n:]
		case 3:
			v, n, err := ConsumeBytes(rest, num, typ)
			if err != nil {
				return err
			}
			m.User = new(User)
			if err := m.User.UnmarshalWire(v, reg); err != nil {
				return err
			}
			b = rest[n:]
		case 4:
			v, n, err := ConsumeBytes(rest, num, typ)
			if err != nil {
				return err
			}
			m.Regs = new(Regs)
			if err := m.Regs.UnmarshalWire(v, reg); err != nil {
				return err
			}
			b = rest[n:]
		default:
			n, err := m.Ext.consumeField(ContextName, num, typ, tagLen, b, reg)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}

// DistributionChannel identifies the publisher-side channel. Only the app
// branch is used here.
type DistributionChannel struct {
	ID   *string
	Name *string
	App  *App

	Ext ExtensionSet
}

func (m *DistributionChannel) WireName() string          { return DistributionChannelName }
func (m *DistributionChannel) Extensions() *ExtensionSet { return &m.Ext }

func (m *DistributionChannel) AppendWire(b []byte) []byte {
	b = AppendString(b, 1, m.ID)
	b = AppendString(b, 2, m.Name)
	if m.App != nil {
		b = AppendMessage(b, 4, m.App)
	}
	return m.Ext.appendWire(b)
}

func (m *DistributionChannel) UnmarshalWire(b []byte, reg *Registry) error {
	*m = DistributionChannel{}
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
			m.Name = &v
			b = rest[n:]
		case 4:
			v, n, err := ConsumeBytes(rest, num, typ)
			if err != nil {
				return err
			}
			m.App = new(App)
			if err := m.App.UnmarshalWire(v, reg); err != nil {
				return err
			}
			b = rest[n:]
		default:
			n, err := m.Ext.consumeField(DistributionChannelName, num, typ, tagLen, b, reg)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}

// App describes the application distributing the placement.
type App struct {
	Bundle *string
	Ver    *string
	Paid   *bool

	Ext ExtensionSet
}

func (m *App) WireName() string          { return AppName }
func (m *App) Extensions() *ExtensionSet { return &m.Ext }

func (m *App) AppendWire(b []byte) []byte {
	b = AppendString(b, 1, m.Bundle)
	b = AppendString(b, 2, m.Ver)
	b = AppendBool(b, 4, m.Paid)
	return m.Ext.appendWire(b)
}

func (m *App) UnmarshalWire(b []byte, reg *Registry) error {
	*m = App{}
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
			m.Bundle = &v
			b = rest[n:]
		case 2:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Ver = &v
			b = rest[n:]
		case 4:
			v, n, err := ConsumeBool(rest, num, typ)
			if err != nil {
				return err
			}
			m.Paid = &v
			b = rest[n:]
		default:
			n, err := m.Ext.consumeField(AppName, num, typ, tagLen, b, reg)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}

// Device describes the device the request originated from.
type Device struct {
	Type    *DeviceType
	UA      *string
	Ifa     *string
	Make    *string
	Model   *string
	OS      *OperatingSystem
	OSV     *string
	HWV     *string
	H       *int32
	W       *int32
	PPI     *int32
	PxRatio *float32
	JS      *bool
	Lang    *string
	Carrier *string
	MCCMNC  *string
	ConType *ConnectionType
	Geo     *Geo
	IP      *string
	IPv6    *string

	Ext ExtensionSet
}

func (m *Device) WireName() string          { return DeviceName }
func (m *Device) Extensions() *ExtensionSet { return &m.Ext }

func (m *Device) AppendWire(b []byte) []byte {
	b = AppendEnum(b, 1, m.Type)
	b = AppendString(b, 2, m.UA)
	b = AppendString(b, 3, m.Ifa)
	b = AppendString(b, 4, m.Make)
	b = AppendString(b, 5, m.Model)
	b = AppendEnum(b, 6, m.OS)
	b = AppendString(b, 7, m.OSV)
	b = AppendString(b, 8, m.HWV)
	b = AppendInt32(b, 9, m.H)
	b = AppendInt32(b, 10, m.W)
	b = AppendInt32(b, 11, m.PPI)
	b = AppendFloat32(b, 12, m.PxRatio)
	b = AppendBool(b, 13, m.JS)
	b = AppendString(b, 14, m.Lang)
	b = AppendString(b, 15, m.Carrier)
	b = AppendString(b, 16, m.MCCMNC)
	b = AppendEnum(b, 17, m.ConType)
	if m.Geo != nil {
		b = AppendMessage(b, 18, m.Geo)
	}
	b = AppendString(b, 19, m.IP)
	b = AppendString(b, 20, m.IPv6)
	return m.Ext.appendWire(b)
}

func (m *Device) UnmarshalWire(b []byte, reg *Registry) error {
	*m = Device{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1:
			v, n, err := ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			dt := DeviceType(v)
			m.Type = &dt
			b = rest[n:]
		case 2:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.UA = &v
			b = rest[n:]
		case 3:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Ifa = &v
			b = rest[n:]
		case 4:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Make = &v
			b = rest[n:]
		case 5:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Model = &v
			b = rest[n:]
		case 6:
			v, n, err := ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			os := OperatingSystem(v)
			m.OS = &os
			b = rest[n:]
		case 7:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.OSV = &v
			b = rest[n:]
		case 8:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.HWV = &v
			b = rest[n:]
		case 9:
			v, n, err := ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			i := int32(v)
			m.H = &i
			b = rest[n:]
		case 10:
			v, n, err := ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			i := int32(v)
			m.W = &i
			b = rest[n:]
		case 11:
			v, n, err := ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			i := int32(v)
			m.PPI = &i
			b = rest[n:]
		case 12:
			v, n, err := ConsumeFloat32(rest, num, typ)
			if err != nil {
				return err
			}
			m.PxRatio = &v
			b = rest[n:]
		case 13:
			v, n, err := ConsumeBool(rest, num, typ)
			if err != nil {
				return err
			}
			m.JS = &v
			b = rest[n:]
		case 14:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Lang = &v
			b = rest[n:]
		case 15:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Carrier = &v
			b = rest[n:]
		case 16:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.MCCMNC = &v
			b = rest[n:]
		case 17:
			v, n, err := ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			ct := ConnectionType(v)
			m.ConType = &ct
			b = rest[n:]
		case 18:
			v, n, err := ConsumeBytes(rest, num, typ)
			if err != nil {
				return err
			}
			m.Geo = new(Geo)
			if err := m.Geo.UnmarshalWire(v, reg); err != nil {
				return err
			}
			b = rest[n:]
		case 19:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.IP = &v
			b = rest[n:]
		case 20:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.IPv6 = &v
			b = rest[n:]
		default:
			n, err := m.Ext.consumeField(DeviceName, num, typ, tagLen, b, reg)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}

// Geo describes the device location.
type Geo struct {
	Type      *LocationType
	Lat       *float32
	Lon       *float32
	Accur     *int32
	Lastfix   *int32
	Country   *string
	City      *string
	Zip       *string
	UTCOffset *int32

	Ext ExtensionSet
}

func (m *Geo) WireName() string          { return GeoName }
func (m *Geo) Extensions() *ExtensionSet { return &m.Ext }

func (m *Geo) AppendWire(b []byte) []byte {
	b = AppendEnum(b, 1, m.Type)
	b = AppendFloat32(b, 2, m.Lat)
	b = AppendFloat32(b, 3, m.Lon)
	b = AppendInt32(b, 4, m.Accur)
	b = AppendInt32(b, 5, m.Lastfix)
	b = AppendString(b, 6, m.Country)
	b = AppendString(b, 7, m.City)
	b = AppendString(b, 8, m.Zip)
	b = AppendInt32(b, 9, m.UTCOffset)
	return m.Ext.appendWire(b)
}

func (m *Geo) UnmarshalWire(b []byte, reg *Registry) error {
	*m = Geo{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1:
			v, n, err := ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			lt := LocationType(v)
			m.Type = &lt
			b = rest[n:]
		case 2:
			v, n, err := ConsumeFloat32(rest, num, typ)
			if err != nil {
				return err
			}
			m.Lat = &v
			b = rest[n:]
		case 3:
			v, n, err := ConsumeFloat32(rest, num, typ)
			if err != nil {
				return err
			}
			m.Lon = &v
			b = rest[n:]
		case 4:
			v, n, err := ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			i := int32(v)
			m.Accur = &i
			b = rest[n:]
		case 5:
			v, n, err := ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			i := int32(v)
			m.Lastfix = &i
			b = rest[n:]
		case 6:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Country = &v
			b = rest[n:]
		case 7:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.City = &v
			b = rest[n:]
		case 8:
			v, n, err := ConsumeString(rest, num, typ)
			if err != nil {
				return err
			}
			m.Zip = &v
			b = rest[n:]
		case 9:
			v, n, err := ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			i := int32(v)
			m.UTCOffset = &i
			b = rest[n:]
		default:
			n, err := m.Ext.consumeField(GeoName, num, typ, tagLen, b, reg)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}

// User describes the human user of the device.
type User struct {
	ID      *string
	Consent *string

	Ext ExtensionSet
}

func (m *User) WireName() string          { return UserName }
func (m *User) Extensions() *ExtensionSet { return &m.Ext }

func (m *User) AppendWire(b []byte) []byte {
	b = AppendString(b, 1, m.ID)
	b = AppendString(b, 2, m.Consent)
	return m.Ext.appendWire(b)
}

func (m *User) UnmarshalWire(b []byte, reg *Registry) error {
	*m = User{}
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
			m.Consent = &v
			b = rest[n:]
		default:
			n, err := m.Ext.consumeField(UserName, num, typ, tagLen, b, reg)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}

// Regs carries the regulatory flags that apply to the request.
type Regs struct {
	Coppa *bool
	GDPR  *bool

	Ext ExtensionSet
}

func (m *Regs) WireName() string          { return RegsName }
func (m *Regs) Extensions() *ExtensionSet { return &m.Ext }

func (m *Regs) AppendWire(b []byte) []byte {
	b = AppendBool(b, 1, m.Coppa)
	b = AppendBool(b, 2, m.GDPR)
	return m.Ext.appendWire(b)
}

func (m *Regs) UnmarshalWire(b []byte, reg *Registry) error {
	*m = Regs{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1:
			v, n, err := ConsumeBool(rest, num, typ)
			if err != nil {
				return err
			}
			m.Coppa = &v
			b = rest[n:]
		case 2:
			v, n, err := ConsumeBool(rest, num, typ)
			if err != nil {
				return err
			}
			m.GDPR = &v
			b = rest[n:]
		default:
			n, err := m.Ext.consumeField(RegsName, num, typ, tagLen, b, reg)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}

// Placement is the AdCOM placement spec serialized into Item.Spec.
type Placement struct {
	Display *DisplayPlacement
	Video   *VideoPlacement
	Reward  *bool

	Ext ExtensionSet
}

func (m *Placement) WireName() string          { return PlacementName }
func (m *Placement) Extensions() *ExtensionSet { return &m.Ext }

func (m *Placement) AppendWire(b []byte) []byte {
	if m.Display != nil {
		b = AppendMessage(b, 1, m.Display)
	}
	if m.Video != nil {
		b = AppendMessage(b, 2, m.Video)
	}
	b = AppendBool(b, 3, m.Reward)
	return m.Ext.appendWire(b)
}

func (m *Placement) UnmarshalWire(b []byte, reg *Registry) error {
	*m = Placement{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1:
			v, n, err := ConsumeBytes(rest, num, typ)
			if err != nil {
				return err
			}
			m.Display = new(DisplayPlacement)
			if err := m.Display.UnmarshalWire(v, reg); err != nil {
				return err
			}
			b = rest[n:]
		case 2:
			v, n, err := ConsumeBytes(rest, num, typ)
			if err != nil {
				return err
			}
			m.Video = new(VideoPlacement)
			if err := m.Video.UnmarshalWire(v, reg); err != nil {
				return err
			}
			b = rest[n:]
		case 3:
			v, n, err := ConsumeBool(rest, num, typ)
			if err != nil {
				return err
			}
			m.Reward = &v
			b = rest[n:]
		default:
			n, err := m.Ext.consumeField(PlacementName, num, typ, tagLen, b, reg)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}

// DisplayPlacement signals a display opportunity.
type DisplayPlacement struct {
	Instl *bool

	Ext ExtensionSet
}

func (m *DisplayPlacement) WireName() string          { return DisplayPlacementName }
func (m *DisplayPlacement) Extensions() *ExtensionSet { return &m.Ext }

func (m *DisplayPlacement) AppendWire(b []byte) []byte {
	b = AppendBool(b, 1, m.Instl)
	return m.Ext.appendWire(b)
}

func (m *DisplayPlacement) UnmarshalWire(b []byte, reg *Registry) error {
	*m = DisplayPlacement{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1:
			v, n, err := ConsumeBool(rest, num, typ)
			if err != nil {
				return err
			}
			m.Instl = &v
			b = rest[n:]
		default:
			n, err := m.Ext.consumeField(DisplayPlacementName, num, typ, tagLen, b, reg)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}

// VideoPlacement signals a video opportunity.
type VideoPlacement struct {
	Ptype *VideoPlacementSubtype

	Ext ExtensionSet
}

func (m *VideoPlacement) WireName() string          { return VideoPlacementName }
func (m *VideoPlacement) Extensions() *ExtensionSet { return &m.Ext }

func (m *VideoPlacement) AppendWire(b []byte) []byte {
	b = AppendEnum(b, 1, m.Ptype)
	return m.Ext.appendWire(b)
}

func (m *VideoPlacement) UnmarshalWire(b []byte, reg *Registry) error {
	*m = VideoPlacement{}
	for len(b) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return protowire.ParseError(tagLen)
		}
		rest := b[tagLen:]
		switch num {
		case 1:
			v, n, err := ConsumeVarint(rest, num, typ)
			if err != nil {
				return err
			}
			pt := VideoPlacementSubtype(v)
			m.Ptype = &pt
			b = rest[n:]
		default:
			n, err := m.Ext.consumeField(VideoPlacementName, num, typ, tagLen, b, reg)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}
