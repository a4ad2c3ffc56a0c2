package openrtb

// AuctionType is the OpenRTB 3.0 auction type.
type AuctionType int32

const (
	AuctionFirstPrice  AuctionType = 1
	AuctionSecondPrice AuctionType = 2
)

// DeviceType is the AdCOM device type list.
type DeviceType int32

const (
	DeviceTypeMobileTablet DeviceType = 1
	DeviceTypePC           DeviceType = 2
	DeviceTypeTV           DeviceType = 3
	DeviceTypePhone        DeviceType = 4
	DeviceTypeTablet       DeviceType = 5
	DeviceTypeConnected    DeviceType = 6
	DeviceTypeSetTopBox    DeviceType = 7
)

// OperatingSystem is the AdCOM operating system list. Zero stands for
// "Other Not Listed" and is the mapping target for every unknown OS string.
type OperatingSystem int32

const (
	OSOtherNotListed OperatingSystem = 0
	OSAndroid        OperatingSystem = 2
	OSIOS            OperatingSystem = 13
	OSLinux          OperatingSystem = 14
	OSMacOS          OperatingSystem = 15
	OSWindows        OperatingSystem = 28
)

// ConnectionType is the AdCOM connection type list.
type ConnectionType int32

const (
	ConnWired       ConnectionType = 1
	ConnWifi        ConnectionType = 2
	ConnCellUnknown ConnectionType = 3
	ConnCell2G      ConnectionType = 4
	ConnCell3G      ConnectionType = 5
	ConnCell4G      ConnectionType = 6
	ConnCell5G      ConnectionType = 7
)

// LocationType is the AdCOM location source list.
type LocationType int32

const (
	LocationUnknown      LocationType = 0
	LocationGPS          LocationType = 1
	LocationIP           LocationType = 2
	LocationUserProvided LocationType = 3
)

// VideoPlacementSubtype is the AdCOM video placement subtype list.
type VideoPlacementSubtype int32

const (
	VideoInStream     VideoPlacementSubtype = 1
	VideoAccompanying VideoPlacementSubtype = 2
	VideoInterstitial VideoPlacementSubtype = 3
	VideoStandalone   VideoPlacementSubtype = 4
)
