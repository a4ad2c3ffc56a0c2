// Package schema holds the JSON request and response models spoken with the
// Bidon client SDKs. Field names are the SDK wire contract and must not
// change between releases.
package schema

import (
	"encoding/json"

	"github.com/gofrs/uuid"
)

// AuctionRequest is the body of a POST /v2/auction/{ad_type} call.
type AuctionRequest struct {
	App      App                `json:"app"`
	Device   Device             `json:"device"`
	Ext      *string            `json:"ext,omitempty"`
	Geo      *Geo               `json:"geo,omitempty"`
	Regs     *Regulations       `json:"regs,omitempty"`
	Segment  *Segment           `json:"segment,omitempty"`
	Session  Session            `json:"session"`
	Token    *string            `json:"token,omitempty"`
	User     User               `json:"user"`
	AdObject AdObject           `json:"ad_object"`
	Adapters map[string]Adapter `json:"adapters"`
	Test     *bool              `json:"test,omitempty"`
	TMax     *int64             `json:"tmax,omitempty"`
}

type App struct {
	Bundle           string   `json:"bundle"`
	Framework        string   `json:"framework"`
	FrameworkVersion *string  `json:"framework_version,omitempty"`
	Key              string   `json:"key"`
	PluginVersion    *string  `json:"plugin_version,omitempty"`
	SDKVersion       *string  `json:"sdk_version,omitempty"`
	SKAdN            []string `json:"skadn,omitempty"`
	Version          string   `json:"version"`
}

// Device connection types reported by the SDK.
const (
	ConnectionEthernet        = "ETHERNET"
	ConnectionWIFI            = "WIFI"
	ConnectionCellular        = "CELLULAR"
	ConnectionCellularUnknown = "CELLULAR_UNKNOWN"
	ConnectionCellular2G      = "CELLULAR_2_G"
	ConnectionCellular3G      = "CELLULAR_3_G"
	ConnectionCellular4G      = "CELLULAR_4_G"
	ConnectionCellular5G      = "CELLULAR_5_G"
)

// Device types reported by the SDK.
const (
	DeviceTypePhone  = "PHONE"
	DeviceTypeTablet = "TABLET"
)

type Device struct {
	Carrier        *string `json:"carrier,omitempty"`
	ConnectionType string  `json:"connection_type"`
	Geo            *Geo    `json:"geo,omitempty"`
	H              int32   `json:"h"`
	HWV            string  `json:"hwv"`
	JS             int32   `json:"js"`
	Language       string  `json:"language"`
	Make           string  `json:"make"`
	MCCMNC         *string `json:"mccmnc,omitempty"`
	Model          string  `json:"model"`
	OS             string  `json:"os"`
	OSV            string  `json:"osv"`
	PPI            int32   `json:"ppi"`
	PXRatio        float64 `json:"pxratio"`
	Type           *string `json:"type,omitempty"`
	UA             string  `json:"ua"`
	W              int32   `json:"w"`
}

type Geo struct {
	Accuracy  *float64 `json:"accuracy,omitempty"`
	City      *string  `json:"city,omitempty"`
	Country   *string  `json:"country,omitempty"`
	Lastfix   *int32   `json:"lastfix,omitempty"`
	Lat       *float64 `json:"lat,omitempty"`
	Lon       *float64 `json:"lon,omitempty"`
	UTCOffset *int32   `json:"utcoffset,omitempty"`
	Zip       *string  `json:"zip,omitempty"`
}

type Session struct {
	Battery                   float64   `json:"battery"`
	CPUUsage                  float64   `json:"cpu_usage"`
	ID                        uuid.UUID `json:"id"`
	LaunchMonotonicTs         int64     `json:"launch_monotonic_ts"`
	LaunchTs                  int64     `json:"launch_ts"`
	MemoryWarningsMonotonicTs []int64   `json:"memory_warnings_monotonic_ts"`
	MemoryWarningsTs          []int64   `json:"memory_warnings_ts"`
	MonotonicTs               int64     `json:"monotonic_ts"`
	RAMSize                   int64     `json:"ram_size"`
	RAMUsed                   int64     `json:"ram_used"`
	StartMonotonicTs          int64     `json:"start_monotonic_ts"`
	StartTs                   int64     `json:"start_ts"`
	StorageFree               *int64    `json:"storage_free,omitempty"`
	StorageUsed               *int64    `json:"storage_used,omitempty"`
	Ts                        int64     `json:"ts"`
}

type User struct {
	Consent                     map[string]any `json:"consent,omitempty"`
	Coppa                       *bool          `json:"coppa,omitempty"`
	IDFA                        *uuid.UUID     `json:"idfa,omitempty"`
	IDFV                        *uuid.UUID     `json:"idfv,omitempty"`
	IDG                         *uuid.UUID     `json:"idg,omitempty"`
	TrackingAuthorizationStatus string         `json:"tracking_authorization_status"`
}

type Regulations struct {
	Coppa     *bool          `json:"coppa,omitempty"`
	EUPrivacy *string        `json:"eu_privacy,omitempty"`
	GDPR      *bool          `json:"gdpr,omitempty"`
	IAB       map[string]any `json:"iab,omitempty"`
	USPrivacy *string        `json:"us_privacy,omitempty"`
}

type Segment struct {
	Ext *string `json:"ext,omitempty"`
	ID  *string `json:"id,omitempty"`
	UID *string `json:"uid,omitempty"`
}

// Ad object orientations.
const (
	OrientationPortrait  = "PORTRAIT"
	OrientationLandscape = "LANDSCAPE"
)

// AdObject describes the auction the SDK is running and carries the demand
// token material collected on device. Demand entries are kept raw; their
// shape is validated during translation.
type AdObject struct {
	AuctionConfigurationID  *int64                     `json:"auction_configuration_id,omitempty"`
	AuctionConfigurationUID *string                    `json:"auction_configuration_uid,omitempty"`
	AuctionID               *string                    `json:"auction_id,omitempty"`
	AuctionKey              *string                    `json:"auction_key,omitempty"`
	AuctionPricefloor       float64                    `json:"auction_pricefloor"`
	Banner                  *BannerAdObject            `json:"banner,omitempty"`
	Demands                 map[string]json.RawMessage `json:"demands"`
	Interstitial            json.RawMessage            `json:"interstitial,omitempty"`
	Orientation             *string                    `json:"orientation,omitempty"`
	Rewarded                json.RawMessage            `json:"rewarded,omitempty"`
}

// Banner formats.
const (
	AdFormatBanner      = "BANNER"
	AdFormatLeaderboard = "LEADERBOARD"
	AdFormatMREC        = "MREC"
	AdFormatAdaptive    = "ADAPTIVE"
)

type BannerAdObject struct {
	Format string `json:"format"`
}

// Adapter is one mediation network adapter bundled with the client SDK.
type Adapter struct {
	SDKVersion string `json:"sdk_version"`
	Version    string `json:"version"`
}
