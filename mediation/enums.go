package mediation

// AdType is the mediation ad type of an auction.
type AdType int32

const (
	AdTypeUnknown      AdType = 0
	AdTypeBanner       AdType = 1
	AdTypeInterstitial AdType = 2
	AdTypeRewarded     AdType = 3
)

// AdFormat is the banner creative format.
type AdFormat int32

const (
	AdFormatUnknown     AdFormat = 0
	AdFormatBanner      AdFormat = 1
	AdFormatLeaderboard AdFormat = 2
	AdFormatMrec        AdFormat = 3
	AdFormatAdaptive    AdFormat = 4
)

// Orientation is the requested screen orientation of the ad.
type Orientation int32

const (
	OrientationUnknown   Orientation = 0
	OrientationPortrait  Orientation = 1
	OrientationLandscape Orientation = 2
)
