package schema

import "fmt"

// AdType is the auction ad type taken from the request path.
type AdType string

const (
	AdTypeBanner       AdType = "banner"
	AdTypeInterstitial AdType = "interstitial"
	AdTypeRewarded     AdType = "rewarded"
)

// ParseAdType validates an ad type path segment.
func ParseAdType(s string) (AdType, error) {
	switch AdType(s) {
	case AdTypeBanner, AdTypeInterstitial, AdTypeRewarded:
		return AdType(s), nil
	default:
		return "", fmt.Errorf("invalid ad type %q", s)
	}
}
