package schema

// AuctionResponse is the body returned to the SDK after a successful
// auction, including the units that did not bid.
type AuctionResponse struct {
	AdUnits                  []AdUnit `json:"ad_units"`
	AuctionConfigurationID   int64    `json:"auction_configuration_id"`
	AuctionConfigurationUID  string   `json:"auction_configuration_uid"`
	AuctionID                string   `json:"auction_id"`
	AuctionPricefloor        float64  `json:"auction_pricefloor"`
	AuctionTimeout           int32    `json:"auction_timeout"`
	ExternalWinNotifications bool     `json:"external_win_notifications"`
	NoBids                   []AdUnit `json:"no_bids,omitempty"`
	Segment                  Segment  `json:"segment"`
	Token                    string   `json:"token"`
}

// AdUnit is one demand source line in the auction result.
type AdUnit struct {
	BidType    string            `json:"bid_type"`
	DemandID   string            `json:"demand_id"`
	Ext        map[string]string `json:"ext,omitempty"`
	Label      string            `json:"label"`
	Pricefloor *float64          `json:"pricefloor,omitempty"`
	UID        string            `json:"uid"`
}
