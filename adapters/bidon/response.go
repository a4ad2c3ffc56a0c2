package bidon

import (
	"github.com/bidon-io/bidon-proxy/errortypes"
	"github.com/bidon-io/bidon-proxy/mediation"
	"github.com/bidon-io/bidon-proxy/openrtb"
	"github.com/bidon-io/bidon-proxy/schema"
	"github.com/bidon-io/bidon-proxy/util/ptrutil"
)

// ResponseFromOpenRTB maps a decoded wire envelope back onto the SDK auction
// response. The envelope must carry a response payload with the auction
// extension attached; bids are partitioned by price into ad_units
// (strictly positive) and no_bids (everything else).
func ResponseFromOpenRTB(env *openrtb.Openrtb) (*schema.AuctionResponse, error) {
	payload := env.GetResponse()
	if payload == nil {
		return nil, &errortypes.Validation{Message: "wire envelope does not carry a response payload"}
	}

	respExt, ok := openrtb.GetExtension[*mediation.AuctionResponseExt](payload, mediation.E_AuctionResponseExt)
	if !ok {
		return nil, &errortypes.Validation{Message: "response is missing the auction extension"}
	}
	if respExt.Segment == nil {
		return nil, &errortypes.Validation{Message: "auction extension is missing the segment"}
	}

	resp := &schema.AuctionResponse{
		AdUnits:                  []schema.AdUnit{},
		AuctionConfigurationID:   ptrutil.ValueOrDefault(respExt.AuctionConfigurationID),
		AuctionConfigurationUID:  ptrutil.ValueOrDefault(respExt.AuctionConfigurationUID),
		AuctionID:                ptrutil.ValueOrDefault(respExt.AuctionID),
		AuctionPricefloor:        ptrutil.ValueOrDefault(respExt.AuctionPricefloor),
		AuctionTimeout:           ptrutil.ValueOrDefault(respExt.AuctionTimeout),
		ExternalWinNotifications: ptrutil.ValueOrDefault(respExt.ExternalWinNotifications),
		Token:                    ptrutil.ValueOrDefault(respExt.Token),
		Segment: schema.Segment{
			ID:  ptrutil.Clone(respExt.Segment.ID),
			UID: ptrutil.Clone(respExt.Segment.UID),
			Ext: ptrutil.Clone(respExt.Segment.Ext),
		},
	}

	for _, seatBid := range payload.Seatbid {
		for _, bid := range seatBid.Bid {
			adUnit, err := convertBid(bid)
			if err != nil {
				return nil, err
			}
			if bid.Price != nil && *bid.Price > 0 {
				resp.AdUnits = append(resp.AdUnits, *adUnit)
			} else {
				resp.NoBids = append(resp.NoBids, *adUnit)
			}
		}
	}

	return resp, nil
}

func convertBid(bid *openrtb.Bid) (*schema.AdUnit, error) {
	bidExt, ok := openrtb.GetExtension[*mediation.BidExt](bid, mediation.E_BidExt)
	if !ok {
		return nil, &errortypes.Validation{Message: "bid is missing the bid extension"}
	}
	if bidExt.Label == nil {
		return nil, &errortypes.Validation{Message: "bid extension is missing the label"}
	}
	if bidExt.BidType == nil {
		return nil, &errortypes.Validation{Message: "bid extension is missing the bid type"}
	}

	adUnit := &schema.AdUnit{
		BidType:  *bidExt.BidType,
		DemandID: ptrutil.ValueOrDefault(bid.Cid),
		Label:    *bidExt.Label,
		UID:      ptrutil.ValueOrDefault(bid.Item),
		Ext:      bidExt.Ext,
	}
	if bid.Price != nil {
		adUnit.Pricefloor = ptrutil.ToPtr(float64(*bid.Price))
	}
	return adUnit, nil
}
