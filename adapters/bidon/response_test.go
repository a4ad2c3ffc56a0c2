package bidon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidon-io/bidon-proxy/errortypes"
	"github.com/bidon-io/bidon-proxy/mediation"
	"github.com/bidon-io/bidon-proxy/openrtb"
	"github.com/bidon-io/bidon-proxy/util/ptrutil"
)

func wireBid(t *testing.T, price *float32, ext *mediation.BidExt) *openrtb.Bid {
	t.Helper()
	bid := &openrtb.Bid{
		ID:    ptrutil.ToPtr("bid-1"),
		Item:  ptrutil.ToPtr("imp-1"),
		Cid:   ptrutil.ToPtr("bidmachine"),
		Price: price,
	}
	if ext != nil {
		require.NoError(t, openrtb.SetExtension(bid, mediation.E_BidExt, ext))
	}
	return bid
}

func wireResponse(t *testing.T, ext *mediation.AuctionResponseExt, bids ...*openrtb.Bid) *openrtb.Openrtb {
	t.Helper()
	resp := &openrtb.Response{
		ID:      ptrutil.ToPtr("auction-1"),
		Seatbid: []*openrtb.SeatBid{{Seat: ptrutil.ToPtr("mediation"), Bid: bids}},
	}
	if ext != nil {
		require.NoError(t, openrtb.SetExtension(resp, mediation.E_AuctionResponseExt, ext))
	}
	return &openrtb.Openrtb{Ver: ptrutil.ToPtr("3.0"), Response: resp}
}

func auctionExt() *mediation.AuctionResponseExt {
	return &mediation.AuctionResponseExt{
		AuctionID:                ptrutil.ToPtr("auction-1"),
		AuctionConfigurationID:   ptrutil.ToPtr(int64(10617)),
		AuctionConfigurationUID:  ptrutil.ToPtr("1701972528521547776"),
		Token:                    ptrutil.ToPtr("token"),
		AuctionPricefloor:        ptrutil.ToPtr(0.5),
		AuctionTimeout:           ptrutil.ToPtr(int32(30000)),
		ExternalWinNotifications: ptrutil.ToPtr(true),
		Segment:                  &mediation.Segment{ID: ptrutil.ToPtr("seg-1"), UID: ptrutil.ToPtr("seg-uid-1")},
	}
}

func TestResponseFromOpenRTB(t *testing.T) {
	winning := wireBid(t, ptrutil.ToPtr(float32(2.5)), &mediation.BidExt{
		Label:   ptrutil.ToPtr("bidmachine"),
		BidType: ptrutil.ToPtr("RTB"),
		Ext:     map[string]string{"payload": "xyz"},
	})
	losing := wireBid(t, ptrutil.ToPtr(float32(0)), &mediation.BidExt{
		Label:   ptrutil.ToPtr("vungle"),
		BidType: ptrutil.ToPtr("RTB"),
	})

	resp, err := ResponseFromOpenRTB(wireResponse(t, auctionExt(), winning, losing))
	require.NoError(t, err)

	assert.Equal(t, "auction-1", resp.AuctionID)
	assert.Equal(t, int64(10617), resp.AuctionConfigurationID)
	assert.Equal(t, "1701972528521547776", resp.AuctionConfigurationUID)
	assert.Equal(t, "token", resp.Token)
	assert.Equal(t, 0.5, resp.AuctionPricefloor)
	assert.Equal(t, int32(30000), resp.AuctionTimeout)
	assert.True(t, resp.ExternalWinNotifications)
	assert.Equal(t, "seg-1", *resp.Segment.ID)
	assert.Equal(t, "seg-uid-1", *resp.Segment.UID)

	require.Len(t, resp.AdUnits, 1)
	won := resp.AdUnits[0]
	assert.Equal(t, "bidmachine", won.Label)
	assert.Equal(t, "bidmachine", won.DemandID)
	assert.Equal(t, "RTB", won.BidType)
	assert.Equal(t, "imp-1", won.UID)
	assert.Equal(t, 2.5, *won.Pricefloor)
	assert.Equal(t, map[string]string{"payload": "xyz"}, won.Ext)

	require.Len(t, resp.NoBids, 1)
	assert.Equal(t, "vungle", resp.NoBids[0].Label)
	assert.Equal(t, float64(0), *resp.NoBids[0].Pricefloor)
}

func TestResponseFromOpenRTBPricePartition(t *testing.T) {
	ext := func(label string) *mediation.BidExt {
		return &mediation.BidExt{Label: ptrutil.ToPtr(label), BidType: ptrutil.ToPtr("RTB")}
	}

	resp, err := ResponseFromOpenRTB(wireResponse(t, auctionExt(),
		wireBid(t, ptrutil.ToPtr(float32(0.01)), ext("pos")),
		wireBid(t, ptrutil.ToPtr(float32(0)), ext("zero")),
		wireBid(t, nil, ext("absent")),
	))
	require.NoError(t, err)

	require.Len(t, resp.AdUnits, 1)
	assert.Equal(t, "pos", resp.AdUnits[0].Label)

	require.Len(t, resp.NoBids, 2)
	assert.Equal(t, "zero", resp.NoBids[0].Label)
	assert.Equal(t, "absent", resp.NoBids[1].Label)
	assert.Nil(t, resp.NoBids[1].Pricefloor)
}

func TestResponseFromOpenRTBNoBidsAtAll(t *testing.T) {
	resp, err := ResponseFromOpenRTB(wireResponse(t, auctionExt()))
	require.NoError(t, err)

	assert.NotNil(t, resp.AdUnits)
	assert.Empty(t, resp.AdUnits)
	assert.Empty(t, resp.NoBids)
}

func TestResponseFromOpenRTBDefaultsForAbsentFields(t *testing.T) {
	resp, err := ResponseFromOpenRTB(wireResponse(t, &mediation.AuctionResponseExt{
		Segment: &mediation.Segment{},
	}))
	require.NoError(t, err)

	assert.Zero(t, resp.AuctionID)
	assert.Zero(t, resp.AuctionConfigurationID)
	assert.Zero(t, resp.AuctionPricefloor)
	assert.Zero(t, resp.AuctionTimeout)
	assert.False(t, resp.ExternalWinNotifications)
	assert.Zero(t, resp.Token)
}

func TestResponseFromOpenRTBValidation(t *testing.T) {
	requireValidation := func(t *testing.T, err error) {
		t.Helper()
		require.Error(t, err)
		var verr *errortypes.Validation
		assert.ErrorAs(t, err, &verr)
	}

	t.Run("request payload instead of response", func(t *testing.T) {
		env := &openrtb.Openrtb{Request: &openrtb.Request{ID: ptrutil.ToPtr("auction-1")}}
		_, err := ResponseFromOpenRTB(env)
		requireValidation(t, err)
	})

	t.Run("missing auction extension", func(t *testing.T) {
		_, err := ResponseFromOpenRTB(wireResponse(t, nil))
		requireValidation(t, err)
	})

	t.Run("missing segment", func(t *testing.T) {
		ext := auctionExt()
		ext.Segment = nil
		_, err := ResponseFromOpenRTB(wireResponse(t, ext))
		requireValidation(t, err)
	})

	t.Run("bid without extension", func(t *testing.T) {
		_, err := ResponseFromOpenRTB(wireResponse(t, auctionExt(), wireBid(t, ptrutil.ToPtr(float32(1)), nil)))
		requireValidation(t, err)
	})

	t.Run("bid without label", func(t *testing.T) {
		_, err := ResponseFromOpenRTB(wireResponse(t, auctionExt(), wireBid(t, ptrutil.ToPtr(float32(1)), &mediation.BidExt{
			BidType: ptrutil.ToPtr("RTB"),
		})))
		requireValidation(t, err)
	})

	t.Run("bid without bid type", func(t *testing.T) {
		_, err := ResponseFromOpenRTB(wireResponse(t, auctionExt(), wireBid(t, ptrutil.ToPtr(float32(1)), &mediation.BidExt{
			Label: ptrutil.ToPtr("bidmachine"),
		})))
		requireValidation(t, err)
	})
}
