package mediation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidon-io/bidon-proxy/openrtb"
	"github.com/bidon-io/bidon-proxy/util/ptrutil"
)

func TestRequestExtRoundTrip(t *testing.T) {
	ext := &RequestExt{
		AdType: ptrutil.ToPtr(AdTypeBanner),
		Adapters: map[string]*SdkAdapter{
			"bidmachine": {Version: ptrutil.ToPtr("0.4.1"), SdkVersion: ptrutil.ToPtr("3.0.1")},
			"vungle":     {Version: ptrutil.ToPtr("0.4.0")},
		},
		Ext: ptrutil.ToPtr(`{"custom":1}`),
	}

	var got RequestExt
	require.NoError(t, got.UnmarshalWire(ext.AppendWire(nil), nil))

	assert.Equal(t, AdTypeBanner, *got.AdType)
	require.Len(t, got.Adapters, 2)
	assert.Equal(t, "0.4.1", *got.Adapters["bidmachine"].Version)
	assert.Equal(t, "3.0.1", *got.Adapters["bidmachine"].SdkVersion)
	assert.Nil(t, got.Adapters["vungle"].SdkVersion)
	assert.Equal(t, `{"custom":1}`, *got.Ext)
}

func TestMapEncodingIsDeterministic(t *testing.T) {
	ext := &AdObjectExt{
		Demands: map[string]*Demand{
			"vungle":     {Token: ptrutil.ToPtr("t2")},
			"bidmachine": {Token: ptrutil.ToPtr("t1")},
			"mintegral":  {Token: ptrutil.ToPtr("t3")},
		},
	}

	first := ext.AppendWire(nil)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ext.AppendWire(nil))
	}
}

func TestAdObjectExtRoundTrip(t *testing.T) {
	ext := &AdObjectExt{
		AuctionID:               ptrutil.ToPtr("3a5ceeff-89b9-4b6f-84c8-f0b0a8b8e396"),
		AuctionKey:              ptrutil.ToPtr("1ERNSV33K400"),
		AuctionConfigurationID:  ptrutil.ToPtr(int64(10617)),
		AuctionConfigurationUID: ptrutil.ToPtr("1701972528521547776"),
		Orientation:             ptrutil.ToPtr(OrientationPortrait),
		Demands: map[string]*Demand{
			"bidmachine": {
				Token:         ptrutil.ToPtr("token"),
				Status:        ptrutil.ToPtr("SUCCESS"),
				TokenStartTs:  ptrutil.ToPtr(int64(1701960301421)),
				TokenFinishTs: ptrutil.ToPtr(int64(1701960301423)),
			},
		},
		Banner:   &BannerAd{Format: ptrutil.ToPtr(AdFormatAdaptive)},
		Rewarded: ptrutil.ToPtr("{}"),
	}

	var got AdObjectExt
	require.NoError(t, got.UnmarshalWire(ext.AppendWire(nil), nil))

	assert.Equal(t, *ext.AuctionID, *got.AuctionID)
	assert.Equal(t, int64(10617), *got.AuctionConfigurationID)
	assert.Equal(t, OrientationPortrait, *got.Orientation)
	require.Contains(t, got.Demands, "bidmachine")
	assert.Equal(t, "SUCCESS", *got.Demands["bidmachine"].Status)
	assert.Equal(t, int64(1701960301423), *got.Demands["bidmachine"].TokenFinishTs)
	require.NotNil(t, got.Banner)
	assert.Equal(t, AdFormatAdaptive, *got.Banner.Format)
	assert.Equal(t, "{}", *got.Rewarded)
	assert.Nil(t, got.Interstitial)
}

func TestDeviceExtRoundTrip(t *testing.T) {
	ext := &DeviceExt{
		ID:               ptrutil.ToPtr("session-1"),
		LaunchTs:         ptrutil.ToPtr(int64(1701960301000)),
		Ts:               ptrutil.ToPtr(int64(1701960305000)),
		MemoryWarningsTs: []int64{1701960302000, 1701960303000},
		RAMUsed:          ptrutil.ToPtr(int64(1024)),
		Battery:          ptrutil.ToPtr(85.5),
		CPUUsage:         ptrutil.ToPtr(0.25),
	}

	var got DeviceExt
	require.NoError(t, got.UnmarshalWire(ext.AppendWire(nil), nil))

	assert.Equal(t, "session-1", *got.ID)
	assert.Equal(t, int64(1701960301000), *got.LaunchTs)
	assert.Equal(t, []int64{1701960302000, 1701960303000}, got.MemoryWarningsTs)
	assert.Equal(t, 85.5, *got.Battery)
	assert.Equal(t, 0.25, *got.CPUUsage)
	assert.Nil(t, got.StorageFree)
}

func TestUserExtRoundTrip(t *testing.T) {
	ext := &UserExt{
		Idfa:                        ptrutil.ToPtr("00000000-0000-0000-0000-000000000000"),
		TrackingAuthorizationStatus: ptrutil.ToPtr("3"),
		Idg:                         ptrutil.ToPtr("7f8c9a2e-1b2c-4d5e-8f90-a1b2c3d4e5f6"),
		Segments: []*Segment{
			{ID: ptrutil.ToPtr("seg-1"), UID: ptrutil.ToPtr("uid-1"), Ext: ptrutil.ToPtr("{}")},
		},
	}

	var got UserExt
	require.NoError(t, got.UnmarshalWire(ext.AppendWire(nil), nil))

	assert.Equal(t, "3", *got.TrackingAuthorizationStatus)
	require.Len(t, got.Segments, 1)
	assert.Equal(t, "seg-1", *got.Segments[0].ID)
	assert.Equal(t, "uid-1", *got.Segments[0].UID)
}

func TestBidExtRoundTrip(t *testing.T) {
	ext := &BidExt{
		Label:   ptrutil.ToPtr("bidmachine"),
		BidType: ptrutil.ToPtr("RTB"),
		Ext:     map[string]string{"payload": `{"a":1}`, "signaldata": "xyz"},
	}

	var got BidExt
	require.NoError(t, got.UnmarshalWire(ext.AppendWire(nil), nil))

	assert.Equal(t, "bidmachine", *got.Label)
	assert.Equal(t, "RTB", *got.BidType)
	assert.Equal(t, ext.Ext, got.Ext)
}

func TestRegistryDecodesAllPayloads(t *testing.T) {
	reg := NewRegistry()

	req := &openrtb.Request{ID: ptrutil.ToPtr("auction-1")}
	require.NoError(t, openrtb.SetExtension(req, E_RequestExt, &RequestExt{AdType: ptrutil.ToPtr(AdTypeRewarded)}))

	item := &openrtb.Item{ID: ptrutil.ToPtr("auction-1")}
	require.NoError(t, openrtb.SetExtension(item, E_AdObjectExt, &AdObjectExt{AuctionID: ptrutil.ToPtr("auction-1")}))
	req.Item = append(req.Item, item)

	var got openrtb.Request
	require.NoError(t, got.UnmarshalWire(req.AppendWire(nil), reg))

	reqExt, ok := openrtb.GetExtension[*RequestExt](&got, E_RequestExt)
	require.True(t, ok)
	assert.Equal(t, AdTypeRewarded, *reqExt.AdType)

	require.Len(t, got.Item, 1)
	adObj, ok := openrtb.GetExtension[*AdObjectExt](got.Item[0], E_AdObjectExt)
	require.True(t, ok)
	assert.Equal(t, "auction-1", *adObj.AuctionID)
}

func TestAuctionResponseExtRoundTrip(t *testing.T) {
	ext := &AuctionResponseExt{
		AuctionID:                ptrutil.ToPtr("auction-1"),
		AuctionConfigurationID:   ptrutil.ToPtr(int64(10617)),
		AuctionConfigurationUID:  ptrutil.ToPtr("1701972528521547776"),
		Token:                    ptrutil.ToPtr("token"),
		AuctionPricefloor:        ptrutil.ToPtr(0.5),
		AuctionTimeout:           ptrutil.ToPtr(int32(30000)),
		ExternalWinNotifications: ptrutil.ToPtr(true),
		Segment:                  &Segment{UID: ptrutil.ToPtr("uid-1")},
	}

	var got AuctionResponseExt
	require.NoError(t, got.UnmarshalWire(ext.AppendWire(nil), nil))

	assert.Equal(t, 0.5, *got.AuctionPricefloor)
	assert.Equal(t, int32(30000), *got.AuctionTimeout)
	assert.True(t, *got.ExternalWinNotifications)
	require.NotNil(t, got.Segment)
	assert.Equal(t, "uid-1", *got.Segment.UID)
}

func TestUnknownFieldsAreSkipped(t *testing.T) {
	// A payload from a newer peer may carry fields this build does not know.
	b := (&Demand{Token: ptrutil.ToPtr("t")}).AppendWire(nil)
	b = openrtb.AppendString(b, 99, ptrutil.ToPtr("future"))

	var got Demand
	require.NoError(t, got.UnmarshalWire(b, nil))
	assert.Equal(t, "t", *got.Token)
}
