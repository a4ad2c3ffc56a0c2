package bidon

import (
	"encoding/json"
	"net"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidon-io/bidon-proxy/errortypes"
	"github.com/bidon-io/bidon-proxy/mediation"
	"github.com/bidon-io/bidon-proxy/openrtb"
	"github.com/bidon-io/bidon-proxy/schema"
	"github.com/bidon-io/bidon-proxy/util/ptrutil"
)

func validRequest(t *testing.T) *schema.AuctionRequest {
	t.Helper()

	sessionID := uuid.Must(uuid.FromString("3a5ceeff-89b9-4b6f-84c8-f0b0a8b8e396"))
	idg := uuid.Must(uuid.FromString("7f8c9a2e-1b2c-4d5e-8f90-a1b2c3d4e5f6"))

	return &schema.AuctionRequest{
		App: schema.App{
			Bundle:           "com.example.app",
			Framework:        "unity",
			FrameworkVersion: ptrutil.ToPtr("2022.3.0"),
			Key:              "app-key",
			PluginVersion:    ptrutil.ToPtr("0.4.0"),
			SDKVersion:       ptrutil.ToPtr("0.4.1"),
			SKAdN:            []string{"skadn-1", "skadn-2"},
			Version:          "1.2.3",
		},
		Device: schema.Device{
			ConnectionType: schema.ConnectionWIFI,
			H:              2796,
			HWV:            "iPhone15,3",
			JS:             1,
			Language:       "en",
			Make:           "Apple",
			Model:          "iPhone",
			OS:             "iOS",
			OSV:            "17.2",
			PPI:            460,
			PXRatio:        3.0,
			Type:           ptrutil.ToPtr(schema.DeviceTypePhone),
			UA:             "Mozilla/5.0",
			W:              1290,
		},
		Geo: &schema.Geo{
			Accuracy: ptrutil.ToPtr(10.9),
			City:     ptrutil.ToPtr("San Francisco"),
			Country:  ptrutil.ToPtr("US"),
			Lat:      ptrutil.ToPtr(37.77),
			Lon:      ptrutil.ToPtr(-122.41),
		},
		Regs: &schema.Regulations{
			Coppa:     ptrutil.ToPtr(false),
			GDPR:      ptrutil.ToPtr(true),
			USPrivacy: ptrutil.ToPtr("1YN-"),
			IAB:       map[string]any{"tcf": "abc"},
		},
		Segment: &schema.Segment{
			ID:  ptrutil.ToPtr("seg-1"),
			UID: ptrutil.ToPtr("seg-uid-1"),
		},
		Session: schema.Session{
			Battery:           85.5,
			CPUUsage:          0.25,
			ID:                sessionID,
			LaunchTs:          1701960300000,
			LaunchMonotonicTs: 1,
			MemoryWarningsTs:  []int64{1701960302000},
			MonotonicTs:       5,
			RAMSize:           6144,
			RAMUsed:           2048,
			StartTs:           1701960301000,
			StartMonotonicTs:  2,
			Ts:                1701960305000,
		},
		User: schema.User{
			Consent:                     map[string]any{"meta": map[string]any{"consent": true}},
			IDG:                         &idg,
			TrackingAuthorizationStatus: "3",
		},
		AdObject: schema.AdObject{
			AuctionConfigurationID:  ptrutil.ToPtr(int64(10617)),
			AuctionConfigurationUID: ptrutil.ToPtr("1701972528521547776"),
			AuctionID:               ptrutil.ToPtr("auction-1"),
			AuctionKey:              ptrutil.ToPtr("1ERNSV33K400"),
			AuctionPricefloor:       0.5,
			Banner:                  &schema.BannerAdObject{Format: schema.AdFormatAdaptive},
			Demands: map[string]json.RawMessage{
				"bidmachine": json.RawMessage(`{"token":"abc","status":"SUCCESS","token_start_ts":1701960301421,"token_finish_ts":1701960301423}`),
			},
			Orientation: ptrutil.ToPtr(schema.OrientationPortrait),
		},
		Adapters: map[string]schema.Adapter{
			"bidmachine": {SDKVersion: "3.0.1", Version: "0.4.1"},
		},
		TMax: ptrutil.ToPtr(int64(30000)),
	}
}

func params() RequestParams {
	return RequestParams{
		AdType:       schema.AdTypeBanner,
		BidonVersion: "0.4.2",
		ClientIP:     net.ParseIP("203.0.113.7"),
	}
}

func TestRequestToOpenRTBEnvelope(t *testing.T) {
	env, err := RequestToOpenRTB(validRequest(t), params())
	require.NoError(t, err)

	assert.Equal(t, "3.0", *env.Ver)
	assert.Equal(t, "domain_spec", *env.Domainspec)
	assert.Equal(t, "domain_version", *env.Domainver)
	require.NotNil(t, env.Request)
	assert.Nil(t, env.Response)

	req := env.Request
	assert.Equal(t, "auction-1", *req.ID)
	assert.Equal(t, uint32(30000), *req.Tmax)
	assert.Equal(t, openrtb.AuctionFirstPrice, *req.At)
	assert.Nil(t, req.Test)

	reqExt, ok := openrtb.GetExtension[*mediation.RequestExt](req, mediation.E_RequestExt)
	require.True(t, ok)
	assert.Equal(t, mediation.AdTypeBanner, *reqExt.AdType)
	require.Contains(t, reqExt.Adapters, "bidmachine")
	assert.Equal(t, "0.4.1", *reqExt.Adapters["bidmachine"].Version)
	assert.Equal(t, "3.0.1", *reqExt.Adapters["bidmachine"].SdkVersion)
}

func decodeContext(t *testing.T, req *openrtb.Request) *openrtb.Context {
	t.Helper()
	var ctx openrtb.Context
	require.NoError(t, ctx.UnmarshalWire(req.Context, mediation.NewRegistry()))
	return &ctx
}

func TestRequestToOpenRTBContextApp(t *testing.T) {
	env, err := RequestToOpenRTB(validRequest(t), params())
	require.NoError(t, err)

	ctx := decodeContext(t, env.Request)
	require.NotNil(t, ctx.DistributionChannel)
	app := ctx.DistributionChannel.App
	require.NotNil(t, app)
	assert.Equal(t, "com.example.app", *app.Bundle)
	assert.Equal(t, "1.2.3", *app.Ver)

	appExt, ok := openrtb.GetExtension[*mediation.AppExt](app, mediation.E_AppExt)
	require.True(t, ok)
	assert.Equal(t, "app-key", *appExt.Key)
	assert.Equal(t, "unity", *appExt.Framework)
	assert.Equal(t, "2022.3.0", *appExt.FrameworkVersion)
	assert.Equal(t, "0.4.0", *appExt.PluginVersion)
	assert.Equal(t, "0.4.1", *appExt.SdkVersion)
	assert.Equal(t, []string{"skadn-1", "skadn-2"}, appExt.Skadn)
	assert.Equal(t, "0.4.2", *appExt.BidonVersion)
}

func TestRequestToOpenRTBContextDevice(t *testing.T) {
	env, err := RequestToOpenRTB(validRequest(t), params())
	require.NoError(t, err)

	device := decodeContext(t, env.Request).Device
	require.NotNil(t, device)
	assert.Equal(t, openrtb.DeviceTypePhone, *device.Type)
	assert.Equal(t, openrtb.OSIOS, *device.OS)
	assert.Equal(t, openrtb.ConnWifi, *device.ConType)
	assert.Equal(t, float32(3.0), *device.PxRatio)
	assert.True(t, *device.JS)
	assert.Equal(t, "203.0.113.7", *device.IP)
	assert.Nil(t, device.IPv6)

	require.NotNil(t, device.Geo)
	assert.Equal(t, openrtb.LocationUnknown, *device.Geo.Type)
	assert.Equal(t, float32(37.77), *device.Geo.Lat)
	assert.Equal(t, float32(-122.41), *device.Geo.Lon)
	// Accuracy is truncated, not rounded.
	assert.Equal(t, int32(10), *device.Geo.Accur)

	session, ok := openrtb.GetExtension[*mediation.DeviceExt](device, mediation.E_DeviceExt)
	require.True(t, ok)
	assert.Equal(t, "3a5ceeff-89b9-4b6f-84c8-f0b0a8b8e396", *session.ID)
	assert.Equal(t, int64(1701960300000), *session.LaunchTs)
	assert.Equal(t, []int64{1701960302000}, session.MemoryWarningsTs)
	assert.Equal(t, 85.5, *session.Battery)
	assert.Nil(t, session.StorageFree)
}

func TestRequestToOpenRTBContextUserAndRegs(t *testing.T) {
	env, err := RequestToOpenRTB(validRequest(t), params())
	require.NoError(t, err)

	ctx := decodeContext(t, env.Request)

	user := ctx.User
	require.NotNil(t, user)
	assert.Equal(t, "7f8c9a2e-1b2c-4d5e-8f90-a1b2c3d4e5f6", *user.ID)
	assert.JSONEq(t, `{"meta":{"consent":true}}`, *user.Consent)

	userExt, ok := openrtb.GetExtension[*mediation.UserExt](user, mediation.E_UserExt)
	require.True(t, ok)
	assert.Nil(t, userExt.Idfa)
	assert.Equal(t, "3", *userExt.TrackingAuthorizationStatus)
	assert.Equal(t, "7f8c9a2e-1b2c-4d5e-8f90-a1b2c3d4e5f6", *userExt.Idg)
	require.Len(t, userExt.Segments, 1)
	assert.Equal(t, "seg-1", *userExt.Segments[0].ID)
	assert.Equal(t, "seg-uid-1", *userExt.Segments[0].UID)

	regs := ctx.Regs
	require.NotNil(t, regs)
	assert.False(t, *regs.Coppa)
	assert.True(t, *regs.GDPR)

	regsExt, ok := openrtb.GetExtension[*mediation.RegsExt](regs, mediation.E_RegsExt)
	require.True(t, ok)
	assert.Equal(t, "1YN-", *regsExt.UsPrivacy)
	assert.Nil(t, regsExt.EuPrivacy)
	assert.JSONEq(t, `{"tcf":"abc"}`, *regsExt.Iab)
}

func TestRequestToOpenRTBItem(t *testing.T) {
	env, err := RequestToOpenRTB(validRequest(t), params())
	require.NoError(t, err)

	require.Len(t, env.Request.Item, 1)
	item := env.Request.Item[0]
	assert.Equal(t, "auction-1", *item.ID)
	assert.Equal(t, float32(0.5), *item.Flr)
	assert.Equal(t, "USD", *item.Flrcur)

	adObj, ok := openrtb.GetExtension[*mediation.AdObjectExt](item, mediation.E_AdObjectExt)
	require.True(t, ok)
	assert.Equal(t, "auction-1", *adObj.AuctionID)
	assert.Equal(t, "1ERNSV33K400", *adObj.AuctionKey)
	assert.Equal(t, int64(10617), *adObj.AuctionConfigurationID)
	assert.Equal(t, "1701972528521547776", *adObj.AuctionConfigurationUID)
	assert.Equal(t, mediation.OrientationPortrait, *adObj.Orientation)
	assert.Equal(t, mediation.AdFormatAdaptive, *adObj.Banner.Format)

	require.Contains(t, adObj.Demands, "bidmachine")
	demand := adObj.Demands["bidmachine"]
	assert.Equal(t, "abc", *demand.Token)
	assert.Equal(t, "SUCCESS", *demand.Status)
	assert.Equal(t, int64(1701960301421), *demand.TokenStartTs)
	assert.Equal(t, int64(1701960301423), *demand.TokenFinishTs)
}

func TestRequestToOpenRTBPlacementByAdType(t *testing.T) {
	decodeSpec := func(t *testing.T, adType schema.AdType) *openrtb.Placement {
		p := params()
		p.AdType = adType
		env, err := RequestToOpenRTB(validRequest(t), p)
		require.NoError(t, err)
		var placement openrtb.Placement
		require.NoError(t, placement.UnmarshalWire(env.Request.Item[0].Spec, nil))
		return &placement
	}

	banner := decodeSpec(t, schema.AdTypeBanner)
	require.NotNil(t, banner.Display)
	assert.False(t, *banner.Display.Instl)
	assert.Nil(t, banner.Video)
	assert.Nil(t, banner.Reward)

	interstitial := decodeSpec(t, schema.AdTypeInterstitial)
	require.NotNil(t, interstitial.Display)
	assert.True(t, *interstitial.Display.Instl)
	require.NotNil(t, interstitial.Video)
	assert.Equal(t, openrtb.VideoInterstitial, *interstitial.Video.Ptype)

	rewarded := decodeSpec(t, schema.AdTypeRewarded)
	assert.Nil(t, rewarded.Display)
	require.NotNil(t, rewarded.Video)
	assert.Nil(t, rewarded.Video.Ptype)
	assert.True(t, *rewarded.Reward)
}

func TestRequestToOpenRTBIPv6(t *testing.T) {
	p := params()
	p.ClientIP = net.ParseIP("2001:db8::7")
	env, err := RequestToOpenRTB(validRequest(t), p)
	require.NoError(t, err)

	device := decodeContext(t, env.Request).Device
	assert.Equal(t, "2001:db8::7", *device.IP)
	require.NotNil(t, device.IPv6)
	assert.Equal(t, "2001:db8::7", *device.IPv6)
}

func TestConvertOSTable(t *testing.T) {
	cases := map[string]openrtb.OperatingSystem{
		"iOS":         openrtb.OSIOS,
		"ios":         openrtb.OSIOS,
		"ANDROID":     openrtb.OSAndroid,
		"Windows":     openrtb.OSWindows,
		"macos":       openrtb.OSMacOS,
		"linux":       openrtb.OSLinux,
		"tizen":       openrtb.OSOtherNotListed,
		"":            openrtb.OSOtherNotListed,
		"playstation": openrtb.OSOtherNotListed,
	}
	for in, want := range cases {
		assert.Equal(t, want, convertOS(in), in)
	}
}

func TestConvertConnectionTypeTable(t *testing.T) {
	cases := map[string]openrtb.ConnectionType{
		schema.ConnectionEthernet:        openrtb.ConnWired,
		schema.ConnectionWIFI:            openrtb.ConnWifi,
		schema.ConnectionCellular:        openrtb.ConnCellUnknown,
		schema.ConnectionCellularUnknown: openrtb.ConnCellUnknown,
		schema.ConnectionCellular2G:      openrtb.ConnCell2G,
		schema.ConnectionCellular3G:      openrtb.ConnCell3G,
		schema.ConnectionCellular4G:      openrtb.ConnCell4G,
		schema.ConnectionCellular5G:      openrtb.ConnCell5G,
	}
	for in, want := range cases {
		got := convertConnectionType(in)
		require.NotNil(t, got, in)
		assert.Equal(t, want, *got, in)
	}

	assert.Nil(t, convertConnectionType("CARRIER_PIGEON"))
}

func TestRequestToOpenRTBRawPayloadsCompacted(t *testing.T) {
	req := validRequest(t)
	req.AdObject.Banner = nil
	req.AdObject.Interstitial = json.RawMessage("{\n  \"a\": 1\n}")
	req.AdObject.Rewarded = json.RawMessage(`{"b": [1, 2]}`)

	env, err := RequestToOpenRTB(req, params())
	require.NoError(t, err)

	adObj, ok := openrtb.GetExtension[*mediation.AdObjectExt](env.Request.Item[0], mediation.E_AdObjectExt)
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, *adObj.Interstitial)
	assert.Equal(t, `{"b":[1,2]}`, *adObj.Rewarded)
	assert.Nil(t, adObj.Banner)
}

func TestRequestToOpenRTBDemandValidation(t *testing.T) {
	cases := []struct {
		name   string
		demand string
	}{
		{"not an object", `"just a string"`},
		{"array", `[1,2,3]`},
		{"token not a string", `{"token": 42}`},
		{"status not a string", `{"status": {"nested": true}}`},
		{"start ts as string", `{"token_start_ts": "1701960301421"}`},
		{"finish ts as float string", `{"token_finish_ts": "soon"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest(t)
			req.AdObject.Demands = map[string]json.RawMessage{
				"bidmachine": json.RawMessage(tc.demand),
			}

			env, err := RequestToOpenRTB(req, params())
			assert.Nil(t, env)
			require.Error(t, err)

			var verr *errortypes.Validation
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestRequestToOpenRTBDemandOptionalFields(t *testing.T) {
	req := validRequest(t)
	req.AdObject.Demands = map[string]json.RawMessage{
		"vungle": json.RawMessage(`{}`),
	}

	env, err := RequestToOpenRTB(req, params())
	require.NoError(t, err)

	adObj, ok := openrtb.GetExtension[*mediation.AdObjectExt](env.Request.Item[0], mediation.E_AdObjectExt)
	require.True(t, ok)
	demand := adObj.Demands["vungle"]
	require.NotNil(t, demand)
	assert.Nil(t, demand.Token)
	assert.Nil(t, demand.Status)
	assert.Nil(t, demand.TokenStartTs)
}

func TestRequestToOpenRTBNoRegs(t *testing.T) {
	req := validRequest(t)
	req.Regs = nil

	env, err := RequestToOpenRTB(req, params())
	require.NoError(t, err)

	assert.Nil(t, decodeContext(t, env.Request).Regs)
}
