// Package bidon translates between the Bidon SDK JSON schema and the
// OpenRTB 3.0 / AdCOM wire messages spoken with the bidding engine.
package bidon

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/buger/jsonparser"

	"github.com/bidon-io/bidon-proxy/errortypes"
	"github.com/bidon-io/bidon-proxy/mediation"
	"github.com/bidon-io/bidon-proxy/openrtb"
	"github.com/bidon-io/bidon-proxy/schema"
	"github.com/bidon-io/bidon-proxy/util/ptrutil"
)

// Envelope literals of the outbound wire message.
const (
	openrtbVer = "3.0"
	domainSpec = "domain_spec"
	domainVer  = "domain_version"

	floorCurrency = "USD"
)

// RequestParams is the per-call context of an outbound translation that does
// not come from the request body.
type RequestParams struct {
	AdType       schema.AdType
	BidonVersion string
	ClientIP     net.IP
}

// RequestToOpenRTB maps an SDK auction request onto the wire envelope. The
// mapping either succeeds completely or fails with a typed error; no partial
// message is ever returned.
func RequestToOpenRTB(req *schema.AuctionRequest, params RequestParams) (*openrtb.Openrtb, error) {
	ctx, err := convertContext(req, params)
	if err != nil {
		return nil, err
	}

	item, err := convertAdObject(&req.AdObject, params.AdType)
	if err != nil {
		return nil, err
	}

	wireReq := &openrtb.Request{
		ID:      ptrutil.Clone(req.AdObject.AuctionID),
		Test:    ptrutil.Clone(req.Test),
		At:      ptrutil.ToPtr(openrtb.AuctionFirstPrice),
		Context: ctx.AppendWire(nil),
		Item:    []*openrtb.Item{item},
	}
	if req.TMax != nil {
		wireReq.Tmax = ptrutil.ToPtr(uint32(*req.TMax))
	}

	reqExt := &mediation.RequestExt{
		AdType: ptrutil.ToPtr(convertAdType(params.AdType)),
		Ext:    ptrutil.Clone(req.Ext),
	}
	if len(req.Adapters) > 0 {
		reqExt.Adapters = make(map[string]*mediation.SdkAdapter, len(req.Adapters))
		for name, adapter := range req.Adapters {
			reqExt.Adapters[name] = &mediation.SdkAdapter{
				Version:    ptrutil.ToPtr(adapter.Version),
				SdkVersion: ptrutil.ToPtr(adapter.SDKVersion),
			}
		}
	}
	if err := openrtb.SetExtension(wireReq, mediation.E_RequestExt, reqExt); err != nil {
		return nil, &errortypes.Serialization{Message: err.Error()}
	}

	return &openrtb.Openrtb{
		Ver:        ptrutil.ToPtr(openrtbVer),
		Domainspec: ptrutil.ToPtr(domainSpec),
		Domainver:  ptrutil.ToPtr(domainVer),
		Request:    wireReq,
	}, nil
}

func convertContext(req *schema.AuctionRequest, params RequestParams) (*openrtb.Context, error) {
	app, err := convertApp(&req.App, params.BidonVersion)
	if err != nil {
		return nil, err
	}

	geo := req.Geo
	if geo == nil {
		geo = req.Device.Geo
	}
	device, err := convertDevice(&req.Device, &req.Session, geo, params.ClientIP)
	if err != nil {
		return nil, err
	}

	user, err := convertUser(&req.User, req.Segment)
	if err != nil {
		return nil, err
	}

	ctx := &openrtb.Context{
		DistributionChannel: &openrtb.DistributionChannel{App: app},
		Device:              device,
		User:                user,
	}

	if req.Regs != nil {
		regs, err := convertRegs(req.Regs)
		if err != nil {
			return nil, err
		}
		ctx.Regs = regs
	}

	return ctx, nil
}

func convertApp(app *schema.App, bidonVersion string) (*openrtb.App, error) {
	adcomApp := &openrtb.App{
		Bundle: ptrutil.ToPtr(app.Bundle),
		Ver:    ptrutil.ToPtr(app.Version),
	}

	appExt := &mediation.AppExt{
		Key:              ptrutil.ToPtr(app.Key),
		Framework:        ptrutil.ToPtr(app.Framework),
		FrameworkVersion: ptrutil.Clone(app.FrameworkVersion),
		PluginVersion:    ptrutil.Clone(app.PluginVersion),
		SdkVersion:       ptrutil.Clone(app.SDKVersion),
		Skadn:            app.SKAdN,
		BidonVersion:     ptrutil.ToPtr(bidonVersion),
	}
	if err := openrtb.SetExtension(adcomApp, mediation.E_AppExt, appExt); err != nil {
		return nil, &errortypes.Serialization{Message: err.Error()}
	}
	return adcomApp, nil
}

func convertDevice(device *schema.Device, session *schema.Session, geo *schema.Geo, ip net.IP) (*openrtb.Device, error) {
	adcomDevice := &openrtb.Device{
		Type:    convertDeviceType(device.Type),
		UA:      ptrutil.ToPtr(device.UA),
		Make:    ptrutil.ToPtr(device.Make),
		Model:   ptrutil.ToPtr(device.Model),
		OS:      ptrutil.ToPtr(convertOS(device.OS)),
		OSV:     ptrutil.ToPtr(device.OSV),
		HWV:     ptrutil.ToPtr(device.HWV),
		H:       ptrutil.ToPtr(device.H),
		W:       ptrutil.ToPtr(device.W),
		PPI:     ptrutil.ToPtr(device.PPI),
		PxRatio: ptrutil.ToPtr(float32(device.PXRatio)),
		JS:      ptrutil.ToPtr(device.JS != 0),
		Lang:    ptrutil.ToPtr(device.Language),
		Carrier: ptrutil.Clone(device.Carrier),
		MCCMNC:  ptrutil.Clone(device.MCCMNC),
		ConType: convertConnectionType(device.ConnectionType),
	}
	if geo != nil {
		adcomDevice.Geo = convertGeo(geo)
	}
	if ip != nil {
		adcomDevice.IP = ptrutil.ToPtr(ip.String())
		if ip.To4() == nil {
			adcomDevice.IPv6 = ptrutil.ToPtr(ip.String())
		}
	}

	if err := openrtb.SetExtension(adcomDevice, mediation.E_DeviceExt, convertSession(session)); err != nil {
		return nil, &errortypes.Serialization{Message: err.Error()}
	}
	return adcomDevice, nil
}

func convertDeviceType(deviceType *string) *openrtb.DeviceType {
	if deviceType == nil {
		return nil
	}
	switch *deviceType {
	case schema.DeviceTypePhone:
		return ptrutil.ToPtr(openrtb.DeviceTypePhone)
	case schema.DeviceTypeTablet:
		return ptrutil.ToPtr(openrtb.DeviceTypeTablet)
	default:
		return nil
	}
}

func convertOS(os string) openrtb.OperatingSystem {
	switch strings.ToLower(os) {
	case "ios":
		return openrtb.OSIOS
	case "android":
		return openrtb.OSAndroid
	case "windows":
		return openrtb.OSWindows
	case "macos":
		return openrtb.OSMacOS
	case "linux":
		return openrtb.OSLinux
	default:
		return openrtb.OSOtherNotListed
	}
}

func convertConnectionType(connType string) *openrtb.ConnectionType {
	switch connType {
	case schema.ConnectionEthernet:
		return ptrutil.ToPtr(openrtb.ConnWired)
	case schema.ConnectionWIFI:
		return ptrutil.ToPtr(openrtb.ConnWifi)
	case schema.ConnectionCellular, schema.ConnectionCellularUnknown:
		return ptrutil.ToPtr(openrtb.ConnCellUnknown)
	case schema.ConnectionCellular2G:
		return ptrutil.ToPtr(openrtb.ConnCell2G)
	case schema.ConnectionCellular3G:
		return ptrutil.ToPtr(openrtb.ConnCell3G)
	case schema.ConnectionCellular4G:
		return ptrutil.ToPtr(openrtb.ConnCell4G)
	case schema.ConnectionCellular5G:
		return ptrutil.ToPtr(openrtb.ConnCell5G)
	default:
		return nil
	}
}

// convertGeo narrows coordinates and pixel-ratio style floats to f32 and
// truncates accuracy to a whole number of meters. The narrowing is lossy and
// deliberate: it is what the wire schema carries.
func convertGeo(geo *schema.Geo) *openrtb.Geo {
	adcomGeo := &openrtb.Geo{
		Type:      ptrutil.ToPtr(openrtb.LocationUnknown),
		Country:   ptrutil.Clone(geo.Country),
		City:      ptrutil.Clone(geo.City),
		Zip:       ptrutil.Clone(geo.Zip),
		UTCOffset: ptrutil.Clone(geo.UTCOffset),
		Lastfix:   ptrutil.Clone(geo.Lastfix),
	}
	if geo.Lat != nil {
		adcomGeo.Lat = ptrutil.ToPtr(float32(*geo.Lat))
	}
	if geo.Lon != nil {
		adcomGeo.Lon = ptrutil.ToPtr(float32(*geo.Lon))
	}
	if geo.Accuracy != nil {
		adcomGeo.Accur = ptrutil.ToPtr(int32(*geo.Accuracy))
	}
	return adcomGeo
}

func convertSession(session *schema.Session) *mediation.DeviceExt {
	return &mediation.DeviceExt{
		ID:                        ptrutil.ToPtr(session.ID.String()),
		LaunchTs:                  ptrutil.ToPtr(session.LaunchTs),
		LaunchMonotonicTs:         ptrutil.ToPtr(session.LaunchMonotonicTs),
		StartTs:                   ptrutil.ToPtr(session.StartTs),
		StartMonotonicTs:          ptrutil.ToPtr(session.StartMonotonicTs),
		Ts:                        ptrutil.ToPtr(session.Ts),
		MonotonicTs:               ptrutil.ToPtr(session.MonotonicTs),
		MemoryWarningsTs:          session.MemoryWarningsTs,
		MemoryWarningsMonotonicTs: session.MemoryWarningsMonotonicTs,
		RAMUsed:                   ptrutil.ToPtr(session.RAMUsed),
		RAMSize:                   ptrutil.ToPtr(session.RAMSize),
		StorageFree:               ptrutil.Clone(session.StorageFree),
		StorageUsed:               ptrutil.Clone(session.StorageUsed),
		Battery:                   ptrutil.ToPtr(session.Battery),
		CPUUsage:                  ptrutil.ToPtr(session.CPUUsage),
	}
}

func convertUser(user *schema.User, segment *schema.Segment) (*openrtb.User, error) {
	adcomUser := &openrtb.User{}
	if user.IDG != nil {
		adcomUser.ID = ptrutil.ToPtr(user.IDG.String())
	}
	if user.Consent != nil {
		consent, err := jsonToString(user.Consent)
		if err != nil {
			return nil, &errortypes.Serialization{Message: fmt.Sprintf("cannot serialize user consent: %v", err)}
		}
		adcomUser.Consent = consent
	}

	userExt := &mediation.UserExt{
		TrackingAuthorizationStatus: ptrutil.ToPtr(user.TrackingAuthorizationStatus),
	}
	if user.IDFA != nil {
		userExt.Idfa = ptrutil.ToPtr(user.IDFA.String())
	}
	if user.IDFV != nil {
		userExt.Idfv = ptrutil.ToPtr(user.IDFV.String())
	}
	if user.IDG != nil {
		userExt.Idg = ptrutil.ToPtr(user.IDG.String())
	}
	if segment != nil {
		userExt.Segments = []*mediation.Segment{convertSegment(segment)}
	}

	if err := openrtb.SetExtension(adcomUser, mediation.E_UserExt, userExt); err != nil {
		return nil, &errortypes.Serialization{Message: err.Error()}
	}
	return adcomUser, nil
}

func convertSegment(segment *schema.Segment) *mediation.Segment {
	return &mediation.Segment{
		ID:  ptrutil.Clone(segment.ID),
		UID: ptrutil.Clone(segment.UID),
		Ext: ptrutil.Clone(segment.Ext),
	}
}

func convertRegs(regs *schema.Regulations) (*openrtb.Regs, error) {
	adcomRegs := &openrtb.Regs{
		Coppa: ptrutil.Clone(regs.Coppa),
		GDPR:  ptrutil.Clone(regs.GDPR),
	}

	regsExt := &mediation.RegsExt{
		UsPrivacy: ptrutil.Clone(regs.USPrivacy),
		EuPrivacy: ptrutil.Clone(regs.EUPrivacy),
	}
	if regs.IAB != nil {
		iab, err := jsonToString(regs.IAB)
		if err != nil {
			return nil, &errortypes.Serialization{Message: fmt.Sprintf("cannot serialize iab settings: %v", err)}
		}
		regsExt.Iab = iab
	}

	if err := openrtb.SetExtension(adcomRegs, mediation.E_RegsExt, regsExt); err != nil {
		return nil, &errortypes.Serialization{Message: err.Error()}
	}
	return adcomRegs, nil
}

func convertAdObject(adObject *schema.AdObject, adType schema.AdType) (*openrtb.Item, error) {
	placement := &openrtb.Placement{}
	switch adType {
	case schema.AdTypeBanner:
		placement.Display = &openrtb.DisplayPlacement{Instl: ptrutil.ToPtr(false)}
	case schema.AdTypeInterstitial:
		// Interstitial can fill as either display or video.
		placement.Display = &openrtb.DisplayPlacement{Instl: ptrutil.ToPtr(true)}
		placement.Video = &openrtb.VideoPlacement{Ptype: ptrutil.ToPtr(openrtb.VideoInterstitial)}
	case schema.AdTypeRewarded:
		placement.Reward = ptrutil.ToPtr(true)
		placement.Video = &openrtb.VideoPlacement{}
	}

	item := &openrtb.Item{
		ID:     ptrutil.Clone(adObject.AuctionID),
		Flr:    ptrutil.ToPtr(float32(adObject.AuctionPricefloor)),
		Flrcur: ptrutil.ToPtr(floorCurrency),
		Spec:   placement.AppendWire(nil),
	}

	demands, err := convertDemands(adObject.Demands)
	if err != nil {
		return nil, err
	}

	adObjectExt := &mediation.AdObjectExt{
		AuctionID:               ptrutil.Clone(adObject.AuctionID),
		AuctionKey:              ptrutil.Clone(adObject.AuctionKey),
		AuctionConfigurationID:  ptrutil.Clone(adObject.AuctionConfigurationID),
		AuctionConfigurationUID: ptrutil.Clone(adObject.AuctionConfigurationUID),
		Orientation:             convertOrientation(adObject.Orientation),
		Demands:                 demands,
	}
	if adObject.Banner != nil {
		adObjectExt.Banner = &mediation.BannerAd{Format: ptrutil.ToPtr(convertBannerFormat(adObject.Banner.Format))}
	}
	if adObject.Interstitial != nil {
		interstitial, err := compactJSON(adObject.Interstitial)
		if err != nil {
			return nil, &errortypes.Validation{Message: fmt.Sprintf("malformed interstitial payload: %v", err)}
		}
		adObjectExt.Interstitial = interstitial
	}
	if adObject.Rewarded != nil {
		rewarded, err := compactJSON(adObject.Rewarded)
		if err != nil {
			return nil, &errortypes.Validation{Message: fmt.Sprintf("malformed rewarded payload: %v", err)}
		}
		adObjectExt.Rewarded = rewarded
	}

	if err := openrtb.SetExtension(item, mediation.E_AdObjectExt, adObjectExt); err != nil {
		return nil, &errortypes.Serialization{Message: err.Error()}
	}
	return item, nil
}

func convertOrientation(orientation *string) *mediation.Orientation {
	if orientation == nil {
		return nil
	}
	switch *orientation {
	case schema.OrientationPortrait:
		return ptrutil.ToPtr(mediation.OrientationPortrait)
	case schema.OrientationLandscape:
		return ptrutil.ToPtr(mediation.OrientationLandscape)
	default:
		return ptrutil.ToPtr(mediation.OrientationUnknown)
	}
}

func convertBannerFormat(format string) mediation.AdFormat {
	switch format {
	case schema.AdFormatBanner:
		return mediation.AdFormatBanner
	case schema.AdFormatLeaderboard:
		return mediation.AdFormatLeaderboard
	case schema.AdFormatMREC:
		return mediation.AdFormatMrec
	case schema.AdFormatAdaptive:
		return mediation.AdFormatAdaptive
	default:
		return mediation.AdFormatUnknown
	}
}

func convertAdType(adType schema.AdType) mediation.AdType {
	switch adType {
	case schema.AdTypeBanner:
		return mediation.AdTypeBanner
	case schema.AdTypeInterstitial:
		return mediation.AdTypeInterstitial
	case schema.AdTypeRewarded:
		return mediation.AdTypeRewarded
	default:
		return mediation.AdTypeUnknown
	}
}

// convertDemands validates every demand entry eagerly. A single malformed
// entry fails the whole translation; partial demand maps never reach the
// wire.
func convertDemands(demands map[string]json.RawMessage) (map[string]*mediation.Demand, error) {
	if len(demands) == 0 {
		return nil, nil
	}
	out := make(map[string]*mediation.Demand, len(demands))
	for name, raw := range demands {
		demand, err := convertDemand(name, raw)
		if err != nil {
			return nil, err
		}
		out[name] = demand
	}
	return out, nil
}

func convertDemand(name string, raw json.RawMessage) (*mediation.Demand, error) {
	if _, dataType, _, err := jsonparser.Get(raw); err != nil || dataType != jsonparser.Object {
		return nil, &errortypes.Validation{Message: fmt.Sprintf("demand %q is not a JSON object", name)}
	}

	demand := &mediation.Demand{}

	token, err := demandString(raw, name, "token")
	if err != nil {
		return nil, err
	}
	demand.Token = token

	status, err := demandString(raw, name, "status")
	if err != nil {
		return nil, err
	}
	demand.Status = status

	startTs, err := demandInt(raw, name, "token_start_ts")
	if err != nil {
		return nil, err
	}
	demand.TokenStartTs = startTs

	finishTs, err := demandInt(raw, name, "token_finish_ts")
	if err != nil {
		return nil, err
	}
	demand.TokenFinishTs = finishTs

	return demand, nil
}

func demandString(raw json.RawMessage, name, key string) (*string, error) {
	v, err := jsonparser.GetString(raw, key)
	if err != nil {
		if errors.Is(err, jsonparser.KeyPathNotFoundError) {
			return nil, nil
		}
		return nil, &errortypes.Validation{Message: fmt.Sprintf("demand %q: field %q must be a string", name, key)}
	}
	return &v, nil
}

func demandInt(raw json.RawMessage, name, key string) (*int64, error) {
	v, err := jsonparser.GetInt(raw, key)
	if err != nil {
		if errors.Is(err, jsonparser.KeyPathNotFoundError) {
			return nil, nil
		}
		return nil, &errortypes.Validation{Message: fmt.Sprintf("demand %q: field %q must be an integer timestamp", name, key)}
	}
	return &v, nil
}

func jsonToString(v any) (*string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return ptrutil.ToPtr(string(data)), nil
}

func compactJSON(raw json.RawMessage) (*string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, err
	}
	return ptrutil.ToPtr(buf.String()), nil
}
