package endpoints

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang/glog"
	"github.com/julienschmidt/httprouter"

	"github.com/bidon-io/bidon-proxy/adapters/bidon"
	"github.com/bidon-io/bidon-proxy/bidding"
	"github.com/bidon-io/bidon-proxy/config"
	"github.com/bidon-io/bidon-proxy/errortypes"
	"github.com/bidon-io/bidon-proxy/metrics"
	"github.com/bidon-io/bidon-proxy/schema"
	"github.com/bidon-io/bidon-proxy/util/httputil"
)

const versionHeader = "x-bidon-version"

type auctionDeps struct {
	cfg    *config.Configuration
	bidder bidding.Bidder
	me     *metrics.Metrics
}

// NewAuctionEndpoint builds the handler for POST /v2/auction/:ad_type.
func NewAuctionEndpoint(cfg *config.Configuration, bidder bidding.Bidder, me *metrics.Metrics) httprouter.Handle {
	deps := &auctionDeps{
		cfg:    cfg,
		bidder: bidder,
		me:     me,
	}
	return deps.Auction
}

func (deps *auctionDeps) Auction(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	start := time.Now()

	adType, err := schema.ParseAdType(ps.ByName("ad_type"))
	if err != nil {
		deps.writeError(w, "unknown", &errortypes.Validation{Message: err.Error()})
		return
	}
	adTypeLabel := string(adType)

	sdkVersion := r.Header.Get(versionHeader)
	if sdkVersion == "" && deps.cfg.RequireVersionHeader {
		deps.writeError(w, adTypeLabel, &errortypes.Validation{
			Message: fmt.Sprintf("missing required header %q", versionHeader),
		})
		return
	}

	req, err := deps.parseRequest(r)
	if err != nil {
		deps.writeError(w, adTypeLabel, err)
		return
	}

	wireReq, err := bidon.RequestToOpenRTB(req, bidon.RequestParams{
		AdType:       adType,
		BidonVersion: sdkVersion,
		ClientIP:     httputil.FindClientIP(r),
	})
	if err != nil {
		deps.writeError(w, adTypeLabel, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), deps.bidTimeout(req))
	defer cancel()

	upstreamStart := time.Now()
	wireResp, err := deps.bidder.Bid(ctx, wireReq)
	deps.me.RecordUpstreamTime(adTypeLabel, time.Since(upstreamStart))
	if err != nil {
		deps.writeError(w, adTypeLabel, err)
		return
	}

	// A response payload must translate cleanly before any bytes reach the
	// SDK. Echo backends answer with the request envelope, which has nothing
	// to translate and passes through untouched.
	if wireResp.GetResponse() != nil {
		auctionResp, err := bidon.ResponseFromOpenRTB(wireResp)
		if err != nil {
			deps.writeError(w, adTypeLabel, err)
			return
		}
		deps.recordBids(adTypeLabel, auctionResp)
	}

	w.Header().Set("Content-Type", "application/x-protobuf")
	w.WriteHeader(http.StatusOK)
	w.Write(wireResp.AppendWire(nil))

	deps.me.RecordAuctionRequest(adTypeLabel, metrics.RequestStatusOK)
	deps.me.RecordAuctionTime(adTypeLabel, time.Since(start))
}

func (deps *auctionDeps) parseRequest(r *http.Request) (*schema.AuctionRequest, error) {
	limit := deps.cfg.MaxRequestSize
	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, &errortypes.Validation{Message: fmt.Sprintf("failed to read request body: %v", err)}
	}
	if int64(len(body)) > limit {
		return nil, &errortypes.Validation{Message: fmt.Sprintf("request size exceeded max size of %d bytes", limit)}
	}

	var req schema.AuctionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, &errortypes.Validation{Message: fmt.Sprintf("failed to decode auction request: %v", err)}
	}
	return &req, nil
}

// bidTimeout bounds the upstream call: the request's tmax when supplied,
// the configured default otherwise.
func (deps *auctionDeps) bidTimeout(req *schema.AuctionRequest) time.Duration {
	if req.TMax != nil && *req.TMax > 0 {
		return time.Duration(*req.TMax) * time.Millisecond
	}
	return time.Duration(deps.cfg.DefaultTimeoutMS) * time.Millisecond
}

func (deps *auctionDeps) recordBids(adTypeLabel string, resp *schema.AuctionResponse) {
	for range resp.AdUnits {
		deps.me.RecordBid(adTypeLabel, metrics.BidOutcomeWin)
	}
	for range resp.NoBids {
		deps.me.RecordBid(adTypeLabel, metrics.BidOutcomeNoBid)
	}
}

func (deps *auctionDeps) writeError(w http.ResponseWriter, adTypeLabel string, err error) {
	status, body := bidding.TranslateError(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(body); encodeErr != nil {
		glog.Errorf("/v2/auction: failed to write error response: %v", encodeErr)
	}

	deps.me.RecordAuctionRequest(adTypeLabel, requestStatus(err))
}

func requestStatus(err error) string {
	switch errortypes.ReadCode(err) {
	case errortypes.ValidationErrorCode, errortypes.SerializationErrorCode:
		return metrics.RequestStatusBadInput
	case errortypes.TransportErrorCode, errortypes.UpstreamHTTPErrorCode:
		return metrics.RequestStatusUpstream
	default:
		return metrics.RequestStatusInternal
	}
}
