// Package bidding forwards translated auction requests to a bidding backend.
package bidding

import (
	"context"

	"github.com/bidon-io/bidon-proxy/openrtb"
)

// Bidder runs one auction against a backend. Implementations must be safe
// for concurrent use; one Bidder instance serves all in-flight requests.
type Bidder interface {
	Bid(ctx context.Context, req *openrtb.Openrtb) (*openrtb.Openrtb, error)
}

// Echo is a Bidder returning the request envelope unchanged. Useful for
// exercising the full translation path without a bidding engine.
type Echo struct{}

func (Echo) Bid(_ context.Context, req *openrtb.Openrtb) (*openrtb.Openrtb, error) {
	return req, nil
}
