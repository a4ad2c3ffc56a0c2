package bidding

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/bidon-io/bidon-proxy/codec"
	"github.com/bidon-io/bidon-proxy/errortypes"
	"github.com/bidon-io/bidon-proxy/openrtb"
)

const bidMethod = "/bidon.v1.BiddingService/Bid"

// GRPCClient is a Bidder speaking the binary protocol over grpc. It holds
// one long-lived client connection; grpc multiplexes concurrent calls over
// it, so a single client serves all in-flight requests.
type GRPCClient struct {
	conn  *grpc.ClientConn
	codec codec.Codec
}

// NewGRPCClient dials target and returns a connected client. Responses are
// decoded through reg so extension payloads come back typed.
func NewGRPCClient(target string, reg *openrtb.Registry, opts ...grpc.DialOption) (*GRPCClient, error) {
	opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	conn, err := grpc.Dial(target, opts...)
	if err != nil {
		return nil, &errortypes.Transport{Message: err.Error()}
	}
	return &GRPCClient{conn: conn, codec: codec.New(reg)}, nil
}

func (c *GRPCClient) Bid(ctx context.Context, req *openrtb.Openrtb) (*openrtb.Openrtb, error) {
	var resp openrtb.Openrtb
	if err := c.conn.Invoke(ctx, bidMethod, req, &resp, grpc.ForceCodec(c.codec)); err != nil {
		st := status.Convert(err)
		return nil, &errortypes.Transport{
			Message:  st.Message(),
			GRPCCode: int(st.Code()),
		}
	}
	return &resp, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}
