// Package codec adapts the openrtb wire messages to the grpc codec
// interface. The codec is injected per call site with grpc.ForceCodec rather
// than registered in the global grpc codec table, so each client carries
// exactly the extension registry it was built with.
package codec

import (
	"fmt"

	"github.com/bidon-io/bidon-proxy/openrtb"
)

// Name is the codec name reported to grpc content-type negotiation.
const Name = "bidon"

// Codec encodes and decodes openrtb wire messages. Decoding resolves
// extension fields through the registry supplied at construction; encoding
// is registry-independent.
type Codec struct {
	reg *openrtb.Registry
}

// New returns a codec decoding extensions through reg. A nil reg is valid:
// extension fields then survive as retained raw bytes.
func New(reg *openrtb.Registry) Codec {
	return Codec{reg: reg}
}

func (c Codec) Name() string {
	return Name
}

func (c Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(openrtb.Message)
	if !ok {
		return nil, fmt.Errorf("codec: cannot marshal %T, expected an openrtb wire message", v)
	}
	return m.AppendWire(nil), nil
}

func (c Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(openrtb.Message)
	if !ok {
		return fmt.Errorf("codec: cannot unmarshal into %T, expected an openrtb wire message", v)
	}
	return m.UnmarshalWire(data, c.reg)
}
