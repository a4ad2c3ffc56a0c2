package mediation

import (
	"github.com/bidon-io/bidon-proxy/openrtb"
)

// Extension descriptors of the bidon.v1 wire contract. The field numbers are
// stable: the bidding engine decodes by number, so renumbering is a breaking
// protocol change.
var (
	E_RequestExt = openrtb.ExtensionDesc{
		Extendee: openrtb.RequestName,
		Number:   100,
		Name:     "bidon.v1.RequestExt",
		New:      func() openrtb.Message { return new(RequestExt) },
	}
	E_AppExt = openrtb.ExtensionDesc{
		Extendee: openrtb.AppName,
		Number:   101,
		Name:     "bidon.v1.AppExt",
		New:      func() openrtb.Message { return new(AppExt) },
	}
	E_DeviceExt = openrtb.ExtensionDesc{
		Extendee: openrtb.DeviceName,
		Number:   102,
		Name:     "bidon.v1.DeviceExt",
		New:      func() openrtb.Message { return new(DeviceExt) },
	}
	E_UserExt = openrtb.ExtensionDesc{
		Extendee: openrtb.UserName,
		Number:   103,
		Name:     "bidon.v1.UserExt",
		New:      func() openrtb.Message { return new(UserExt) },
	}
	E_RegsExt = openrtb.ExtensionDesc{
		Extendee: openrtb.RegsName,
		Number:   104,
		Name:     "bidon.v1.RegsExt",
		New:      func() openrtb.Message { return new(RegsExt) },
	}
	E_AdObjectExt = openrtb.ExtensionDesc{
		Extendee: openrtb.ItemName,
		Number:   105,
		Name:     "bidon.v1.AdObjectExt",
		New:      func() openrtb.Message { return new(AdObjectExt) },
	}
	E_BidExt = openrtb.ExtensionDesc{
		Extendee: openrtb.BidName,
		Number:   106,
		Name:     "bidon.v1.BidExt",
		New:      func() openrtb.Message { return new(BidExt) },
	}
	E_AuctionResponseExt = openrtb.ExtensionDesc{
		Extendee: openrtb.ResponseName,
		Number:   107,
		Name:     "bidon.v1.AuctionResponseExt",
		New:      func() openrtb.Message { return new(AuctionResponseExt) },
	}
)

// NewRegistry returns a registry carrying every bidon.v1 extension. The
// descriptor set is static and known collision-free, so a registration
// failure here is a programming error.
func NewRegistry() *openrtb.Registry {
	reg := openrtb.NewRegistry()
	for _, desc := range []openrtb.ExtensionDesc{
		E_RequestExt,
		E_AppExt,
		E_DeviceExt,
		E_UserExt,
		E_RegsExt,
		E_AdObjectExt,
		E_BidExt,
		E_AuctionResponseExt,
	} {
		if err := reg.Register(desc); err != nil {
			panic(err)
		}
	}
	return reg
}
