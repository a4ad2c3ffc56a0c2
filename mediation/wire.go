// Package mediation defines the bidon.v1 vendor extension payloads carried
// inside the OpenRTB 3.0 wire messages: the SDK mediation data that has no
// standard OpenRTB field. Extension numbers and payload schemas here are the
// stable wire contract with the bidding engine.
package mediation

import (
	"sort"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bidon-io/bidon-proxy/openrtb"
)

// Map fields are encoded the standard protobuf way, as repeated entry
// messages with key = 1 and value = 2. Keys are emitted in sorted order so
// equal maps always encode to equal bytes.

func appendMapEntry(b []byte, num protowire.Number, key string, val []byte) []byte {
	var entry []byte
	entry = openrtb.AppendString(entry, 1, &key)
	entry = protowire.AppendTag(entry, 2, protowire.BytesType)
	entry = protowire.AppendBytes(entry, val)
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, entry)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// consumeMapEntry decodes one map entry message and returns its key and raw
// value bytes. For string-valued maps the value bytes are the string itself;
// for message-valued maps they are the serialized message.
func consumeMapEntry(b []byte, num protowire.Number, typ protowire.Type) (string, []byte, int, error) {
	entry, n, err := openrtb.ConsumeBytes(b, num, typ)
	if err != nil {
		return "", nil, 0, err
	}
	var key string
	var val []byte
	for len(entry) > 0 {
		fnum, ftyp, tagLen := protowire.ConsumeTag(entry)
		if tagLen < 0 {
			return "", nil, 0, protowire.ParseError(tagLen)
		}
		rest := entry[tagLen:]
		switch fnum {
		case 1:
			v, m, err := openrtb.ConsumeString(rest, fnum, ftyp)
			if err != nil {
				return "", nil, 0, err
			}
			key = v
			entry = rest[m:]
		case 2:
			v, m, err := openrtb.ConsumeBytes(rest, fnum, ftyp)
			if err != nil {
				return "", nil, 0, err
			}
			val = v
			entry = rest[m:]
		default:
			m := protowire.ConsumeFieldValue(fnum, ftyp, rest)
			if m < 0 {
				return "", nil, 0, protowire.ParseError(m)
			}
			entry = rest[m:]
		}
	}
	return key, val, n, nil
}

// skipField discards one unrecognized field and returns the number of value
// bytes consumed. Payload messages carry no extensions of their own, so an
// unknown field here is simply a newer peer's addition.
func skipField(b []byte, num protowire.Number, typ protowire.Type) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return n, nil
}
