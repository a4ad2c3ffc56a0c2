// Package openrtb implements the OpenRTB 3.0 / AdCOM binary wire protocol
// spoken with the downstream bidding engine, including support for vendor
// extension fields resolved through a runtime-supplied Registry.
//
// Message schemas are maintained by hand on top of protowire. Standard field
// numbers follow the IAB OpenRTB 3.0 protobuf definitions; extension numbers
// are the bidon.v1 wire contract (see the mediation package).
package openrtb

import (
	"fmt"
	"math"
	"sort"

	"google.golang.org/protobuf/encoding/protowire"
)

// Message is implemented by every wire protocol message.
//
// AppendWire appends the protobuf encoding of the message to b. Encoding
// never fails: any value constructible through the typed API is encodable.
//
// UnmarshalWire replaces the message contents with the decoding of b.
// Extension fields are resolved through reg; with a nil reg their bytes are
// retained verbatim and re-emitted on encode.
type Message interface {
	AppendWire(b []byte) []byte
	UnmarshalWire(b []byte, reg *Registry) error
}

// ExtensionDesc describes one vendor extension: which message it extends,
// under which field number, and how to construct an empty payload.
type ExtensionDesc struct {
	// Extendee is the full wire name of the extended message,
	// e.g. "com.iabtechlab.openrtb.v3.Bid".
	Extendee string
	// Number is the extension field number. Stable; part of the wire contract.
	Number protowire.Number
	// Name is the full wire name of the payload message, for diagnostics.
	Name string
	// New constructs an empty payload message.
	New func() Message
}

type extKey struct {
	extendee string
	number   protowire.Number
}

// Registry maps extension identifiers to payload decoders. It is built once
// at startup, handed to the wire codec, and never mutated afterwards, so
// concurrent readers need no synchronization.
type Registry struct {
	rules map[extKey]ExtensionDesc
}

// NewRegistry returns an empty extension registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[extKey]ExtensionDesc)}
}

// Register adds a decode rule. Registering a second rule for an occupied
// (extendee, number) pair is an error, never a silent overwrite.
func (r *Registry) Register(desc ExtensionDesc) error {
	if desc.New == nil {
		return fmt.Errorf("openrtb: extension %s has no payload constructor", desc.Name)
	}
	key := extKey{desc.Extendee, desc.Number}
	if prev, ok := r.rules[key]; ok {
		return fmt.Errorf("openrtb: extension number %d of %s already registered to %s", desc.Number, desc.Extendee, prev.Name)
	}
	r.rules[key] = desc
	return nil
}

func (r *Registry) lookup(extendee string, num protowire.Number) (ExtensionDesc, bool) {
	if r == nil {
		return ExtensionDesc{}, false
	}
	desc, ok := r.rules[extKey{extendee, num}]
	return desc, ok
}

// Extendable is implemented by wire messages that accept vendor extensions.
type Extendable interface {
	Message
	// WireName returns the full wire name of the message.
	WireName() string
	// Extensions returns the message's extension set.
	Extensions() *ExtensionSet
}

// SetExtension attaches a payload to m under desc. At most one payload may
// be attached per extension number; a second attach for the same number is
// an error.
func SetExtension(m Extendable, desc ExtensionDesc, payload Message) error {
	if desc.Extendee != m.WireName() {
		return fmt.Errorf("openrtb: extension %s does not extend %s", desc.Name, m.WireName())
	}
	return m.Extensions().set(desc.Number, payload)
}

// GetExtension returns the payload attached to m under desc, decoded as T.
// Absence is reported through ok, not an error: an absent extension means
// "not supplied", not "empty".
func GetExtension[T Message](m Extendable, desc ExtensionDesc) (T, bool) {
	var zero T
	v, ok := m.Extensions().get(desc.Number)
	if !ok {
		return zero, false
	}
	casted, ok := v.(T)
	if !ok {
		return zero, false
	}
	return casted, true
}

// ExtensionSet holds the non-standard fields of a received or constructed
// message: decoded extension payloads keyed by field number, plus the raw
// bytes of any field no registry rule matched. Raw fields are re-emitted on
// encode so unknown extensions survive a proxy hop untouched.
type ExtensionSet struct {
	values map[protowire.Number]Message
	raw    []byte
}

func (s *ExtensionSet) set(num protowire.Number, m Message) error {
	if _, ok := s.values[num]; ok {
		return fmt.Errorf("openrtb: extension %d already attached", num)
	}
	if s.values == nil {
		s.values = make(map[protowire.Number]Message)
	}
	s.values[num] = m
	return nil
}

func (s *ExtensionSet) get(num protowire.Number) (Message, bool) {
	m, ok := s.values[num]
	return m, ok
}

// Len returns the number of decoded extension payloads.
func (s *ExtensionSet) Len() int {
	return len(s.values)
}

// consumeField absorbs one unrecognized field. b starts at the field's tag,
// whose encoded length the caller passes as tagLen. If reg carries a rule for
// (extendee, num) the payload is decoded and attached; otherwise the field
// bytes are retained verbatim. Returns the total number of bytes consumed.
func (s *ExtensionSet) consumeField(extendee string, num protowire.Number, typ protowire.Type, tagLen int, b []byte, reg *Registry) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b[tagLen:])
	if n < 0 {
		return 0, fmt.Errorf("openrtb: malformed field %d of %s: %w", num, extendee, protowire.ParseError(n))
	}
	total := tagLen + n

	desc, ok := reg.lookup(extendee, num)
	if !ok || typ != protowire.BytesType {
		s.raw = append(s.raw, b[:total]...)
		return total, nil
	}

	payload, m := protowire.ConsumeBytes(b[tagLen:])
	if m < 0 {
		return 0, fmt.Errorf("openrtb: malformed extension %s: %w", desc.Name, protowire.ParseError(m))
	}
	msg := desc.New()
	if err := msg.UnmarshalWire(payload, reg); err != nil {
		return 0, fmt.Errorf("openrtb: extension %s: %w", desc.Name, err)
	}
	if err := s.set(num, msg); err != nil {
		return 0, err
	}
	return total, nil
}

// appendWire emits decoded extensions (in field-number order, for
// deterministic output) followed by retained raw fields.
func (s *ExtensionSet) appendWire(b []byte) []byte {
	if len(s.values) > 0 {
		nums := make([]protowire.Number, 0, len(s.values))
		for num := range s.values {
			nums = append(nums, num)
		}
		sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })
		for _, num := range nums {
			b = protowire.AppendTag(b, num, protowire.BytesType)
			b = protowire.AppendBytes(b, s.values[num].AppendWire(nil))
		}
	}
	return append(b, s.raw...)
}

// Scalar append helpers. A nil pointer means "field absent" and emits
// nothing, mirroring proto2 optional semantics.

func AppendString(b []byte, num protowire.Number, v *string) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, *v)
}

func AppendRepeatedString(b []byte, num protowire.Number, vs []string) []byte {
	for _, v := range vs {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendString(b, v)
	}
	return b
}

func AppendBool(b []byte, num protowire.Number, v *bool) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(*v))
}

func AppendInt32(b []byte, num protowire.Number, v *int32) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(*v)))
}

func AppendInt64(b []byte, num protowire.Number, v *int64) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(*v))
}

func AppendRepeatedInt64(b []byte, num protowire.Number, vs []int64) []byte {
	for _, v := range vs {
		b = protowire.AppendTag(b, num, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(v))
	}
	return b
}

func AppendUint32(b []byte, num protowire.Number, v *uint32) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(*v))
}

func AppendFloat32(b []byte, num protowire.Number, v *float32) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, math.Float32bits(*v))
}

func AppendFloat64(b []byte, num protowire.Number, v *float64) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(*v))
}

func AppendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func AppendMessage(b []byte, num protowire.Number, m Message) []byte {
	if m == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.AppendWire(nil))
}

func AppendEnum[E ~int32](b []byte, num protowire.Number, v *E) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(*v)))
}

// Scalar consume helpers. Each checks the observed wire type and returns the
// number of value bytes consumed.

func ConsumeString(b []byte, num protowire.Number, typ protowire.Type) (string, int, error) {
	if typ != protowire.BytesType {
		return "", 0, wireTypeError(num, typ)
	}
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return "", 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func ConsumeBytes(b []byte, num protowire.Number, typ protowire.Type) ([]byte, int, error) {
	if typ != protowire.BytesType {
		return nil, 0, wireTypeError(num, typ)
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, n, nil
}

func ConsumeVarint(b []byte, num protowire.Number, typ protowire.Type) (uint64, int, error) {
	if typ != protowire.VarintType {
		return 0, 0, wireTypeError(num, typ)
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func ConsumeBool(b []byte, num protowire.Number, typ protowire.Type) (bool, int, error) {
	v, n, err := ConsumeVarint(b, num, typ)
	return protowire.DecodeBool(v), n, err
}

func ConsumeFloat32(b []byte, num protowire.Number, typ protowire.Type) (float32, int, error) {
	if typ != protowire.Fixed32Type {
		return 0, 0, wireTypeError(num, typ)
	}
	v, n := protowire.ConsumeFixed32(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return math.Float32frombits(v), n, nil
}

func ConsumeFloat64(b []byte, num protowire.Number, typ protowire.Type) (float64, int, error) {
	if typ != protowire.Fixed64Type {
		return 0, 0, wireTypeError(num, typ)
	}
	v, n := protowire.ConsumeFixed64(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return math.Float64frombits(v), n, nil
}

func wireTypeError(num protowire.Number, typ protowire.Type) error {
	return fmt.Errorf("openrtb: unexpected wire type %d for field %d", typ, num)
}
