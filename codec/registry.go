package codec

import "fmt"

// Hint is the marshal-hint value stored in a Binary Ingredient's header. It
// names which Codec produced the bytes that follow, so a reader that knows
// the target type can pick the right one without out-of-band metadata.
type Hint uint32

const (
	HintRaw Hint = iota
	HintJSON
	HintCBOR
	HintMsgpack
	HintProtobuf
)

func (h Hint) String() string {
	switch h {
	case HintRaw:
		return "raw"
	case HintJSON:
		return "json"
	case HintCBOR:
		return "cbor"
	case HintMsgpack:
		return "msgpack"
	case HintProtobuf:
		return "protobuf"
	default:
		return fmt.Sprintf("hint(%d)", uint32(h))
	}
}

// Registry dispatches Encode/Decode of a value of type V across the JSON,
// CBOR, and Msgpack codecs by Hint. HintRaw and HintProtobuf are not
// covered: Raw has no structure to marshal beyond the identity Bytes codec,
// and Protobuf requires a concrete proto.Message type that Registry's type
// parameter can't express generically — use Protobuf[T] directly for those.
type Registry[V any] struct {
	json JSON[V]
	cbor CBOR[V]
	pack Msgpack[V]
}

// NewRegistry builds a Registry. deterministic controls the CBOR codec's
// encoding mode (see NewCBOR).
func NewRegistry[V any](deterministic bool) (Registry[V], error) {
	c, err := NewCBOR[V](deterministic)
	if err != nil {
		return Registry[V]{}, err
	}
	return Registry[V]{cbor: c}, nil
}

// Encode serializes v with the codec named by hint.
func (r Registry[V]) Encode(hint Hint, v V) ([]byte, error) {
	switch hint {
	case HintJSON:
		return r.json.Encode(v)
	case HintCBOR:
		return r.cbor.Encode(v)
	case HintMsgpack:
		return r.pack.Encode(v)
	default:
		return nil, fmt.Errorf("codec: registry has no encoder for %v", hint)
	}
}

// Decode deserializes data with the codec named by hint.
func (r Registry[V]) Decode(hint Hint, data []byte) (V, error) {
	switch hint {
	case HintJSON:
		return r.json.Decode(data)
	case HintCBOR:
		return r.cbor.Decode(data)
	case HintMsgpack:
		return r.pack.Decode(data)
	default:
		var zero V
		return zero, fmt.Errorf("codec: registry has no decoder for %v", hint)
	}
}
