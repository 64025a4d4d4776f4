package common

import (
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// JSONCodecName is the gRPC content-subtype of the JSON codec.
const JSONCodecName = "json"

// jsonCodec lets services exchange plain Go structs over gRPC.
// Proto messages (health checks, timestamps) go through protojson.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return protojson.Marshal(m)
	}
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if m, ok := v.(proto.Message); ok {
		return protojson.Unmarshal(data, m)
	}
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return JSONCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// JSONCallOption selects the JSON codec for a client call or connection.
func JSONCallOption() grpc.CallOption {
	return grpc.CallContentSubtype(JSONCodecName)
}
