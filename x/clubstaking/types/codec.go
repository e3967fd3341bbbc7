package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

// JSONValue returns a collections value codec that stores T as canonical JSON.
// The ledger records are plain Go structs, so they are persisted the same way
// they are exported in genesis.
func JSONValue[T any]() collcodec.ValueCodec[T] {
	return jsonValueCodec[T]{}
}

type jsonValueCodec[T any] struct{}

func (jsonValueCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (jsonValueCodec[T]) Decode(b []byte) (T, error) {
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return v, WrapStorage(err, fmt.Sprintf("decode %T", v))
	}
	return v, nil
}

func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

func (c jsonValueCodec[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValueCodec[T]) Stringify(value T) string {
	b, err := c.Encode(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(b)
}

func (jsonValueCodec[T]) ValueType() string {
	var v T
	return fmt.Sprintf("json(%T)", v)
}
