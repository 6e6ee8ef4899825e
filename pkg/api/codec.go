// Package api defines the ledger's wire messages and the Connect handlers
// and clients that carry them. Messages are plain Go structs encoded as JSON.
package api

import (
	"encoding/json"
	"fmt"
)

// JSONCodec is a connect.Codec for the plain-struct messages in this
// package. It registers under the name "json", so requests use
// Content-Type application/json.
type JSONCodec struct{}

// Name implements connect.Codec.
func (JSONCodec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (JSONCodec) Marshal(message any) ([]byte, error) {
	data, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", message, err)
	}
	return data, nil
}

// Unmarshal implements connect.Codec. An empty body decodes as the zero
// message.
func (JSONCodec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, message); err != nil {
		return fmt.Errorf("unmarshal into %T: %w", message, err)
	}
	return nil
}
