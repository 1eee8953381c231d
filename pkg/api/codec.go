// Package api defines the wire messages of the bill split services and
// their Connect bindings. Messages are plain Go structs carried by a JSON
// codec registered under the "json" name, so any Connect client speaking
// application/json can call the services.
package api

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// Codec is the JSON codec used by the handlers and clients in this package.
type Codec struct{}

var _ connect.Codec = Codec{}

// Name implements connect.Codec.
func (Codec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (Codec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

// Unmarshal implements connect.Codec. An empty body decodes as the zero message.
func (Codec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, message)
}
