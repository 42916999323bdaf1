// Package docs registers the OpenAPI document with swag so echo-swagger can
// serve it at /swagger/doc.json.
package docs

import (
	"encoding/json"

	"cafeteria/internal/generated/servers"

	"github.com/swaggo/swag"
)

type document struct{}

// ReadDoc renders the embedded OpenAPI document as JSON. It returns an empty
// object if the document cannot be loaded.
func (document) ReadDoc() string {
	doc, err := servers.GetSwagger()
	if err != nil {
		return "{}"
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func init() {
	swag.Register(swag.Name, document{})
}
