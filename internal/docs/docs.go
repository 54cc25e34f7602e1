// Package docs embeds the OpenAPI document and registers it with swag so
// gin-swagger can serve it.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed openapi.json
var openAPI string

type document struct{}

func (document) ReadDoc() string {
	return openAPI
}

func init() {
	swag.Register(swag.Name, document{})
}

// JSON returns the raw OpenAPI document.
func JSON() []byte {
	return []byte(openAPI)
}
