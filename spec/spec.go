// Package spec embeds the OpenAPI description of the HTTP API so the
// server can serve its own contract at /openapi.yaml.
package spec

import _ "embed"

//go:embed openapi.yaml
var OpenAPI []byte
