// Package schemas embeds the JSON Schemas for inbound portal data.
package schemas

import _ "embed"

// Event is the schema for one shell event line.
//
//go:embed event.schema.json
var Event string
