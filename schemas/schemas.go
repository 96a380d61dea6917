// Package schemas embeds the JSON Schema documents used to validate
// configuration files.
package schemas

import _ "embed"

// ConfigSchemaJSON is the JSON Schema for .pollscore.yaml files.
//
//go:embed pollscore.schema.json
var ConfigSchemaJSON string
