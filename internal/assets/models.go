package assets

import _ "embed"

// ModelsData holds the raw JSON catalog of selectable models.
//
//go:embed models.json
var ModelsData []byte
