// Package dataset embeds the default regional job datasets.
package dataset

import "embed"

// FS holds one <region>.json document per supported region
//
//go:embed *.json
var FS embed.FS
