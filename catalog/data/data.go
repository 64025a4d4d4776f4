// Package data embeds the default boutique catalog.
package data

import "embed"

// FS holds products.json, collections.json and testimonials.json.
//
//go:embed *.json
var FS embed.FS
