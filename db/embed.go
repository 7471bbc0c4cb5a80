// Package db provides the embedded seed catalog served by the development
// backend.
package db

import _ "embed"

// Products contains the seed catalog as a JSON product list.
//
//go:embed products.json
var Products []byte
