// Package content holds static copy served by the pages endpoint.
package content

import _ "embed"

//go:embed pages.yaml
var Pages []byte
