package scenario

import (
	"bytes"
	_ "embed"
)

//go:embed demo.yaml
var demo []byte

// Demo returns the built-in walk-through: three names added at the head,
// the head removed, then the list drained from both ends.
func Demo() *Scenario {
	s, err := Parse(bytes.NewReader(demo))
	if err != nil {
		panic(err)
	}

	return s
}
