package symbologies

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ericlevine/quickcodes"
)

func TestAllRegistered(t *testing.T) {
	for _, s := range quickcodes.Symbologies() {
		assert.True(t, quickcodes.Registered(s), s.String())
	}
}
