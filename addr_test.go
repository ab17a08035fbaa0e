package waypoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/waypoint"
)

func TestNormalizeAddr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ":3000", waypoint.NormalizeAddr("3000"))
	assert.Equal(t, ":3000", waypoint.NormalizeAddr(":3000"))
	assert.Equal(t, "localhost:3000", waypoint.NormalizeAddr("localhost:3000"))
	assert.Equal(t, "localhost", waypoint.NormalizeAddr("localhost"))
	assert.Equal(t, "", waypoint.NormalizeAddr(""))
}
