package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatIDR(t *testing.T) {
	assert.Equal(t, "Rp 150.000", FormatIDR(150000))
	assert.Equal(t, "Rp 1.250.000", FormatIDR(1250000))
	assert.Equal(t, "Rp 0", FormatIDR(0))
}

func TestFormatIDRNegativeClampsToZero(t *testing.T) {
	assert.Equal(t, "Rp 0", FormatIDR(-500))
}

func TestFormatIDRDropsFraction(t *testing.T) {
	assert.Equal(t, "Rp 150.000", FormatIDR(149999.6))
}
