package util_test

import (
	"testing"

	"github.com/Afroza0808/1638-GraphProject/pkg/util"
	"github.com/stretchr/testify/assert"
)

func TestRoundFloat(t *testing.T) {
	assert.Equal(t, 12.35, util.RoundFloat(12.345678, 2))
	assert.Equal(t, 200.0, util.RoundFloat(199.999, 2))
	assert.Equal(t, 23.834145, util.RoundFloat(23.8341449999, 6))
	assert.Equal(t, -1.5, util.RoundFloat(-1.46, 1))
}
