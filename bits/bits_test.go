package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSet(t *testing.T) {
	assert.True(t, IsSet(0b1101_1000, I1))
	assert.True(t, IsSet(0b1101_1000, I2))
	assert.False(t, IsSet(0b1101_1000, I3))
	assert.True(t, IsSet(0b1101_1000, I4))
	assert.False(t, IsSet(0b1101_1000, I8))
}

func TestWord(t *testing.T) {
	assert.Equal(t, Word(0x43, 0x42), uint16(0x4342))
	assert.Equal(t, Lo(uint16(0x4342)), byte(0x42))
	assert.Equal(t, Hi(uint16(0x4342)), byte(0x43))
}
