package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeRFC2047(t *testing.T) {
	assert.Equal(t, "=?UTF-8?Q?hello?=", encodeRFC2047("hello"))
	assert.Equal(t, "=?UTF-8?Q?hello_world?=", encodeRFC2047("hello world"))
	// "ó" = 0xC3 0xB3 in UTF-8
	assert.Equal(t, "=?UTF-8?Q?Verificaci=C3=B3n?=", encodeRFC2047("Verificación"))
}
