package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringPtr(t *testing.T) {
	assert.Nil(t, StringPtr(""))

	p := StringPtr("101")
	require.NotNil(t, p)
	assert.Equal(t, "101", *p)
}

func TestSummaryDate(t *testing.T) {
	assert.Equal(t, "01/03/2026", SummaryDate(time.Date(2026, 3, 1, 23, 55, 0, 0, time.UTC)))
}

func TestGenerateQRCode(t *testing.T) {
	png, err := GenerateQRCode("0042", 200)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG signature
	assert.Equal(t, byte(0x89), png[0])
	assert.Equal(t, []byte("PNG"), png[1:4])
}
