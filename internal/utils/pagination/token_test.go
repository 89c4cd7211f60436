package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	entryDate := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 3, 31, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(entryDate, createdAt)
	assert.NotEmpty(t, token)

	decodedEntryDate, decodedCreatedAt, err := DecodeToken(token)
	assert.NoError(t, err)
	assert.Equal(t, entryDate, decodedEntryDate)
	assert.Equal(t, createdAt, decodedCreatedAt)

	// Zero values survive the round trip too.
	zeroToken := EncodeToken(time.Time{}, time.Time{})
	decodedZeroDate, decodedZeroCreated, err := DecodeToken(zeroToken)
	assert.NoError(t, err)
	assert.True(t, decodedZeroDate.IsZero())
	assert.True(t, decodedZeroCreated.IsZero())
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	// Base64 encoded date without the separator.
	_, _, err = DecodeToken("MjAyMy0wNS0xNVQwMDowMDowMFo=")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	// Base64 encoded "notadate|2023-05-15T14:30:45.123456789Z".
	_, _, err = DecodeToken("bm90YWRhdGV8MjAyMy0wNS0xNVQxNDozMDo0NS4xMjM0NTY3ODla")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "entry date parse")
}
