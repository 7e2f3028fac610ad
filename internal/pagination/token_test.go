package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/groupledger/internal/apperrors"
)

func TestExpenseCursorRoundTrip(t *testing.T) {
	c := ExpenseCursor{
		ExpenseDate: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		CreatedAt:   1710000000,
		ID:          "0b8a1f8e-6d7c-4c39-9f5b-3f2a1d0e9c11",
	}
	token := EncodeExpenseCursor(c)
	assert.NotEmpty(t, token)

	decoded, err := DecodeExpenseCursor(token)
	require.NoError(t, err)
	assert.Equal(t, c, decoded)
}

func TestActivityCursorRoundTrip(t *testing.T) {
	c := ActivityCursor{Time: time.Now().UnixNano(), ID: "abc"}
	decoded, err := DecodeActivityCursor(EncodeActivityCursor(c))
	require.NoError(t, err)
	assert.Equal(t, c, decoded)
}

func TestDecodeCursorErrors(t *testing.T) {
	_, err := DecodeExpenseCursor("not base64!!")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "base64 decode")

	_, err = DecodeExpenseCursor(base64.RawURLEncoding.EncodeToString([]byte("2024-01-01")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, err = DecodeExpenseCursor(base64.RawURLEncoding.EncodeToString([]byte("yesterday|1|id")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date parse")

	_, err = DecodeActivityCursor(base64.RawURLEncoding.EncodeToString([]byte("soon|id")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "time parse")
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, DefaultLimit, NormalizeLimit(-5))
	assert.Equal(t, 7, NormalizeLimit(7))
	assert.Equal(t, MaxLimit, NormalizeLimit(1000))
}
