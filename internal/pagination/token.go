// Package pagination encodes opaque cursors for keyset pagination.
package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mmynk/groupledger/internal/apperrors"
)

const (
	// DefaultLimit is the page size used when the caller does not ask for one.
	DefaultLimit = 20
	// MaxLimit caps the page size a caller may request.
	MaxLimit = 100

	dateLayout = "2006-01-02"
)

// NormalizeLimit clamps a requested page size to [1, MaxLimit].
func NormalizeLimit(limit int32) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return int(limit)
	}
}

// ExpenseCursor identifies the last expense of a page. Expenses are ordered
// by (ExpenseDate, CreatedAt, ID) descending.
type ExpenseCursor struct {
	ExpenseDate time.Time
	CreatedAt   int64
	ID          string
}

// EncodeExpenseCursor creates an opaque token from c.
func EncodeExpenseCursor(c ExpenseCursor) string {
	return encodeFields(c.ExpenseDate.Format(dateLayout), strconv.FormatInt(c.CreatedAt, 10), c.ID)
}

// DecodeExpenseCursor parses a token produced by EncodeExpenseCursor.
func DecodeExpenseCursor(token string) (ExpenseCursor, error) {
	parts, err := decodeFields(token, 3)
	if err != nil {
		return ExpenseCursor{}, err
	}
	date, err := time.Parse(dateLayout, parts[0])
	if err != nil {
		return ExpenseCursor{}, fmt.Errorf("%w: invalid cursor (date parse): %v", apperrors.ErrValidation, err)
	}
	createdAt, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return ExpenseCursor{}, fmt.Errorf("%w: invalid cursor (created_at parse): %v", apperrors.ErrValidation, err)
	}
	return ExpenseCursor{ExpenseDate: date, CreatedAt: createdAt, ID: parts[2]}, nil
}

// ActivityCursor identifies the last activity of a page. Activities are
// ordered by (Time, ID) descending.
type ActivityCursor struct {
	Time int64
	ID   string
}

// EncodeActivityCursor creates an opaque token from c.
func EncodeActivityCursor(c ActivityCursor) string {
	return encodeFields(strconv.FormatInt(c.Time, 10), c.ID)
}

// DecodeActivityCursor parses a token produced by EncodeActivityCursor.
func DecodeActivityCursor(token string) (ActivityCursor, error) {
	parts, err := decodeFields(token, 2)
	if err != nil {
		return ActivityCursor{}, err
	}
	ts, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return ActivityCursor{}, fmt.Errorf("%w: invalid cursor (time parse): %v", apperrors.ErrValidation, err)
	}
	return ActivityCursor{Time: ts, ID: parts[1]}, nil
}

func encodeFields(fields ...string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strings.Join(fields, "|")))
}

func decodeFields(token string, n int) ([]string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid cursor (base64 decode): %v", apperrors.ErrValidation, err)
	}
	parts := strings.SplitN(string(raw), "|", n)
	if len(parts) != n {
		return nil, fmt.Errorf("%w: invalid cursor (split)", apperrors.ErrValidation)
	}
	return parts, nil
}
