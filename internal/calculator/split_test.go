package calculator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/groupledger/internal/apperrors"
	"github.com/mmynk/groupledger/internal/models"
)

func shares(pairs ...any) []Share {
	var out []Share
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, Share{ParticipantID: pairs[i].(string), Value: int64(pairs[i+1].(int))})
	}
	return out
}

func owedMap(owed []OwedShare) map[string]int64 {
	m := make(map[string]int64, len(owed))
	for _, o := range owed {
		m[o.ParticipantID] = o.Amount
	}
	return m
}

func sumOwed(owed []OwedShare) int64 {
	var sum int64
	for _, o := range owed {
		sum += o.Amount
	}
	return sum
}

func TestResolveSplit(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		mode    models.SplitMode
		paidFor []Share
		want    []OwedShare
		wantErr bool
	}{
		{
			name:    "evenly three ways gives remainder to first in list",
			amount:  1000,
			mode:    models.SplitModeEvenly,
			paidFor: shares("A", 1, "B", 1, "C", 1),
			want:    []OwedShare{{"A", 334}, {"B", 333}, {"C", 333}},
		},
		{
			name:    "evenly ignores share values",
			amount:  1001,
			mode:    models.SplitModeEvenly,
			paidFor: shares("A", 0, "B", 7, "C", 100),
			want:    []OwedShare{{"A", 334}, {"B", 334}, {"C", 333}},
		},
		{
			name:    "evenly single participant",
			amount:  999,
			mode:    models.SplitModeEvenly,
			paidFor: shares("A", 1),
			want:    []OwedShare{{"A", 999}},
		},
		{
			name:    "by shares 1:1:2",
			amount:  1000,
			mode:    models.SplitModeByShares,
			paidFor: shares("A", 1, "B", 1, "C", 2),
			want:    []OwedShare{{"A", 250}, {"B", 250}, {"C", 500}},
		},
		{
			name:    "by shares with remainder",
			amount:  100,
			mode:    models.SplitModeByShares,
			paidFor: shares("A", 1, "B", 1, "C", 1),
			want:    []OwedShare{{"A", 34}, {"B", 33}, {"C", 33}},
		},
		{
			name:    "by shares skips zero share when distributing remainder",
			amount:  101,
			mode:    models.SplitModeByShares,
			paidFor: shares("A", 0, "B", 1, "C", 1),
			want:    []OwedShare{{"A", 0}, {"B", 51}, {"C", 50}},
		},
		{
			name:    "by percentage normalises by sum",
			amount:  1000,
			mode:    models.SplitModeByPercentage,
			paidFor: shares("A", 30, "B", 30),
			want:    []OwedShare{{"A", 500}, {"B", 500}},
		},
		{
			name:    "by percentage in hundredths of a percent",
			amount:  1000,
			mode:    models.SplitModeByPercentage,
			paidFor: shares("A", 2500, "B", 7500),
			want:    []OwedShare{{"A", 250}, {"B", 750}},
		},
		{
			name:    "by amount exact",
			amount:  1000,
			mode:    models.SplitModeByAmount,
			paidFor: shares("A", 100, "B", 900),
			want:    []OwedShare{{"A", 100}, {"B", 900}},
		},
		{
			name:    "negative amount evenly",
			amount:  -1000,
			mode:    models.SplitModeEvenly,
			paidFor: shares("A", 1, "B", 1, "C", 1),
			want:    []OwedShare{{"A", -334}, {"B", -333}, {"C", -333}},
		},
		{
			name:    "zero amount",
			amount:  0,
			mode:    models.SplitModeEvenly,
			paidFor: shares("A", 1, "B", 1),
			want:    []OwedShare{{"A", 0}, {"B", 0}},
		},
		{
			name:    "by amount mismatch",
			amount:  1000,
			mode:    models.SplitModeByAmount,
			paidFor: shares("A", 400, "B", 500),
			wantErr: true,
		},
		{
			name:    "empty paid for",
			amount:  1000,
			mode:    models.SplitModeEvenly,
			wantErr: true,
		},
		{
			name:    "empty paid for by amount",
			amount:  0,
			mode:    models.SplitModeByAmount,
			wantErr: true,
		},
		{
			name:    "zero total shares",
			amount:  1000,
			mode:    models.SplitModeByShares,
			paidFor: shares("A", 0, "B", 0),
			wantErr: true,
		},
		{
			name:    "zero total percentage",
			amount:  1000,
			mode:    models.SplitModeByPercentage,
			paidFor: shares("A", 0),
			wantErr: true,
		},
		{
			name:    "negative share",
			amount:  1000,
			mode:    models.SplitModeByShares,
			paidFor: shares("A", -1, "B", 3),
			wantErr: true,
		},
		{
			name:    "duplicate participant",
			amount:  1000,
			mode:    models.SplitModeEvenly,
			paidFor: shares("A", 1, "A", 1),
			wantErr: true,
		},
		{
			name:    "unknown mode",
			amount:  1000,
			mode:    "BY_MAGIC",
			paidFor: shares("A", 1),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSplit(tt.amount, tt.mode, tt.paidFor)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.amount, sumOwed(got))
		})
	}
}

func TestResolveSplit_LargeValuesDoNotOverflow(t *testing.T) {
	amount := int64(math.MaxInt64 - 1)
	got, err := ResolveSplit(amount, models.SplitModeByShares, shares("A", math.MaxInt32, "B", math.MaxInt32, "C", 1))
	require.NoError(t, err)
	assert.Equal(t, amount, sumOwed(got))

	_, err = ResolveSplit(math.MinInt64, models.SplitModeEvenly, shares("A", 1))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestResolveSplit_ExactnessAndDeterminism(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	modes := []models.SplitMode{models.SplitModeEvenly, models.SplitModeByShares, models.SplitModeByPercentage}
	ids := []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"}

	for i := 0; i < 2000; i++ {
		n := 1 + rng.Intn(len(ids))
		paidFor := make([]Share, n)
		for j := 0; j < n; j++ {
			paidFor[j] = Share{ParticipantID: ids[j], Value: int64(rng.Intn(10000))}
		}
		paidFor[0].Value++ // keep the total positive
		amount := rng.Int63n(10_000_000) - 1_000_000
		mode := modes[rng.Intn(len(modes))]

		first, err := ResolveSplit(amount, mode, paidFor)
		require.NoError(t, err)
		require.Equal(t, amount, sumOwed(first), "mode=%s amount=%d shares=%v", mode, amount, paidFor)

		second, err := ResolveSplit(amount, mode, paidFor)
		require.NoError(t, err)
		require.Equal(t, first, second)
	}
}

func TestResolveSplit_ByAmountRandomExact(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		paidFor := []Share{
			{ParticipantID: "a", Value: rng.Int63n(5000)},
			{ParticipantID: "b", Value: rng.Int63n(5000)},
		}
		amount := paidFor[0].Value + paidFor[1].Value
		got, err := ResolveSplit(amount, models.SplitModeByAmount, paidFor)
		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"a": paidFor[0].Value, "b": paidFor[1].Value}, owedMap(got))
	}
}
