package messages

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseAmount(t *testing.T) {
	tests := []struct {
		text    string
		want    float64
		wantErr bool
	}{
		{text: "1200", want: 1200},
		{text: "-12.5", want: -12.5},
		{text: "0.25", want: 0.25},
		{text: "1e50", want: math.Inf(1)},
		{text: "-1e50", want: math.Inf(-1)},
		{text: "twelve", wantErr: true},
		{text: "12,5", wantErr: true},
		{text: "0x1p4", wantErr: true},
		{text: "0X1P4", wantErr: true},
		{text: "-0x1p4", wantErr: true},
		{text: "0x_1p4", wantErr: true},
		{text: "1_000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := parseAmount(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_parseAmount_AcceptsNaN(t *testing.T) {
	got, err := parseAmount("NaN")

	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}

func Test_formatAmount(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{amount: 1200, want: "1200"},
		{amount: 1250.5, want: "1250.5"},
		{amount: float64(float32(0.1)), want: "0.1"},
		{amount: -3, want: "-3"},
		{amount: math.Inf(1), want: "inf"},
		{amount: math.Inf(-1), want: "-inf"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatAmount(tt.amount))
		})
	}
}
