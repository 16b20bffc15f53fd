package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posh-choice/storefront-core/pkg/e"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr error
	}{
		{name: "whole", in: "600", want: 60000},
		{name: "two decimals", in: "599.99", want: 59999},
		{name: "one decimal", in: "12.5", want: 1250},
		{name: "zero", in: "0", want: 0},
		{name: "negative", in: "-5", wantErr: e.ErrInvalidPrice},
		{name: "three decimals", in: "1.999", wantErr: e.ErrPricePrecision},
		{name: "garbage", in: "abc", wantErr: e.ErrInvalidPrice},
		{name: "too large", in: "1000000001", wantErr: e.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse("   ")
	require.Error(t, err)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$12.50", Format(1250, "USD"))
	assert.Equal(t, "€0.99", Format(99, "EUR"))
	assert.Equal(t, "₦1000.00", Format(100000, "NGN"))
	assert.Equal(t, "7.05 SEK", Format(705, "SEK"))
}

func TestFormatDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Equal(t, "$19.99", Format(1999, "USD"))
	}
}

func TestMajorRoundTrip(t *testing.T) {
	assert.Equal(t, int64(1999), FromMajor(19.99))
	assert.Equal(t, 19.99, ToMajor(1999))
	// округление до минорной единицы, без усечения
	assert.Equal(t, int64(1000), FromMajor(9.999))
}
