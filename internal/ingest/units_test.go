package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizerDistance(t *testing.T) {
	norm := NewNormalizer(0, "")

	tests := []struct {
		name     string
		quantity float64
		unit     string
		want     float64
		wantUnit string
		wantErr  bool
	}{
		{name: "miles converted", quantity: 100, unit: "miles", want: 160.934, wantUnit: "kilometres"},
		{name: "miles case insensitive", quantity: 100, unit: "Miles", want: 160.934, wantUnit: "kilometres"},
		{name: "kilometres pass through", quantity: 42.5, unit: "kilometres", want: 42.5, wantUnit: "kilometres"},
		{name: "american spelling pass through", quantity: 42.5, unit: "kilometers", want: 42.5, wantUnit: "kilometres"},
		{name: "unknown unit rejected", quantity: 10, unit: "furlongs", wantErr: true},
		{name: "empty unit rejected", quantity: 10, unit: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, unit, err := norm.Distance(tt.quantity, tt.unit)
			if tt.wantErr {
				require.Error(t, err)
				var unitErr *UnrecognizedUnitError
				require.ErrorAs(t, err, &unitErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.Equal(t, tt.wantUnit, unit)
		})
	}
}

func TestNormalizerConfigurableFactor(t *testing.T) {
	norm := NewNormalizer(2, "km")

	got, unit, err := norm.Distance(10, "miles")
	require.NoError(t, err)
	assert.Equal(t, 20.0, got)
	assert.Equal(t, "km", unit)
}
