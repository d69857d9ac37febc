package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninepines/service-booking/internal/domain"
)

func TestNew_DerivesExtraBedRate(t *testing.T) {
	cases := []struct {
		name         string
		roomType     Type
		nightlyRate  int64
		extraBedRate int64
	}{
		{"standard", TypeStandard, 10000, 2000},
		{"deluxe", TypeDeluxe, 17500, 3500},
		{"premium", TypePremium, 25000, 5000},
		{"custom rate", TypeStandard, 12000, 2400},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rm, err := New("101", tc.roomType, tc.nightlyRate)
			require.NoError(t, err)
			assert.Equal(t, tc.extraBedRate, rm.ExtraBedRate())
			assert.False(t, rm.Occupied())
		})
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := New("", TypeStandard, 10000)
	assert.True(t, domain.IsKind(err, domain.ErrValidation))

	_, err = New("101", Type("X"), 10000)
	assert.True(t, domain.IsKind(err, domain.ErrValidation))

	_, err = New("101", TypeStandard, 0)
	assert.True(t, domain.IsKind(err, domain.ErrValidation))
}

func TestDefaultRate(t *testing.T) {
	assert.Equal(t, int64(10000), DefaultRate(TypeStandard))
	assert.Equal(t, int64(17500), DefaultRate(TypeDeluxe))
	assert.Equal(t, int64(25000), DefaultRate(TypePremium))
	assert.Equal(t, int64(0), DefaultRate(Type("X")))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Standard Room", TypeStandard.DisplayName())
	assert.Equal(t, "Deluxe Room", TypeDeluxe.DisplayName())
	assert.Equal(t, "Premium Room", TypePremium.DisplayName())
	assert.Equal(t, "Unknown Room Type", Type("Q").DisplayName())
}

func TestOccupancyTransitions(t *testing.T) {
	rm, err := New("101", TypeStandard, 10000)
	require.NoError(t, err)

	require.NoError(t, rm.CheckIn())
	assert.True(t, rm.Occupied())

	// Double check-in is an invalid transition.
	err = rm.CheckIn()
	assert.True(t, domain.IsKind(err, domain.ErrInvalidState))

	require.NoError(t, rm.CheckOut())
	assert.False(t, rm.Occupied())

	err = rm.CheckOut()
	assert.True(t, domain.IsKind(err, domain.ErrInvalidState))
}
