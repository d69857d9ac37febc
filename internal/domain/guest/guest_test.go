package guest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninepines/service-booking/internal/domain"
)

func TestNew_RequiresName(t *testing.T) {
	_, err := New("  ", "081234", "Gotham")
	assert.True(t, domain.IsKind(err, domain.ErrValidation))

	g, err := New(" Batman ", "081234", "Gotham")
	require.NoError(t, err)
	assert.Equal(t, "Batman", g.Name())
}

func TestIsReturning(t *testing.T) {
	g, err := New("Batman", "", "")
	require.NoError(t, err)

	// First stay never qualifies.
	assert.False(t, g.IsReturning())
	g.RecordCheckIn()
	assert.False(t, g.IsReturning())

	// From the second stay on, the guest is returning.
	g.RecordCheckIn()
	assert.True(t, g.IsReturning())
	assert.Equal(t, 2, g.CheckInCount())
}

func TestUpdateContact_KeepsExistingWhenBlank(t *testing.T) {
	g, err := New("Batman", "081234", "Gotham")
	require.NoError(t, err)

	g.UpdateContact("", "Wayne Manor")
	assert.Equal(t, "081234", g.ContactNumber())
	assert.Equal(t, "Wayne Manor", g.Address())
}
