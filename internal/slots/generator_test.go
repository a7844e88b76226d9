package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranchintala/app-booking/pkg/types"
)

func TestGenerate_FullBusinessDay(t *testing.T) {
	slots, err := Generate("06:00", "21:00", 30)
	require.NoError(t, err)

	// [06:00, 21:00) с шагом 30 минут = ровно 30 слотов
	require.Len(t, slots, 30)
	assert.Equal(t, types.TimeString("06:00"), slots[0].Value)
	assert.Equal(t, types.TimeString("20:30"), slots[len(slots)-1].Value)
}

func TestGenerate_Deterministic(t *testing.T) {
	first, err := Generate("06:00", "21:00", 30)
	require.NoError(t, err)

	second, err := Generate("06:00", "21:00", 30)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_HalfOpenInterval(t *testing.T) {
	slots, err := Generate("10:00", "11:00", 30)
	require.NoError(t, err)

	// Время закрытия не входит в интервал
	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("10:00"), slots[0].Value)
	assert.Equal(t, types.TimeString("10:30"), slots[1].Value)
}

func TestGenerate_InvalidWindow(t *testing.T) {
	_, err := Generate("21:00", "06:00", 30)
	assert.Error(t, err)

	_, err = Generate("06:00", "21:00", 0)
	assert.Error(t, err)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "6:00 AM", Label("06:00"))
	assert.Equal(t, "12:30 PM", Label("12:30"))
	assert.Equal(t, "8:30 PM", Label("20:30"))
}
