package shipping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"louay-store/models"
)

func TestAvailableMethodsBothOffered(t *testing.T) {
	options := AvailableMethods("16") // Alger: 500 / 350

	assert.False(t, options.Unavailable)
	assert.ElementsMatch(t, []models.ShippingMethod{models.Domicile, models.Stopdesk}, options.Methods)

	_, ok := options.AutoSelect()
	assert.False(t, ok, "two options must not auto-select")
}

func TestAvailableMethodsSingleOptionAutoSelects(t *testing.T) {
	options := AvailableMethods("11") // Tamanrasset: 1600 / 0

	assert.False(t, options.Unavailable)
	require.Len(t, options.Methods, 1)
	assert.Equal(t, models.Domicile, options.Methods[0])

	method, ok := options.AutoSelect()
	assert.True(t, ok)
	assert.Equal(t, models.Domicile, method)
}

func TestAvailableMethodsZeroPricesMeanUnavailable(t *testing.T) {
	options := AvailableMethods("33") // Illizi: 0 / 0

	assert.True(t, options.Unavailable)
	assert.Empty(t, options.Methods)
}

func TestAvailableMethodsUnknownCode(t *testing.T) {
	options := AvailableMethods("99")

	assert.True(t, options.Unavailable)
	assert.Empty(t, options.Methods)
}

func TestPriceFor(t *testing.T) {
	price, err := PriceFor("16", models.Stopdesk)
	require.NoError(t, err)
	assert.Equal(t, 350.0, price)

	_, err = PriceFor("11", models.Stopdesk)
	assert.ErrorIs(t, err, ErrMethodUnavailable)

	_, err = PriceFor("99", models.Domicile)
	assert.ErrorIs(t, err, ErrUnknownWilaya)
}

func TestQuoteAutoSelectsOnlyMethod(t *testing.T) {
	name, method, cost, err := Quote("11", "")
	require.NoError(t, err)

	assert.Equal(t, "Tamanrasset", name)
	assert.Equal(t, models.Domicile, method)
	assert.Equal(t, 1600.0, cost)
}

func TestQuoteRequiresChoiceWhenBothOffered(t *testing.T) {
	_, _, _, err := Quote("16", "")
	assert.ErrorIs(t, err, ErrMethodUnavailable)

	name, method, cost, err := Quote("16", models.Domicile)
	require.NoError(t, err)
	assert.Equal(t, "Alger", name)
	assert.Equal(t, models.Domicile, method)
	assert.Equal(t, 500.0, cost)
}

func TestQuoteBlocksUnavailableWilaya(t *testing.T) {
	_, _, _, err := Quote("33", models.Domicile)
	assert.ErrorIs(t, err, ErrNoDelivery)

	_, _, _, err = Quote("99", models.Domicile)
	assert.ErrorIs(t, err, ErrUnknownWilaya)
}

func TestValidCommune(t *testing.T) {
	assert.True(t, ValidCommune("16", "Bab El Oued"))
	assert.False(t, ValidCommune("16", "Boufarik")) // belongs to Blida
	assert.False(t, ValidCommune("99", "Anywhere"))
}

func TestCodesCoverAllWilayasInOrder(t *testing.T) {
	codes := Codes()

	require.Len(t, codes, len(Wilayas))
	assert.Equal(t, "01", codes[0])
	assert.Equal(t, "58", codes[len(codes)-1])
	for i := 1; i < len(codes); i++ {
		assert.Less(t, codes[i-1], codes[i])
	}
}
