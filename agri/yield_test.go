package agri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeYield_Wheat(t *testing.T) {
	profile := CropEconomics["wheat"]
	res, err := ComputeYield(profile, 5, UnitAcre)
	require.NoError(t, err)

	assert.Equal(t, 100.0, res.TotalYield)  // 5 acres * 20 q
	assert.Equal(t, 227500.0, res.Revenue)  // 100 q * 2275
	assert.Equal(t, 75000.0, res.Cost)      // 5 * 15000
	assert.Equal(t, 152500.0, res.Profit)
}

func TestComputeYield_UnitEquivalence(t *testing.T) {
	for _, crop := range EconomicsCrops() {
		profile := CropEconomics[crop]
		for _, area := range []float64{0.5, 1, 2.5, 10} {
			ha, err := ComputeYield(profile, area, UnitHectare)
			require.NoError(t, err)
			ac, err := ComputeYield(profile, area*2.47, UnitAcre)
			require.NoError(t, err)
			assert.InDelta(t, ac.TotalYield, ha.TotalYield, 1e-9, "%s %.2f ha", crop, area)
			assert.InDelta(t, ac.Profit, ha.Profit, 1e-6, "%s %.2f ha", crop, area)
		}
	}
}

func TestComputeYield_BreakdownSums(t *testing.T) {
	for _, crop := range EconomicsCrops() {
		profile := CropEconomics[crop]
		res, err := ComputeYield(profile, 3.3, UnitAcre)
		require.NoError(t, err)
		require.Len(t, res.Breakdown, 7)

		sum := 0
		for _, item := range res.Breakdown {
			sum += item.Value
		}
		// each of the seven categories rounds independently
		assert.InDelta(t, res.Cost, float64(sum), 7, crop)
	}
}

func TestComputeYield_BreakdownShares(t *testing.T) {
	res, err := ComputeYield(CropEconomics["potato"], 1, UnitAcre)
	require.NoError(t, err)

	want := []CostItem{
		{Category: "seeds", Value: 4200},
		{Category: "fertilizers", Value: 7000},
		{Category: "pesticides", Value: 3500},
		{Category: "irrigation", Value: 3500},
		{Category: "labor", Value: 8750},
		{Category: "harvesting", Value: 5250},
		{Category: "transport", Value: 2800},
	}
	assert.Equal(t, want, res.Breakdown)
}

func TestComputeYield_Validation(t *testing.T) {
	profile := CropEconomics["wheat"]

	_, err := ComputeYield(profile, 0, UnitAcre)
	assert.ErrorIs(t, err, ErrBadArea)

	_, err = ComputeYield(profile, -2, UnitHectare)
	assert.ErrorIs(t, err, ErrBadArea)

	_, err = ComputeYield(profile, 1, AreaUnit("bigha"))
	assert.Error(t, err)
}
