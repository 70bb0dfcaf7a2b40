package indicators

import (
	"math"

	"github.com/rustyeddy/papertrade/market"
)

// ADX calculates Wilder's Average Directional Index along with the +DI and
// -DI directional lines.
//
// Warm-up accounting:
//   - TR/+DM/-DM samples exist from index 1.
//   - The smoothed averages seed at index period, so +DI/-DI are defined from
//     index period.
//   - ADX seeds with the average of the first period DX values, so it is
//     defined from index 2*period.
func ADX(candles []market.Candle, period int) (adx, plusDI, minusDI []float64) {
	n := len(candles)
	adx, plusDI, minusDI = nans(n), nans(n), nans(n)
	if period < 1 || 2*period >= n {
		return adx, plusDI, minusDI
	}

	p := float64(period)
	var trS, pdmS, mdmS float64 // Wilder-smoothed TR, +DM, -DM
	var dxSum float64
	var adxVal float64

	for i := 1; i < n; i++ {
		c, prev := candles[i], candles[i-1]

		upMove := c.High - prev.High
		downMove := prev.Low - c.Low
		var pdm, mdm float64
		if upMove > downMove && upMove > 0 {
			pdm = upMove
		}
		if downMove > upMove && downMove > 0 {
			mdm = downMove
		}
		tr := trueRange(c, prev)

		if i <= period {
			trS += tr
			pdmS += pdm
			mdmS += mdm
			if i < period {
				continue
			}
			trS /= p
			pdmS /= p
			mdmS /= p
		} else {
			trS = (trS*(p-1) + tr) / p
			pdmS = (pdmS*(p-1) + pdm) / p
			mdmS = (mdmS*(p-1) + mdm) / p
		}

		if trS == 0 {
			continue
		}
		pdi := 100 * pdmS / trS
		mdi := 100 * mdmS / trS
		plusDI[i] = pdi
		minusDI[i] = mdi

		den := pdi + mdi
		if den == 0 {
			continue
		}
		dx := 100 * math.Abs(pdi-mdi) / den

		// DX values count toward the ADX seed from index period+1, giving
		// exactly period samples by index 2*period.
		switch {
		case i == period:
		case i < 2*period:
			dxSum += dx
		case i == 2*period:
			dxSum += dx
			adxVal = dxSum / p
			adx[i] = adxVal
		default:
			adxVal = (adxVal*(p-1) + dx) / p
			adx[i] = adxVal
		}
	}
	return adx, plusDI, minusDI
}
