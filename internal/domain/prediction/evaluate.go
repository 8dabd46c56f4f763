package prediction

import (
	"math"

	"routecast/internal/errors"

	"gonum.org/v1/gonum/stat"
)

// MeanAbsoluteError scores a regressor against targets.
func MeanAbsoluteError(regressor Regressor, x [][]float64, y []float64) (float64, error) {
	if len(x) == 0 || len(x) != len(y) {
		return 0, errors.Errorf("cannot evaluate %d rows against %d targets", len(x), len(y))
	}

	diffs := make([]float64, len(x))
	for i, row := range x {
		predicted, err := regressor.Predict(row)
		if err != nil {
			return 0, errors.Wrapf(err, "predict row %d", i)
		}
		diffs[i] = math.Abs(predicted - y[i])
	}

	return stat.Mean(diffs, nil), nil
}
