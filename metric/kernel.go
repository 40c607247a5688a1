package metric

import "github.com/chewxy/math32"

// Kernel computes a distance between two vectors of equal length.
type Kernel func(left, right []float32) (float32, error)

// ValidateDimensions returns a *DimensionMismatchError when left and right
// differ in length.
func ValidateDimensions(left, right []float32) error {
	if len(left) != len(right) {
		return &DimensionMismatchError{Left: len(left), Right: len(right)}
	}
	return nil
}

// SquaredEuclideanDistance returns the sum of squared differences of left and
// right. Two empty vectors are at distance 0.
func SquaredEuclideanDistance(left, right []float32) (float32, error) {
	if err := ValidateDimensions(left, right); err != nil {
		return 0, err
	}
	var sum float32
	for i := range left {
		d := left[i] - right[i]
		sum += d * d
	}
	return sum, nil
}

// DotProductDistance returns the inner product of left and right. The result
// is not negated; larger values rank closer for aligned vectors.
func DotProductDistance(left, right []float32) (float32, error) {
	if err := ValidateDimensions(left, right); err != nil {
		return 0, err
	}
	var dot float32
	for i := range left {
		dot += left[i] * right[i]
	}
	return dot, nil
}

// CosineDistance returns dot(left, right) / (|left| * |right|), accumulating
// all three sums in one pass.
//
// A zero-norm operand is not an error: the result is whatever IEEE division
// yields, NaN for 0/0 and ±Inf otherwise.
func CosineDistance(left, right []float32) (float32, error) {
	if err := ValidateDimensions(left, right); err != nil {
		return 0, err
	}
	var dot, ll, rr float32
	for i := range left {
		l, r := left[i], right[i]
		dot += l * r
		ll += l * l
		rr += r * r
	}
	return dot / (math32.Sqrt(ll) * math32.Sqrt(rr)), nil
}
