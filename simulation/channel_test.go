package simulation

import (
	"math"
	"math/rand"
	"testing"
)

func TestAwgnChannelAddsZeroMeanNoise(t *testing.T) {
	ch := NewAwgnChannel(1.0, rand.NewSource(42))
	signal := make([]float64, 20000)
	ch.AddNoise(signal)

	var sum, sumSq float64
	for _, x := range signal {
		sum += x
		sumSq += x * x
	}
	n := float64(len(signal))
	mean := sum / n
	variance := sumSq/n - mean*mean

	if math.Abs(mean) > 0.05 {
		t.Fatalf("sample mean %f too far from 0", mean)
	}
	if math.Abs(variance-1.0) > 0.1 {
		t.Fatalf("sample variance %f too far from sigma^2=1", variance)
	}
}

func TestAwgnChannelZeroSigmaIsNoop(t *testing.T) {
	ch := NewAwgnChannel(0, rand.NewSource(1))
	signal := []float64{1, -1, 2, -2}
	original := append([]float64(nil), signal...)
	ch.AddNoise(signal)
	for i := range signal {
		if signal[i] != original[i] {
			t.Fatalf("zero-sigma channel should not perturb samples")
		}
	}
}

func TestAwgnChannelRejectsNegativeSigma(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for negative noise sigma")
		}
	}()
	NewAwgnChannel(-1, rand.NewSource(1))
}
