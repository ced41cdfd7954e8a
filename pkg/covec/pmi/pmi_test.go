package pmi

import (
	"math"
	"testing"
)

func TestPMIExactValue(t *testing.T) {
	calc := NewCalculator(0)

	// PMI = log(Nab*N / (Na*Nb)) = log(2*12 / (2*6)) = log(2)
	got := calc.PMI(2, 2, 6, 12)
	want := math.Log(2)

	if math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %f, got %f", want, got)
	}
}

func TestPMIPositiveAssociation(t *testing.T) {
	calc := NewCalculator(0)

	// Co-occur far more than independence predicts
	if pmi := calc.PMI(8, 10, 10, 100); pmi <= 0 {
		t.Errorf("strong association should give positive PMI, got %f", pmi)
	}
}

func TestPMIIndependence(t *testing.T) {
	calc := NewCalculator(0)

	// A in 50%, B in 50%, together in 25%: exactly independent
	if pmi := calc.PMI(25, 50, 50, 100); math.Abs(pmi) > 1e-12 {
		t.Errorf("independent words should give PMI 0, got %f", pmi)
	}
}

func TestPMINegativeAssociation(t *testing.T) {
	calc := NewCalculator(0)

	if pmi := calc.PMI(5, 50, 50, 100); pmi >= 0 {
		t.Errorf("anti-correlated words should give negative PMI, got %f", pmi)
	}
}

func TestPMISmoothing(t *testing.T) {
	plain := NewCalculator(0)
	smooth := NewCalculator(1.0)

	// Without smoothing a zero joint count is -Inf; the pipeline never
	// feeds such pairs, but the calculator itself must stay usable.
	p1 := plain.PMI(0, 10, 10, 100)
	p2 := smooth.PMI(0, 10, 10, 100)

	if !math.IsInf(p1, -1) {
		t.Errorf("plain PMI of zero joint count should be -Inf, got %f", p1)
	}
	if math.IsInf(p2, -1) {
		t.Error("smoothing should prevent -Inf")
	}
}

func TestPMIEmptyCorpus(t *testing.T) {
	calc := NewCalculator(0)

	if pmi := calc.PMI(0, 0, 0, 0); pmi != 0 {
		t.Errorf("zero windows should give PMI 0, got %f", pmi)
	}
}

func TestNPMIRange(t *testing.T) {
	calc := NewCalculator(0)

	npmi := calc.NPMI(15, 20, 20, 100)
	if npmi < -1.0 || npmi > 1.0 {
		t.Errorf("NPMI should be in [-1, 1], got %f", npmi)
	}
}
