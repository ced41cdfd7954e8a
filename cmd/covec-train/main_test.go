package main

import (
	"testing"

	"github.com/cognicore/covec/pkg/covec/config"
)

func TestApplyOverrides(t *testing.T) {
	cfg := config.Default()

	out := applyOverrides(cfg, 3, 5, 64, 200)
	if out.WindowSize != 3 {
		t.Errorf("WindowSize = %d, want 3", out.WindowSize)
	}
	if out.MinWordCount != 5 {
		t.Errorf("MinWordCount = %d, want 5", out.MinWordCount)
	}
	if out.NumDimensions != 64 {
		t.Errorf("NumDimensions = %d, want 64", out.NumDimensions)
	}
	if out.MaxIterations != 200 {
		t.Errorf("MaxIterations = %d, want 200", out.MaxIterations)
	}
}

func TestApplyOverridesZeroKeepsConfig(t *testing.T) {
	cfg := config.Default()

	out := applyOverrides(cfg, 0, 0, 0, 0)
	if out != cfg {
		t.Errorf("unset flags should leave the config untouched, got %+v", out)
	}
}
