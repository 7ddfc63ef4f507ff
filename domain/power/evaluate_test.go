package power

import (
	"errors"
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		multiplier float64
		base       float64
		exponent   float64
		want       float64
		wantError  error
	}{
		{name: "integer power", multiplier: 2, base: 3, exponent: 4, want: 162},
		{name: "fractional exponent", multiplier: 1, base: 9, exponent: 0.5, want: 3},
		{name: "negative exponent", multiplier: 5, base: 2, exponent: -2, want: 1.25},
		{name: "zero exponent", multiplier: -4, base: 123.4, exponent: 0, want: -4},
		{name: "zero multiplier", multiplier: 0, base: 10, exponent: 3, want: 0},
		{name: "zero base", multiplier: 1, base: 0, exponent: 2, wantError: ErrNonPositiveBase},
		{name: "negative base", multiplier: 2, base: -3, exponent: 4, wantError: ErrNonPositiveBase},
		{name: "nan base", multiplier: 2, base: math.NaN(), exponent: 4, wantError: ErrNonPositiveBase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.multiplier, tt.base, tt.exponent)

			if tt.wantError != nil {
				if !errors.Is(err, tt.wantError) {
					t.Errorf("Evaluate() error = %v, wantError = %v", err, tt.wantError)
				}
				return
			}
			if err != nil {
				t.Fatalf("Evaluate() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateWith_MethodsAgree(t *testing.T) {
	for _, base := range []float64{0.01, 0.5, 1, 2, math.E, 10, 42.5, 100} {
		for _, exponent := range []float64{-20, -7.25, -1, 0, 0.5, 3, 12.75, 20} {
			native, err := EvaluateWith(MethodNative, 1.5, base, exponent)
			if err != nil {
				t.Fatalf("native(%v, %v) unexpected error: %v", base, exponent, err)
			}
			series, err := EvaluateWith(MethodSeries, 1.5, base, exponent)
			if err != nil {
				t.Fatalf("series(%v, %v) unexpected error: %v", base, exponent, err)
			}
			if e := relErr(series, native); e > 1e-9 {
				t.Errorf("series(%v, %v) = %v, native = %v (relative error %g)", base, exponent, series, native, e)
			}
		}
	}
}

func TestEvaluateWith_Legacy(t *testing.T) {
	got, err := EvaluateWith(MethodLegacy, 2, 3, 4)
	if err != nil {
		t.Fatalf("EvaluateWith() unexpected error: %v", err)
	}
	if e := relErr(got, 162); e > 1e-9 {
		t.Errorf("EvaluateWith(legacy) = %v, want 162", got)
	}

	if _, err := EvaluateWith(MethodLegacy, 2, -3, 4); !errors.Is(err, ErrNonPositiveBase) {
		t.Errorf("EvaluateWith(legacy) error = %v, want %v", err, ErrNonPositiveBase)
	}
}

func TestEvaluateWith_OverflowPassesThrough(t *testing.T) {
	for _, method := range Methods {
		got, err := EvaluateWith(method, 1, 10, 400)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", method, err)
		}
		if method != MethodLegacy && !math.IsInf(got, 1) {
			t.Errorf("%s: got %v, want +Inf", method, got)
		}
	}

	got, err := Evaluate(-1, 10, 400)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(got, -1) {
		t.Errorf("got %v, want -Inf", got)
	}
}

func TestEvaluateWith_UnknownMethod(t *testing.T) {
	_, err := EvaluateWith(Method("cubic"), 1, 2, 3)
	if !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("error = %v, want %v", err, ErrUnknownMethod)
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		name    string
		want    Method
		wantErr bool
	}{
		{name: "", want: MethodNative},
		{name: "native", want: MethodNative},
		{name: " Series ", want: MethodSeries},
		{name: "LEGACY", want: MethodLegacy},
		{name: "taylor", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMethod(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMethod(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownMethod) {
					t.Errorf("ParseMethod(%q) error = %v, want %v", tt.name, err, ErrUnknownMethod)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseMethod(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
