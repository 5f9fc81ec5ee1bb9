// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import (
	"math"
	"testing"
)

// TestBFloat16Constants verifies the predefined BFloat16 constants.
func TestBFloat16Constants(t *testing.T) {
	tests := []struct {
		name     string
		value    BFloat16
		expected float32
	}{
		{"Zero", BFloat16Zero, 0.0},
		{"One", BFloat16One, 1.0},
		{"NegOne", BFloat16NegOne, -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BFloat16ToFloat32(tt.value)
			if got != tt.expected {
				t.Errorf("BFloat16%s: got %v, want %v", tt.name, got, tt.expected)
			}
		})
	}

	// Test special values with dedicated checks
	t.Run("Infinity", func(t *testing.T) {
		if !BFloat16Inf.IsInf() || BFloat16Inf.IsNegative() {
			t.Error("BFloat16Inf should be positive infinity")
		}
	})

	t.Run("NegInfinity", func(t *testing.T) {
		if !BFloat16NegInf.IsInf() || !BFloat16NegInf.IsNegative() {
			t.Error("BFloat16NegInf should be negative infinity")
		}
	})

	t.Run("NaN", func(t *testing.T) {
		if !BFloat16NaN.IsNaN() {
			t.Error("BFloat16NaN should be NaN")
		}
	})

	t.Run("MaxValue", func(t *testing.T) {
		max := BFloat16ToFloat32(BFloat16MaxValue)
		// BFloat16 has same range as float32, max is approximately 3.39e38
		if max < 3e38 || max > float32(math.MaxFloat32) {
			t.Errorf("BFloat16MaxValue: got %v, expected ~3.39e38", max)
		}
	})
}

// TestBFloat16ToFloat32 tests conversion from BFloat16 to float32.
func TestBFloat16ToFloat32(t *testing.T) {
	tests := []struct {
		name     string
		input    BFloat16
		expected float32
	}{
		{"Zero", 0x0000, 0.0},
		{"NegZero", 0x8000, float32(math.Copysign(0, -1))},
		{"One", 0x3F80, 1.0},
		{"Two", 0x4000, 2.0},
		{"Half", 0x3F00, 0.5},
		{"NegOne", 0xBF80, -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BFloat16ToFloat32(tt.input)
			if got != tt.expected {
				t.Errorf("BFloat16ToFloat32(0x%04X): got %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

// TestFloat32ToBFloat16 tests conversion from float32 to BFloat16.
func TestFloat32ToBFloat16(t *testing.T) {
	tests := []struct {
		name     string
		input    float32
		expected BFloat16
	}{
		{"Zero", 0.0, 0x0000},
		{"One", 1.0, 0x3F80},
		{"Two", 2.0, 0x4000},
		{"Half", 0.5, 0x3F00},
		{"NegOne", -1.0, 0xBF80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Float32ToBFloat16(tt.input)
			if got != tt.expected {
				t.Errorf("Float32ToBFloat16(%v): got 0x%04X, want 0x%04X", tt.input, got, tt.expected)
			}
		})
	}
}

// TestBFloat16RoundTrip tests that round-trip conversion preserves values within precision.
func TestBFloat16RoundTrip(t *testing.T) {
	testValues := []float32{
		0.0, 1.0, -1.0, 0.5, -0.5,
		2.0, 4.0, 8.0, 16.0, 32.0,
		0.25, 0.125,
		100.0, 1000.0, 10000.0, 1e10, 1e20, 1e30,
	}

	for _, f := range testValues {
		b := Float32ToBFloat16(f)
		back := BFloat16ToFloat32(b)

		// BFloat16 has only 7 mantissa bits, so expect ~1% precision loss
		if f != 0 {
			relError := math.Abs(float64(back-f)) / math.Abs(float64(f))
			if relError > 0.01 {
				t.Errorf("Round-trip for %v: got %v, relative error %v", f, back, relError)
			}
		} else if back != 0 {
			t.Errorf("Round-trip for 0: got %v", back)
		}
	}
}

// TestBFloat16Infinity tests infinity handling.
func TestBFloat16Infinity(t *testing.T) {
	// Positive infinity
	posInf := Float32ToBFloat16(float32(math.Inf(1)))
	if !posInf.IsInf() || posInf.IsNegative() {
		t.Error("Float32ToBFloat16(+Inf) should be positive infinity")
	}
	if BFloat16ToFloat32(posInf) != float32(math.Inf(1)) {
		t.Error("BFloat16ToFloat32(BFloat16Inf) should return +Inf")
	}

	// Negative infinity
	negInf := Float32ToBFloat16(float32(math.Inf(-1)))
	if !negInf.IsInf() || !negInf.IsNegative() {
		t.Error("Float32ToBFloat16(-Inf) should be negative infinity")
	}
	if BFloat16ToFloat32(negInf) != float32(math.Inf(-1)) {
		t.Error("BFloat16ToFloat32(BFloat16NegInf) should return -Inf")
	}
}

// TestBFloat16NaN tests NaN handling.
func TestBFloat16NaN(t *testing.T) {
	// Convert NaN to BFloat16
	nan := Float32ToBFloat16(float32(math.NaN()))
	if !nan.IsNaN() {
		t.Error("Float32ToBFloat16(NaN) should be NaN")
	}

	// Convert back
	back := BFloat16ToFloat32(nan)
	if !math.IsNaN(float64(back)) {
		t.Error("BFloat16ToFloat32(NaN) should return NaN")
	}

	// Test that a NaN with a different payload is also NaN
	nan1 := BFloat16NaN
	nan2 := BFloat16(0x7FC1) // Different NaN
	if !nan1.IsNaN() || !nan2.IsNaN() {
		t.Error("Both values should be NaN")
	}
}

// TestBFloat16Denormals tests denormalized number handling.
func TestBFloat16Denormals(t *testing.T) {
	// Smallest denormal
	minDenormal := BFloat16MinValue
	if !minDenormal.IsDenormal() {
		t.Error("BFloat16MinValue should be denormal")
	}

	// Convert to float32
	f := BFloat16ToFloat32(minDenormal)
	if f <= 0 {
		t.Errorf("Smallest denormal should be positive, got %v", f)
	}

	// Smallest normal
	smallNormal := BFloat16ToFloat32(BFloat16MinNormal)
	if smallNormal <= 0 {
		t.Errorf("Smallest normal should be positive, got %v", smallNormal)
	}
}

// TestBFloat16Rounding tests round-to-nearest-even behavior.
func TestBFloat16Rounding(t *testing.T) {
	// Test that rounding works correctly
	// BFloat16 has 7 mantissa bits, so values that differ in lower bits should round

	// 1.0 should convert exactly
	one := Float32ToBFloat16(1.0)
	if BFloat16ToFloat32(one) != 1.0 {
		t.Error("1.0 should convert exactly")
	}

	// 1.0 + very small epsilon should still be close to 1.0
	eps := float32(1e-4)
	oneEps := Float32ToBFloat16(1.0 + eps)
	back := BFloat16ToFloat32(oneEps)
	if math.Abs(float64(back-1.0)) > 0.01 {
		t.Errorf("1.0+eps round-trip: got %v, expected ~1.0", back)
	}
}

// TestBFloat16Methods tests the helper methods on BFloat16.
func TestBFloat16Methods(t *testing.T) {
	t.Run("IsZero", func(t *testing.T) {
		if !BFloat16Zero.IsZero() {
			t.Error("BFloat16Zero.IsZero() should be true")
		}
		if !BFloat16NegZero.IsZero() {
			t.Error("BFloat16NegZero.IsZero() should be true")
		}
		if BFloat16One.IsZero() {
			t.Error("BFloat16One.IsZero() should be false")
		}
	})

	t.Run("IsNegative", func(t *testing.T) {
		if BFloat16Zero.IsNegative() {
			t.Error("BFloat16Zero should not be negative")
		}
		if !BFloat16NegZero.IsNegative() {
			t.Error("BFloat16NegZero should be negative")
		}
		if BFloat16One.IsNegative() {
			t.Error("BFloat16One should not be negative")
		}
		if !BFloat16NegOne.IsNegative() {
			t.Error("BFloat16NegOne should be negative")
		}
	})

	t.Run("Float32Method", func(t *testing.T) {
		if BFloat16One.Float32() != 1.0 {
			t.Error("BFloat16One.Float32() should be 1.0")
		}
	})

	t.Run("Float64Method", func(t *testing.T) {
		if BFloat16One.Float64() != 1.0 {
			t.Error("BFloat16One.Float64() should be 1.0")
		}
	})

	t.Run("Bits", func(t *testing.T) {
		if BFloat16One.Bits() != 0x3F80 {
			t.Errorf("BFloat16One.Bits() should be 0x3F80, got 0x%04X", BFloat16One.Bits())
		}
	})
}

// TestBFloat16Constructors tests the constructor functions.
func TestBFloat16Constructors(t *testing.T) {
	t.Run("NewBFloat16", func(t *testing.T) {
		b := NewBFloat16(1.0)
		if b != BFloat16One {
			t.Errorf("NewBFloat16(1.0): got 0x%04X, want 0x%04X", b, BFloat16One)
		}
	})

	t.Run("NewBFloat16FromFloat64", func(t *testing.T) {
		b := NewBFloat16FromFloat64(1.0)
		if b != BFloat16One {
			t.Errorf("NewBFloat16FromFloat64(1.0): got 0x%04X, want 0x%04X", b, BFloat16One)
		}
	})

	t.Run("BFloat16FromBits", func(t *testing.T) {
		b := BFloat16FromBits(0x3F80)
		if b != BFloat16One {
			t.Errorf("BFloat16FromBits(0x3F80): got 0x%04X, want 0x%04X", b, BFloat16One)
		}
	})
}

// TestFloat16ToBFloat16 tests cross-format conversion.
func TestFloat16ToBFloat16(t *testing.T) {
	testCases := []float32{0.0, 1.0, -1.0, 0.5, 2.0, 100.0, -50.0}

	for _, f := range testCases {
		f16 := Float32ToFloat16(f)
		bf16 := Float16ToBFloat16(f16)
		back := BFloat16ToFloat32(bf16)

		// Allow for some precision loss in conversion
		if math.Abs(float64(back-f)) > float64(math.Abs(float64(f)))*0.05+0.01 {
			t.Errorf("Float16ToBFloat16: %v -> %v (expected ~%v)", f, back, f)
		}
	}
}

// TestBFloat16ToFloat16 tests cross-format conversion.
func TestBFloat16ToFloat16(t *testing.T) {
	testCases := []float32{0.0, 1.0, -1.0, 0.5, 2.0, 100.0, -50.0}

	for _, f := range testCases {
		bf16 := Float32ToBFloat16(f)
		f16 := BFloat16ToFloat16(bf16)
		back := Float16ToFloat32(f16)

		// Allow for some precision loss in conversion
		if math.Abs(float64(back-f)) > float64(math.Abs(float64(f)))*0.05+0.01 {
			t.Errorf("BFloat16ToFloat16: %v -> %v (expected ~%v)", f, back, f)
		}
	}
}
