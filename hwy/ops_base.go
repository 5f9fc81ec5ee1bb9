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

import "math"

// This file provides pure Go (scalar) implementations of the vector
// operations. They are the only implementations in the package and serve
// every dispatch level, including when HWY_NO_SIMD is set.

// Load creates a vector by loading data from a slice.
func Load[T Lanes](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	return Vec[T]{data: data}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = addHelper(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

func addHelper[T Lanes](a, b T) T {
	// Fast path: check for Float16/BFloat16 which need special handling
	if av, ok := any(a).(Float16); ok {
		bv := any(b).(Float16)
		return any(Float32ToFloat16(av.Float32() + bv.Float32())).(T)
	}
	if av, ok := any(a).(BFloat16); ok {
		bv := any(b).(BFloat16)
		return any(Float32ToBFloat16(av.Float32() + bv.Float32())).(T)
	}
	// For all other numeric types, use interface conversion which the compiler
	// can optimize better than boxing in most cases
	switch av := any(a).(type) {
	case float32:
		return any(av + any(b).(float32)).(T)
	case float64:
		return any(av + any(b).(float64)).(T)
	case int8:
		return any(av + any(b).(int8)).(T)
	case int16:
		return any(av + any(b).(int16)).(T)
	case int32:
		return any(av + any(b).(int32)).(T)
	case int64:
		return any(av + any(b).(int64)).(T)
	case uint8:
		return any(av + any(b).(uint8)).(T)
	case uint16:
		return any(av + any(b).(uint16)).(T)
	case uint32:
		return any(av + any(b).(uint32)).(T)
	case uint64:
		return any(av + any(b).(uint64)).(T)
	default:
		return a
	}
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = subHelper(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

func subHelper[T Lanes](a, b T) T {
	switch av := any(a).(type) {
	case Float16:
		bv := any(b).(Float16)
		return any(Float32ToFloat16(av.Float32() - bv.Float32())).(T)
	case BFloat16:
		bv := any(b).(BFloat16)
		return any(Float32ToBFloat16(av.Float32() - bv.Float32())).(T)
	case float32:
		return any(av - any(b).(float32)).(T)
	case float64:
		return any(av - any(b).(float64)).(T)
	case int8:
		return any(av - any(b).(int8)).(T)
	case int16:
		return any(av - any(b).(int16)).(T)
	case int32:
		return any(av - any(b).(int32)).(T)
	case int64:
		return any(av - any(b).(int64)).(T)
	case uint8:
		return any(av - any(b).(uint8)).(T)
	case uint16:
		return any(av - any(b).(uint16)).(T)
	case uint32:
		return any(av - any(b).(uint32)).(T)
	case uint64:
		return any(av - any(b).(uint64)).(T)
	default:
		return a
	}
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = mulHelper(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

func mulHelper[T Lanes](a, b T) T {
	switch av := any(a).(type) {
	case Float16:
		bv := any(b).(Float16)
		return any(Float32ToFloat16(av.Float32() * bv.Float32())).(T)
	case BFloat16:
		bv := any(b).(BFloat16)
		return any(Float32ToBFloat16(av.Float32() * bv.Float32())).(T)
	case float32:
		return any(av * any(b).(float32)).(T)
	case float64:
		return any(av * any(b).(float64)).(T)
	case int8:
		return any(av * any(b).(int8)).(T)
	case int16:
		return any(av * any(b).(int16)).(T)
	case int32:
		return any(av * any(b).(int32)).(T)
	case int64:
		return any(av * any(b).(int64)).(T)
	case uint8:
		return any(av * any(b).(uint8)).(T)
	case uint16:
		return any(av * any(b).(uint16)).(T)
	case uint32:
		return any(av * any(b).(uint32)).(T)
	case uint64:
		return any(av * any(b).(uint64)).(T)
	default:
		return a
	}
}

// Div performs element-wise division.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)

	// Check type once, then use optimized loop
	var zero T
	switch any(zero).(type) {
	case Float16:
		for i := 0; i < n; i++ {
			av := any(a.data[i]).(Float16)
			bv := any(b.data[i]).(Float16)
			result[i] = any(Float32ToFloat16(av.Float32() / bv.Float32())).(T)
		}
	case BFloat16:
		for i := 0; i < n; i++ {
			av := any(a.data[i]).(BFloat16)
			bv := any(b.data[i]).(BFloat16)
			result[i] = any(Float32ToBFloat16(av.Float32() / bv.Float32())).(T)
		}
	case float32:
		// Direct slice access for native floats - no boxing per element
		aData := any(a.data).([]float32)
		bData := any(b.data).([]float32)
		rData := any(result).([]float32)
		for i := 0; i < n; i++ {
			rData[i] = aData[i] / bData[i]
		}
	case float64:
		aData := any(a.data).([]float64)
		bData := any(b.data).([]float64)
		rData := any(result).([]float64)
		for i := 0; i < n; i++ {
			rData[i] = aData[i] / bData[i]
		}
	}
	return Vec[T]{data: result}
}

// Neg negates all lanes.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i := 0; i < len(v.data); i++ {
		result[i] = negHelper(v.data[i])
	}
	return Vec[T]{data: result}
}

func negHelper[T Lanes](a T) T {
	switch av := any(a).(type) {
	case Float16:
		return any(Float32ToFloat16(-av.Float32())).(T)
	case BFloat16:
		return any(Float32ToBFloat16(-av.Float32())).(T)
	case float32:
		return any(-av).(T)
	case float64:
		return any(-av).(T)
	case int8:
		return any(-av).(T)
	case int16:
		return any(-av).(T)
	case int32:
		return any(-av).(T)
	case int64:
		return any(-av).(T)
	case uint8:
		return any(-av).(T)
	case uint16:
		return any(-av).(T)
	case uint32:
		return any(-av).(T)
	case uint64:
		return any(-av).(T)
	default:
		return a
	}
}

// Abs computes absolute value.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i := 0; i < len(v.data); i++ {
		result[i] = absHelper(v.data[i])
	}
	return Vec[T]{data: result}
}

func absHelper[T Lanes](a T) T {
	switch av := any(a).(type) {
	case Float16:
		f := av.Float32()
		if f < 0 {
			f = -f
		}
		return any(Float32ToFloat16(f)).(T)
	case BFloat16:
		f := av.Float32()
		if f < 0 {
			f = -f
		}
		return any(Float32ToBFloat16(f)).(T)
	case float32:
		if av < 0 {
			return any(-av).(T)
		}
		return any(av).(T)
	case float64:
		if av < 0 {
			return any(-av).(T)
		}
		return any(av).(T)
	case int8:
		if av < 0 {
			return any(-av).(T)
		}
		return any(av).(T)
	case int16:
		if av < 0 {
			return any(-av).(T)
		}
		return any(av).(T)
	case int32:
		if av < 0 {
			return any(-av).(T)
		}
		return any(av).(T)
	case int64:
		if av < 0 {
			return any(-av).(T)
		}
		return any(av).(T)
	case uint8:
		return any(av).(T) // unsigned always positive
	case uint16:
		return any(av).(T)
	case uint32:
		return any(av).(T)
	case uint64:
		return any(av).(T)
	default:
		return a
	}
}

// Min returns element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if lessHelper(a.data[i], b.data[i]) {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

func lessHelper[T Lanes](a, b T) bool {
	switch av := any(a).(type) {
	case Float16:
		return av.Float32() < any(b).(Float16).Float32()
	case BFloat16:
		return av.Float32() < any(b).(BFloat16).Float32()
	case float32:
		return av < any(b).(float32)
	case float64:
		return av < any(b).(float64)
	case int8:
		return av < any(b).(int8)
	case int16:
		return av < any(b).(int16)
	case int32:
		return av < any(b).(int32)
	case int64:
		return av < any(b).(int64)
	case uint8:
		return av < any(b).(uint8)
	case uint16:
		return av < any(b).(uint16)
	case uint32:
		return av < any(b).(uint32)
	case uint64:
		return av < any(b).(uint64)
	default:
		return false
	}
}

// Max returns element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if greaterHelper(a.data[i], b.data[i]) {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

func greaterHelper[T Lanes](a, b T) bool {
	switch av := any(a).(type) {
	case Float16:
		return av.Float32() > any(b).(Float16).Float32()
	case BFloat16:
		return av.Float32() > any(b).(BFloat16).Float32()
	case float32:
		return av > any(b).(float32)
	case float64:
		return av > any(b).(float64)
	case int8:
		return av > any(b).(int8)
	case int16:
		return av > any(b).(int16)
	case int32:
		return av > any(b).(int32)
	case int64:
		return av > any(b).(int64)
	case uint8:
		return av > any(b).(uint8)
	case uint16:
		return av > any(b).(uint16)
	case uint32:
		return av > any(b).(uint32)
	case uint64:
		return av > any(b).(uint64)
	default:
		return false
	}
}

// Sqrt computes square root.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i := 0; i < len(v.data); i++ {
		switch x := any(v.data[i]).(type) {
		case Float16:
			result[i] = any(Float32ToFloat16(float32(math.Sqrt(float64(x.Float32()))))).(T)
		case BFloat16:
			result[i] = any(Float32ToBFloat16(float32(math.Sqrt(float64(x.Float32()))))).(T)
		case float32:
			result[i] = any(float32(math.Sqrt(float64(x)))).(T)
		case float64:
			result[i] = any(math.Sqrt(x)).(T)
		}
	}
	return Vec[T]{data: result}
}

// FMA performs fused multiply-add.
func FMA[T Floats](a, b, c Vec[T]) Vec[T] {
	n := min(len(c.data), min(len(b.data), len(a.data)))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		switch av := any(a.data[i]).(type) {
		case Float16:
			bv := any(b.data[i]).(Float16)
			cv := any(c.data[i]).(Float16)
			result[i] = any(Float32ToFloat16(float32(math.FMA(float64(av.Float32()), float64(bv.Float32()), float64(cv.Float32()))))).(T)
		case BFloat16:
			bv := any(b.data[i]).(BFloat16)
			cv := any(c.data[i]).(BFloat16)
			result[i] = any(Float32ToBFloat16(float32(math.FMA(float64(av.Float32()), float64(bv.Float32()), float64(cv.Float32()))))).(T)
		case float32:
			bv := any(b.data[i]).(float32)
			cv := any(c.data[i]).(float32)
			result[i] = any(float32(math.FMA(float64(av), float64(bv), float64(cv)))).(T)
		case float64:
			bv := any(b.data[i]).(float64)
			cv := any(c.data[i]).(float64)
			result[i] = any(math.FMA(av, bv, cv)).(T)
		}
	}
	return Vec[T]{data: result}
}

// ReduceSum sums all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for i := 0; i < len(v.data); i++ {
		sum = addHelper(sum, v.data[i])
	}
	return sum
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] == b.data[i]
	}
	return Mask[T]{bits: bits}
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = lessHelper(a.data[i], b.data[i])
	}
	return Mask[T]{bits: bits}
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = greaterHelper(a.data[i], b.data[i])
	}
	return Mask[T]{bits: bits}
}

// IsNaN returns a mask indicating which lanes contain NaN values.
// For integer types, this always returns all false.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, val := range v.data {
		switch x := any(val).(type) {
		case Float16:
			bits[i] = math.IsNaN(float64(x.Float32()))
		case BFloat16:
			bits[i] = math.IsNaN(float64(x.Float32()))
		case float32:
			bits[i] = math.IsNaN(float64(x))
		case float64:
			bits[i] = math.IsNaN(x)
		}
	}
	return Mask[T]{bits: bits}
}

// IsInf returns a mask indicating which lanes contain infinity.
// The sign parameter: 0 = either, > 0 = +Inf only, < 0 = -Inf only.
func IsInf[T Floats](v Vec[T], sign int) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, val := range v.data {
		switch x := any(val).(type) {
		case Float16:
			bits[i] = math.IsInf(float64(x.Float32()), sign)
		case BFloat16:
			bits[i] = math.IsInf(float64(x.Float32()), sign)
		case float32:
			bits[i] = math.IsInf(float64(x), sign)
		case float64:
			bits[i] = math.IsInf(x, sign)
		}
	}
	return Mask[T]{bits: bits}
}

// IfThenElse performs conditional selection.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(b.data), min(len(a.data), len(mask.bits)))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// And performs element-wise bitwise AND.
func And[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		// Perform bitwise AND by reinterpreting as integers
		result[i] = bitwiseAnd(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Or performs element-wise bitwise OR.
func Or[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = bitwiseOr(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Xor performs element-wise bitwise XOR.
func Xor[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = bitwiseXor(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Not performs element-wise bitwise NOT (ones complement).
func Not[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i := 0; i < len(v.data); i++ {
		result[i] = bitwiseNot(v.data[i])
	}
	return Vec[T]{data: result}
}

// AndNot performs element-wise bitwise AND NOT (~a & b).
func AndNot[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = bitwiseAndNot(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// ShiftLeft performs element-wise left shift by a constant number of bits.
// Only valid for integer types.
func ShiftLeft[T Integers](v Vec[T], bits int) Vec[T] {
	result := make([]T, len(v.data))
	for i := 0; i < len(v.data); i++ {
		result[i] = shiftLeft(v.data[i], bits)
	}
	return Vec[T]{data: result}
}

// ShiftRight performs element-wise right shift by a constant number of bits.
// For signed integers, this is arithmetic shift (sign-extended).
// For unsigned integers, this is logical shift (zero-filled).
func ShiftRight[T Integers](v Vec[T], bits int) Vec[T] {
	result := make([]T, len(v.data))
	for i := 0; i < len(v.data); i++ {
		result[i] = shiftRight(v.data[i], bits)
	}
	return Vec[T]{data: result}
}

// Helper functions for bitwise operations that work with any numeric type

func bitwiseAnd[T Lanes](a, b T) T {
	// Use type switch to handle different types
	switch any(a).(type) {
	case float32:
		aU := math.Float32bits(float32(any(a).(float32)))
		bU := math.Float32bits(float32(any(b).(float32)))
		return T(any(math.Float32frombits(aU & bU)).(float32))
	case float64:
		aU := math.Float64bits(float64(any(a).(float64)))
		bU := math.Float64bits(float64(any(b).(float64)))
		return T(any(math.Float64frombits(aU & bU)).(float64))
	case int8:
		return T(any(int8(any(a).(int8)) & int8(any(b).(int8))).(int8))
	case int16:
		return T(any(int16(any(a).(int16)) & int16(any(b).(int16))).(int16))
	case int32:
		return T(any(int32(any(a).(int32)) & int32(any(b).(int32))).(int32))
	case int64:
		return T(any(int64(any(a).(int64)) & int64(any(b).(int64))).(int64))
	case uint8:
		return T(any(uint8(any(a).(uint8)) & uint8(any(b).(uint8))).(uint8))
	case uint16:
		return T(any(uint16(any(a).(uint16)) & uint16(any(b).(uint16))).(uint16))
	case uint32:
		return T(any(uint32(any(a).(uint32)) & uint32(any(b).(uint32))).(uint32))
	case uint64:
		return T(any(uint64(any(a).(uint64)) & uint64(any(b).(uint64))).(uint64))
	default:
		return a // Should never happen
	}
}

func bitwiseOr[T Lanes](a, b T) T {
	switch any(a).(type) {
	case float32:
		aU := math.Float32bits(float32(any(a).(float32)))
		bU := math.Float32bits(float32(any(b).(float32)))
		return T(any(math.Float32frombits(aU | bU)).(float32))
	case float64:
		aU := math.Float64bits(float64(any(a).(float64)))
		bU := math.Float64bits(float64(any(b).(float64)))
		return T(any(math.Float64frombits(aU | bU)).(float64))
	case int8:
		return T(any(int8(any(a).(int8)) | int8(any(b).(int8))).(int8))
	case int16:
		return T(any(int16(any(a).(int16)) | int16(any(b).(int16))).(int16))
	case int32:
		return T(any(int32(any(a).(int32)) | int32(any(b).(int32))).(int32))
	case int64:
		return T(any(int64(any(a).(int64)) | int64(any(b).(int64))).(int64))
	case uint8:
		return T(any(uint8(any(a).(uint8)) | uint8(any(b).(uint8))).(uint8))
	case uint16:
		return T(any(uint16(any(a).(uint16)) | uint16(any(b).(uint16))).(uint16))
	case uint32:
		return T(any(uint32(any(a).(uint32)) | uint32(any(b).(uint32))).(uint32))
	case uint64:
		return T(any(uint64(any(a).(uint64)) | uint64(any(b).(uint64))).(uint64))
	default:
		return a
	}
}

func bitwiseXor[T Lanes](a, b T) T {
	switch any(a).(type) {
	case float32:
		aU := math.Float32bits(float32(any(a).(float32)))
		bU := math.Float32bits(float32(any(b).(float32)))
		return T(any(math.Float32frombits(aU ^ bU)).(float32))
	case float64:
		aU := math.Float64bits(float64(any(a).(float64)))
		bU := math.Float64bits(float64(any(b).(float64)))
		return T(any(math.Float64frombits(aU ^ bU)).(float64))
	case int8:
		return T(any(int8(any(a).(int8)) ^ int8(any(b).(int8))).(int8))
	case int16:
		return T(any(int16(any(a).(int16)) ^ int16(any(b).(int16))).(int16))
	case int32:
		return T(any(int32(any(a).(int32)) ^ int32(any(b).(int32))).(int32))
	case int64:
		return T(any(int64(any(a).(int64)) ^ int64(any(b).(int64))).(int64))
	case uint8:
		return T(any(uint8(any(a).(uint8)) ^ uint8(any(b).(uint8))).(uint8))
	case uint16:
		return T(any(uint16(any(a).(uint16)) ^ uint16(any(b).(uint16))).(uint16))
	case uint32:
		return T(any(uint32(any(a).(uint32)) ^ uint32(any(b).(uint32))).(uint32))
	case uint64:
		return T(any(uint64(any(a).(uint64)) ^ uint64(any(b).(uint64))).(uint64))
	default:
		return a
	}
}

func bitwiseNot[T Lanes](a T) T {
	switch any(a).(type) {
	case float32:
		aU := math.Float32bits(float32(any(a).(float32)))
		return T(any(math.Float32frombits(^aU)).(float32))
	case float64:
		aU := math.Float64bits(float64(any(a).(float64)))
		return T(any(math.Float64frombits(^aU)).(float64))
	case int8:
		return T(any(^int8(any(a).(int8))).(int8))
	case int16:
		return T(any(^int16(any(a).(int16))).(int16))
	case int32:
		return T(any(^int32(any(a).(int32))).(int32))
	case int64:
		return T(any(^int64(any(a).(int64))).(int64))
	case uint8:
		return T(any(^uint8(any(a).(uint8))).(uint8))
	case uint16:
		return T(any(^uint16(any(a).(uint16))).(uint16))
	case uint32:
		return T(any(^uint32(any(a).(uint32))).(uint32))
	case uint64:
		return T(any(^uint64(any(a).(uint64))).(uint64))
	default:
		return a
	}
}

func bitwiseAndNot[T Lanes](a, b T) T {
	switch any(a).(type) {
	case float32:
		aU := math.Float32bits(float32(any(a).(float32)))
		bU := math.Float32bits(float32(any(b).(float32)))
		return T(any(math.Float32frombits((^aU) & bU)).(float32))
	case float64:
		aU := math.Float64bits(float64(any(a).(float64)))
		bU := math.Float64bits(float64(any(b).(float64)))
		return T(any(math.Float64frombits((^aU) & bU)).(float64))
	case int8:
		return T(any((^int8(any(a).(int8))) & int8(any(b).(int8))).(int8))
	case int16:
		return T(any((^int16(any(a).(int16))) & int16(any(b).(int16))).(int16))
	case int32:
		return T(any((^int32(any(a).(int32))) & int32(any(b).(int32))).(int32))
	case int64:
		return T(any((^int64(any(a).(int64))) & int64(any(b).(int64))).(int64))
	case uint8:
		return T(any((^uint8(any(a).(uint8))) & uint8(any(b).(uint8))).(uint8))
	case uint16:
		return T(any((^uint16(any(a).(uint16))) & uint16(any(b).(uint16))).(uint16))
	case uint32:
		return T(any((^uint32(any(a).(uint32))) & uint32(any(b).(uint32))).(uint32))
	case uint64:
		return T(any((^uint64(any(a).(uint64))) & uint64(any(b).(uint64))).(uint64))
	default:
		return a
	}
}

func shiftLeft[T Integers](a T, bits int) T {
	switch any(a).(type) {
	case int8:
		return T(any(int8(any(a).(int8)) << bits).(int8))
	case int16:
		return T(any(int16(any(a).(int16)) << bits).(int16))
	case int32:
		return T(any(int32(any(a).(int32)) << bits).(int32))
	case int64:
		return T(any(int64(any(a).(int64)) << bits).(int64))
	case uint8:
		return T(any(uint8(any(a).(uint8)) << bits).(uint8))
	case uint16:
		return T(any(uint16(any(a).(uint16)) << bits).(uint16))
	case uint32:
		return T(any(uint32(any(a).(uint32)) << bits).(uint32))
	case uint64:
		return T(any(uint64(any(a).(uint64)) << bits).(uint64))
	default:
		return a
	}
}

func shiftRight[T Integers](a T, bits int) T {
	// Right shift is arithmetic for signed, logical for unsigned
	switch any(a).(type) {
	case int8:
		return T(any(int8(any(a).(int8)) >> bits).(int8))
	case int16:
		return T(any(int16(any(a).(int16)) >> bits).(int16))
	case int32:
		return T(any(int32(any(a).(int32)) >> bits).(int32))
	case int64:
		return T(any(int64(any(a).(int64)) >> bits).(int64))
	case uint8:
		return T(any(uint8(any(a).(uint8)) >> bits).(uint8))
	case uint16:
		return T(any(uint16(any(a).(uint16)) >> bits).(uint16))
	case uint32:
		return T(any(uint32(any(a).(uint32)) >> bits).(uint32))
	case uint64:
		return T(any(uint64(any(a).(uint64)) >> bits).(uint64))
	default:
		return a
	}
}

// ============================================================================
// Fused multiply-add
// ============================================================================

// MulAdd performs fused multiply-add: a*b + c.
// This is an alias for FMA with the common a.MulAdd(b, c) semantics.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	return FMA(a, b, c)
}

