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

package matmul

import "github.com/gemmkit/gemmkit/hwy"

// BasePackRHSFast packs a panel of a row-major B matrix using SIMD loads
// when the requested strip width is a whole multiple of the current
// vector width, falling back to scalar copy plus zero-padding otherwise.
// PackB calls into this whenever the source view is row-major contiguous
// with a positive row stride (ColStride == 1, RowStride > 0), since that
// is the only layout where a strip of columns is both forward-addressed
// from offset and itself vector-loadable; arbitrarily strided or
// negative-stride views go through PackB's generic element-at-a-time
// path instead. offset is the view's logical origin (View.Offset) into b.
func BasePackRHSFast[T hwy.Floats](b []T, offset int, packed []T, n, rowStart, colStart, panelK, panelCols, nr int) {
	lanes := hwy.Zero[T]().NumLanes()
	dstIdx := 0

	for stripColIdx := 0; stripColIdx < panelCols; stripColIdx += nr {
		validCols := min(nr, panelCols-stripColIdx)
		baseCol := colStart + stripColIdx

		if validCols == nr && nr >= lanes && nr%lanes == 0 {
			for kk := 0; kk < panelK; kk++ {
				srcIdx := offset + (rowStart+kk)*n + baseCol
				for c := 0; c < nr; c += lanes {
					v := hwy.Load(b[srcIdx+c:])
					hwy.Store(v, packed[dstIdx+c:])
				}
				dstIdx += nr
			}
			continue
		}

		for kk := 0; kk < panelK; kk++ {
			srcIdx := offset + (rowStart+kk)*n + baseCol
			for c := 0; c < validCols; c++ {
				packed[dstIdx] = b[srcIdx+c]
				dstIdx++
			}
			for c := validCols; c < nr; c++ {
				packed[dstIdx] = 0
				dstIdx++
			}
		}
	}
}

// applyTile applies a raw (unscaled) packed micro-tile to a row-major
// output region: output = alpha*packedOutput + beta*output, the general
// alpha/beta fusion case. Used by Microkernel whenever alpha and beta
// are not one of the cheaper special cases below.
func applyTile[T hwy.Floats](
	packedOutput, output []T,
	alpha, beta T,
	packedStride int,
	outputRowOffset, outputColOffset int,
	outputStride int,
	height, width int,
) {
	lanes := hwy.Zero[T]().NumLanes()
	alphaVec := hwy.Set(alpha)
	betaVec := hwy.Set(beta)

	for r := 0; r < height; r++ {
		packedIdx := r * packedStride
		outputIdx := (outputRowOffset+r)*outputStride + outputColOffset

		c := 0
		for ; c+lanes <= width; c += lanes {
			packedVal := hwy.Load(packedOutput[packedIdx+c:])
			outputVal := hwy.Load(output[outputIdx+c:])
			scaledOutput := hwy.Mul(outputVal, betaVec)
			newVal := hwy.MulAdd(packedVal, alphaVec, scaledOutput)
			hwy.Store(newVal, output[outputIdx+c:])
		}
		for ; c < width; c++ {
			val := packedOutput[packedIdx+c]
			output[outputIdx+c] = beta*output[outputIdx+c] + alpha*val
		}
	}
}

// applyTileSimple is the alpha=1, beta=0 case of applyTile: a direct,
// unscaled copy from the packed tile into output. Output's prior
// contents are never read, so an uninitialised destination is fine.
func applyTileSimple[T hwy.Floats](
	packedOutput, output []T,
	packedStride int,
	outputRowOffset, outputColOffset int,
	outputStride int,
	height, width int,
) {
	lanes := hwy.Zero[T]().NumLanes()

	for r := 0; r < height; r++ {
		packedIdx := r * packedStride
		outputIdx := (outputRowOffset+r)*outputStride + outputColOffset

		c := 0
		for ; c+lanes <= width; c += lanes {
			v := hwy.Load(packedOutput[packedIdx+c:])
			hwy.Store(v, output[outputIdx+c:])
		}
		for ; c < width; c++ {
			output[outputIdx+c] = packedOutput[packedIdx+c]
		}
	}
}

// applyTileScaled is the alpha=arbitrary, beta=0 case of applyTile: scales
// the packed tile by alpha without reading output's prior contents.
func applyTileScaled[T hwy.Floats](
	packedOutput, output []T,
	alpha T,
	packedStride int,
	outputRowOffset, outputColOffset int,
	outputStride int,
	height, width int,
) {
	lanes := hwy.Zero[T]().NumLanes()
	alphaVec := hwy.Set(alpha)

	for r := 0; r < height; r++ {
		packedIdx := r * packedStride
		outputIdx := (outputRowOffset+r)*outputStride + outputColOffset

		c := 0
		for ; c+lanes <= width; c += lanes {
			v := hwy.Load(packedOutput[packedIdx+c:])
			hwy.Store(hwy.Mul(v, alphaVec), output[outputIdx+c:])
		}
		for ; c < width; c++ {
			output[outputIdx+c] = alpha * packedOutput[packedIdx+c]
		}
	}
}

// applyTileAccum is the alpha=1, beta=1 case of applyTile: output +=
// packedOutput, the common case of accumulating successive kc blocks
// directly into C.
func applyTileAccum[T hwy.Floats](
	packedOutput, output []T,
	packedStride int,
	outputRowOffset, outputColOffset int,
	outputStride int,
	height, width int,
) {
	lanes := hwy.Zero[T]().NumLanes()

	for r := 0; r < height; r++ {
		packedIdx := r * packedStride
		outputIdx := (outputRowOffset+r)*outputStride + outputColOffset

		c := 0
		for ; c+lanes <= width; c += lanes {
			packedVal := hwy.Load(packedOutput[packedIdx+c:])
			outputVal := hwy.Load(output[outputIdx+c:])
			newVal := hwy.Add(outputVal, packedVal)
			hwy.Store(newVal, output[outputIdx+c:])
		}
		for ; c < width; c++ {
			output[outputIdx+c] += packedOutput[packedIdx+c]
		}
	}
}
