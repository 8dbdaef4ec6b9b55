// SPDX-License-Identifier: MIT

// Package fglm - exact dense matrices (row-major) over a domain.Field.
//
// Purpose:
//   - Hold the representing matrices of the multiplication maps and the
//     transformation matrix P of the conversion.
//   - Keep the explicit index formula i*cols + j over one flat buffer.
//   - Public accessors At/Set return ErrOutOfRange instead of panicking.
//
// Complexity quicksheet:
//   - NewDense, Identity: O(r*c); At/Set: O(1); MulVec: O(r*c);
//     pivot: O(r*c).

package fglm

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/groebner/domain"
)

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// denseErrorf attaches the accessor and coordinates to a sentinel.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major r×c matrix with entries in a field.
// Zero-sized shapes are legal: the quotient of a module by itself has
// dimension 0.
type Dense[E any] struct {
	k    domain.Field[E]
	r, c int
	data []E // len == r*c, offset i*c + j
}

// NewDense creates an r×c zero matrix over k.
//
// Errors:
//   - ErrBadShape if rows or cols is negative.
func NewDense[E any](k domain.Field[E], rows, cols int) (*Dense[E], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	data := make([]E, rows*cols)
	for i := range data {
		data[i] = k.Zero()
	}

	return &Dense[E]{k: k, r: rows, c: cols, data: data}, nil
}

// Identity returns the n×n identity matrix over k.
func Identity[E any](k domain.Field[E], n int) (*Dense[E], error) {
	d, err := NewDense(k, n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = k.One()
	}

	return d, nil
}

// Rows returns the number of rows.
func (d *Dense[E]) Rows() int { return d.r }

// Cols returns the number of columns.
func (d *Dense[E]) Cols() int { return d.c }

// At returns the entry (i, j).
func (d *Dense[E]) At(i, j int) (E, error) {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		var zero E

		return zero, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return d.data[i*d.c+j], nil
}

// Set assigns the entry (i, j).
func (d *Dense[E]) Set(i, j int, v E) error {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	d.data[i*d.c+j] = v

	return nil
}

// MulVec returns d·x. x must have Cols() entries; zero entries of x are
// skipped, which matters because coordinate vectors are mostly sparse.
func (d *Dense[E]) MulVec(x []E) []E {
	y := make([]E, d.r)
	for i := 0; i < d.r; i++ {
		acc := d.k.Zero()
		base := i * d.c
		for j := 0; j < d.c; j++ {
			if domain.IsZero(d.k, x[j]) {
				continue
			}
			acc = d.k.Add(acc, d.k.Mul(d.data[base+j], x[j]))
		}
		y[i] = acc
	}

	return y
}

// pivot folds one accepted vector into the transformation matrix.
//
// lambda = d·v must have a nonzero entry at some index >= s. With k the
// least such index, every row r != k gets row_r -= (lambda_r/lambda_k)·row_k,
// row k is divided by lambda_k, and rows k and s are swapped. Afterwards
// d·v = e_s while d·V_i = e_i still holds for the previously accepted V_i.
func (d *Dense[E]) pivot(s int, lambda []E) {
	k := -1
	for j := s; j < len(lambda); j++ {
		if !domain.IsZero(d.k, lambda[j]) {
			k = j

			break
		}
	}
	rowK := d.data[k*d.c : (k+1)*d.c]
	for r := 0; r < d.r; r++ {
		if r == k || domain.IsZero(d.k, lambda[r]) {
			continue
		}
		f := d.k.Quo(lambda[r], lambda[k])
		row := d.data[r*d.c : (r+1)*d.c]
		for j := range row {
			row[j] = d.k.Sub(row[j], d.k.Mul(rowK[j], f))
		}
	}
	for j := range rowK {
		rowK[j] = d.k.Quo(rowK[j], lambda[k])
	}
	if k != s {
		rowS := d.data[s*d.c : (s+1)*d.c]
		for j := range rowK {
			rowK[j], rowS[j] = rowS[j], rowK[j]
		}
	}
}

// Format renders the matrix one bracketed row per line using the codec's
// textual form of the entries.
func (d *Dense[E]) Format(c domain.Codec[E]) string {
	var sb strings.Builder
	for i := 0; i < d.r; i++ {
		sb.WriteString("[")
		for j := 0; j < d.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(c.Format(d.data[i*d.c+j]))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
