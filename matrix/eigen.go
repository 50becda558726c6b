// SPDX-License-Identifier: MIT
// Package matrix: Jacobi eigensolver for symmetric matrices.
// Eigen backs analysis.ConditionNumber (spectrum of AᵀA) but is exported
// as a general kernel of the substrate.

package matrix

import (
	"fmt"
	"math"
)

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via
// classical Jacobi sweeps.
//
// Implementation:
//   - Stage 1: Validate symmetric square input within tol (not nil,
//     square, |A[i,j]-A[j,i]| ≤ tol).
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j
//     order and apply a Jacobi rotation until the off-diagonal mass
//     drops below tol or maxIter is exhausted.
//
// Inputs:
//   - m: symmetric Matrix (within tol); n := m.Rows().
//   - tol: convergence threshold (typ. 1e-9..1e-12 for float64).
//   - maxIter: safety cap on rotations.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix, unsorted).
//   - Matrix: Q whose columns are the corresponding eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square),
//     ErrAsymmetry (not symmetric within tol),
//     ErrEigenFailed (max off-diagonal ≥ tol after maxIter).
//
// Determinism:
//   - Fixed i→j pivot search and fixed update order produce stable results.
//
// Complexity:
//   - Time O(maxIter * n²) per sweep scan plus O(n) per rotation,
//     Space O(n²) for the working copy and Q.
//
// Notes:
//   - If |A[p,q]| ≤ tol the rotation is skipped (c=1, s=0) to avoid
//     numerical blow-ups.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	// Validate: notNil → square → symmetric within tol.
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	// Prepare working copy A and orthogonal accumulator Q.
	n := m.Rows()
	aRaw := m.Clone() // working copy; the original is never mutated
	qRaw, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	// Detect fast-path on *Dense for the working copy.
	Adense, useFast := aRaw.(*Dense)

	var (
		iter           int     // iteration counter
		i, j           int     // loop iterators
		base           int     // helper offset into the flat data slice
		p, q           int     // current pivot indices
		maxOff, off    float64 // maxOff — current max |A[p,q]|; off — temporary
		app, aqq, apq  float64 // entries A[p,p], A[q,q], A[p,q]
		aip, aiq       float64 // temporaries for A[i,p], A[i,q]
		newIP, newIQ   float64 // updated values for A[i,p] and A[i,q]
		qip, qiq       float64 // temporaries for Q[i,p], Q[i,q]
		theta, t, c, s float64 // rotation parameters
	)
	for iter = 0; iter < maxIter; iter++ {
		// Find pivot (p,q) maximizing |A[p,q]| over the strict upper triangle.
		maxOff = NormZero
		if useFast {
			for i = 0; i < n; i++ {
				base = i * n
				for j = i + 1; j < n; j++ {
					off = math.Abs(Adense.data[base+j])
					if off > maxOff {
						maxOff, p, q = off, i, j
					}
				}
			}
		} else {
			for i = 0; i < n; i++ {
				for j = i + 1; j < n; j++ {
					off, err = aRaw.At(i, j)
					if err != nil {
						return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", i, j, err))
					}
					off = math.Abs(off)
					if off > maxOff {
						maxOff, p, q = off, i, j
					}
				}
			}
		}

		// Convergence: off-diagonal mass below tolerance.
		if maxOff < tol {
			break
		}

		// Read the 2×2 pivot block A[p,p], A[q,q], A[p,q].
		if useFast {
			app = Adense.data[p*n+p]
			aqq = Adense.data[q*n+q]
			apq = Adense.data[p*n+q]
		} else {
			if app, err = aRaw.At(p, p); err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", p, p, err))
			}
			if aqq, err = aRaw.At(q, q); err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", q, q, err))
			}
			if apq, err = aRaw.At(p, q); err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", p, q, err))
			}
		}
		// Guard: avoid division by ~zero off-diagonal.
		if math.Abs(apq) <= tol {
			continue // no-op rotation keeps determinism and prevents blow-ups
		}

		// θ = (aqq−app)/(2·apq); t = sign(θ)/(|θ|+√(θ²+1)); c = 1/√(1+t²); s = t·c.
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// Apply the rotation to A, maintaining symmetry explicitly.
		if useFast {
			for i = 0; i < n; i++ {
				if i == p || i == q {
					continue
				}
				aip = Adense.data[i*n+p]
				aiq = Adense.data[i*n+q]
				newIP = c*aip - s*aiq
				newIQ = s*aip + c*aiq
				Adense.data[i*n+p], Adense.data[p*n+i] = newIP, newIP
				Adense.data[i*n+q], Adense.data[q*n+i] = newIQ, newIQ
			}
			Adense.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
			Adense.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
			Adense.data[p*n+q], Adense.data[q*n+p] = 0, 0
		} else {
			for i = 0; i < n; i++ {
				if i == p || i == q {
					continue
				}
				if aip, err = aRaw.At(i, p); err != nil {
					return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", i, p, err))
				}
				if aiq, err = aRaw.At(i, q); err != nil {
					return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", i, q, err))
				}
				newIP = c*aip - s*aiq
				newIQ = s*aip + c*aiq
				if err = aRaw.Set(i, p, newIP); err != nil {
					return nil, nil, matrixErrorf(opEigen, fmt.Errorf("Set(%d,%d): %w", i, p, err))
				}
				if err = aRaw.Set(p, i, newIP); err != nil {
					return nil, nil, matrixErrorf(opEigen, fmt.Errorf("Set(%d,%d): %w", p, i, err))
				}
				if err = aRaw.Set(i, q, newIQ); err != nil {
					return nil, nil, matrixErrorf(opEigen, fmt.Errorf("Set(%d,%d): %w", i, q, err))
				}
				if err = aRaw.Set(q, i, newIQ); err != nil {
					return nil, nil, matrixErrorf(opEigen, fmt.Errorf("Set(%d,%d): %w", q, i, err))
				}
			}
			if err = aRaw.Set(p, p, c*c*app-2*c*s*apq+s*s*aqq); err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("Set(%d,%d): %w", p, p, err))
			}
			if err = aRaw.Set(q, q, s*s*app+2*c*s*apq+c*c*aqq); err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("Set(%d,%d): %w", q, q, err))
			}
			if err = aRaw.Set(p, q, 0.0); err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("Set(%d,%d): %w", p, q, err))
			}
			if err = aRaw.Set(q, p, 0.0); err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("Set(%d,%d): %w", q, p, err))
			}
		}

		// Accumulate the rotation into Q (qRaw is always *Dense here).
		for i = 0; i < n; i++ {
			qip = qRaw.data[i*n+p] // Q[i,p]
			qiq = qRaw.data[i*n+q] // Q[i,q]
			qRaw.data[i*n+p] = c*qip - s*qiq
			qRaw.data[i*n+q] = s*qip + c*qiq
		}
	}

	// Final convergence check: recompute max off-diagonal.
	maxOff = NormZero
	if useFast {
		for i = 0; i < n; i++ {
			base = i * n
			for j = i + 1; j < n; j++ {
				off = math.Abs(Adense.data[base+j])
				if off > maxOff {
					maxOff = off
				}
			}
		}
	} else {
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off, err = aRaw.At(i, j)
				if err != nil {
					return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				off = math.Abs(off)
				if off > maxOff {
					maxOff = off
				}
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	// Extract eigenvalues from the diagonal of the rotated matrix.
	eigs := make([]float64, n)
	if useFast {
		for i = 0; i < n; i++ {
			eigs[i] = Adense.data[i*n+i]
		}
	} else {
		var v float64
		for i = 0; i < n; i++ {
			if v, err = aRaw.At(i, i); err != nil {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", i, i, err))
			}
			eigs[i] = v
		}
	}

	return eigs, qRaw, nil
}
