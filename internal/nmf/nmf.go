//    OCRTopics
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package nmf

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/e-gun/OCRTopics/internal/lnch"
	"github.com/e-gun/OCRTopics/internal/vv"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//
// NON-NEGATIVE MATRIX FACTORIZATION
//

const (
	InitNNDSVD  = "nndsvd"
	InitNNDSVDA = "nndsvda"
	InitRandom  = "random"
)

var (
	Msg = lnch.NewMessageMakerWithDefaults()

	ErrNegativeInput     = errors.New("matrix has negative entries")
	ErrTooManyComponents = errors.New("more components than the matrix rank allows")
	ErrNoComponents      = errors.New("number of components must be positive")
	ErrUnknownInit       = errors.New("unknown initialization")
	ErrSVDFailed         = errors.New("singular value decomposition failed")
)

// Config - X ≈ W·H with an elastic-net penalty on both factors
type Config struct {
	Components int
	Alpha      float64
	L1Ratio    float64
	Init       string
	Seed       uint64
	MaxIter    int
	Tolerance  float64
}

func DefaultConfig() Config {
	return Config{
		Components: vv.NMFTOPICS,
		Alpha:      vv.NMFALPHA,
		L1Ratio:    vv.NMFL1RATIO,
		Init:       vv.NMFINIT,
		Seed:       vv.NMFSEED,
		MaxIter:    vv.NMFMAXITER,
		Tolerance:  vv.NMFTOLERANCE,
	}
}

// Model - W is samples × components, H is components × features
type Model struct {
	W          *mat.Dense
	H          *mat.Dense
	Iterations int
	Converged  bool
	// ReconstructionErr - ‖X − W·H‖ (Frobenius)
	ReconstructionErr float64
}

// Fit - coordinate descent on the Frobenius loss
func Fit(x mat.Matrix, c Config) (*Model, error) {
	const (
		MSG1 = "nmf: %d × %d input, %d components, init %s"
		MSG2 = "nmf converged after %d iterations"
		MSG3 = "nmf stopped at the iteration limit (%d) without converging"
	)
	start := time.Now()

	n, m := x.Dims()
	k := c.Components
	if n == 0 || m == 0 {
		return nil, fmt.Errorf("%w: empty %d × %d matrix", ErrTooManyComponents, n, m)
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNoComponents, k)
	}

	xd := mat.DenseCopyOf(x)
	if floats.Min(xd.RawMatrix().Data) < 0 {
		return nil, ErrNegativeInput
	}
	Msg.PEEK(fmt.Sprintf(MSG1, n, m, k, c.Init))

	w, h, err := initialize(xd, k, c.Init, c.Seed)
	if err != nil {
		return nil, err
	}
	Msg.Timer("N1", "nmf initialized", start, start)
	previous := time.Now()

	l1 := c.Alpha * c.L1Ratio
	l2 := c.Alpha * (1 - c.L1Ratio)

	ht := mat.DenseCopyOf(h.T())
	model := &Model{}
	var vinit float64
	for it := 1; it <= c.MaxIter; it++ {
		model.Iterations = it
		violation := update(xd, w, ht, l1, l2)
		violation += update(xd.T(), ht, w, l1, l2)

		if it == 1 {
			vinit = violation
		}
		if vinit == 0 || violation/vinit <= c.Tolerance {
			model.Converged = true
			break
		}
	}

	if model.Converged {
		Msg.Timer("N2", fmt.Sprintf(MSG2, model.Iterations), start, previous)
	} else {
		Msg.WARN(fmt.Sprintf(MSG3, c.MaxIter))
	}

	model.W = w
	model.H = mat.DenseCopyOf(ht.T())
	model.ReconstructionErr = reconstructionerr(xd, model.W, model.H)
	return model, nil
}

// update - one sweep over the columns of w holding ht fixed; returns the projected gradient violation
func update(x mat.Matrix, w *mat.Dense, ht *mat.Dense, l1, l2 float64) float64 {
	n, k := w.Dims()

	var hht, xht mat.Dense
	hht.Mul(ht.T(), ht)
	xht.Mul(x, ht)

	for t := 0; t < k; t++ {
		hht.Set(t, t, hht.At(t, t)+l2)
	}
	if l1 != 0 {
		raw := xht.RawMatrix().Data
		for i := range raw {
			raw[i] -= l1
		}
	}

	violation := 0.0
	for t := 0; t < k; t++ {
		hess := hht.At(t, t)
		hrow := hht.RawRowView(t)
		for i := 0; i < n; i++ {
			wrow := w.RawRowView(i)
			grad := floats.Dot(hrow, wrow) - xht.At(i, t)

			pg := grad
			if wrow[t] == 0 {
				pg = math.Min(0, grad)
			}
			violation += math.Abs(pg)

			if hess != 0 {
				wrow[t] = math.Max(wrow[t]-grad/hess, 0)
			}
		}
	}
	return violation
}

func reconstructionerr(x, w, h *mat.Dense) float64 {
	var r mat.Dense
	r.Mul(w, h)
	r.Sub(x, &r)
	return mat.Norm(&r, 2)
}

//
// INITIALIZATION
//

func initialize(x *mat.Dense, k int, how string, seed uint64) (*mat.Dense, *mat.Dense, error) {
	switch how {
	case InitNNDSVD, InitNNDSVDA:
		return nndsvd(x, k, how == InitNNDSVDA)
	case InitRandom:
		w, h := randominit(x, k, seed)
		return w, h, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownInit, how)
	}
}

// randominit - |N(0,1)| scaled so that W·H has roughly the magnitude of x
func randominit(x *mat.Dense, k int, seed uint64) (*mat.Dense, *mat.Dense) {
	n, m := x.Dims()
	avg := math.Sqrt(mean(x) / float64(k))
	rng := rand.New(rand.NewSource(seed))

	fill := func(d []float64) {
		for i := range d {
			d[i] = avg * math.Abs(rng.NormFloat64())
		}
	}

	h := mat.NewDense(k, m, nil)
	w := mat.NewDense(n, k, nil)
	fill(h.RawMatrix().Data)
	fill(w.RawMatrix().Data)
	return w, h
}

// nndsvd - Boutsidis & Gallopoulos; with fill the zeros are replaced by the mean of x
func nndsvd(x *mat.Dense, k int, fill bool) (*mat.Dense, *mat.Dense, error) {
	n, m := x.Dims()
	if k > min(n, m) {
		return nil, nil, fmt.Errorf("%w: %d components for a %d × %d matrix", ErrTooManyComponents, k, n, m)
	}

	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDThin); !ok {
		return nil, nil, ErrSVDFailed
	}
	s := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	w := mat.NewDense(n, k, nil)
	h := mat.NewDense(k, m, nil)

	for j := 0; j < k; j++ {
		uj := mat.Col(nil, j, &u)
		vj := mat.Col(nil, j, &v)

		if j == 0 {
			root := math.Sqrt(s[0])
			for i, val := range uj {
				w.Set(i, 0, root*math.Abs(val))
			}
			for i, val := range vj {
				h.Set(0, i, root*math.Abs(val))
			}
			continue
		}

		up, un := split(uj)
		vp, vn := split(vj)
		upn, unn := floats.Norm(up, 2), floats.Norm(un, 2)
		vpn, vnn := floats.Norm(vp, 2), floats.Norm(vn, 2)

		mp, mn := upn*vpn, unn*vnn
		a, b, an, bn, sigma := up, vp, upn, vpn, mp
		if mp <= mn {
			a, b, an, bn, sigma = un, vn, unn, vnn, mn
		}
		if sigma == 0 {
			continue
		}

		lbd := math.Sqrt(s[j] * sigma)
		for i, val := range a {
			w.Set(i, j, lbd*val/an)
		}
		for i, val := range b {
			h.Set(j, i, lbd*val/bn)
		}
	}

	avg := mean(x)
	for _, d := range [][]float64{w.RawMatrix().Data, h.RawMatrix().Data} {
		for i := range d {
			if d[i] < vv.NMFEPSILON {
				d[i] = 0
				if fill {
					d[i] = avg
				}
			}
		}
	}
	return w, h, nil
}

// split - positive and negative parts of a vector, both returned as non-negative
func split(x []float64) ([]float64, []float64) {
	p := make([]float64, len(x))
	q := make([]float64, len(x))
	for i, v := range x {
		if v > 0 {
			p[i] = v
		} else {
			q[i] = -v
		}
	}
	return p, q
}

func mean(x *mat.Dense) float64 {
	d := x.RawMatrix().Data
	if len(d) == 0 {
		return 0
	}
	return floats.Sum(d) / float64(len(d))
}
