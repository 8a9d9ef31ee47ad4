package m

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// randomArray draws size values uniformly from [0,1). A nil src falls back to
// the process-wide generator.
func randomArray(size int, src rand.Source) []float64 {
	dist := distuv.Uniform{
		Min: 0,
		Max: 1,
		Src: src,
	}

	data := make([]float64, size)
	for i := 0; i < size; i++ {
		data[i] = dist.Rand()
	}
	return data
}

// apply runs fn over every element of v in place.
func apply(fn func(float64) float64, v *mat.VecDense) *mat.VecDense {
	raw := v.RawVector()
	for i := 0; i < raw.N; i++ {
		raw.Data[i*raw.Inc] = fn(raw.Data[i*raw.Inc])
	}
	return v
}

func dot(w mat.Matrix, v mat.Vector) *mat.VecDense {
	r, _ := w.Dims()
	o := mat.NewVecDense(r, nil)
	o.MulVec(w, v)
	return o
}

func multiply(a, b mat.Vector) *mat.VecDense {
	o := mat.NewVecDense(a.Len(), nil)
	o.MulElemVec(a, b)
	return o
}

func subtract(a, b mat.Vector) *mat.VecDense {
	o := mat.NewVecDense(a.Len(), nil)
	o.SubVec(a, b)
	return o
}

// vector copies data so the result never aliases caller memory.
func vector(data []float64) *mat.VecDense {
	return mat.NewVecDense(len(data), append([]float64(nil), data...))
}

func toSlice(v mat.Vector) []float64 {
	o := make([]float64, v.Len())
	for i := range o {
		o[i] = v.AtVec(i)
	}
	return o
}
