// Package classifier runs trained LSTM sequence models over windows of joint angles.
package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
)

// ErrUnavailable is returned when a model or statistics artifact cannot be
// located or parsed. Callers degrade to a mock result rather than failing.
var ErrUnavailable = errors.New("model artifact unavailable")

// Model is a multi-layer LSTM with a linear softmax head, loaded from an
// exported weight artifact. It classifies a fixed-length window of angle
// vectors as correct (class 1) or incorrect (class 0) form.
type Model struct {
	InputSize  int
	HiddenSize int
	NumLayers  int
	NumClasses int

	layers []lstmLayer
	fcW    *mat.Dense
	fcB    *mat.VecDense
}

// lstmLayer holds the stacked gate weights for one LSTM layer.
// Gate rows are ordered input, forget, cell, output (PyTorch export order).
type lstmLayer struct {
	wih *mat.Dense // (4H x in)
	whh *mat.Dense // (4H x H)
	bih *mat.VecDense
	bhh *mat.VecDense
}

// modelFile mirrors the JSON weight artifact layout.
type modelFile struct {
	InputSize  int         `json:"input_size"`
	HiddenSize int         `json:"hidden_size"`
	NumLayers  int         `json:"num_layers"`
	NumClasses int         `json:"num_classes"`
	Layers     []layerFile `json:"layers"`
	FCWeight   [][]float64 `json:"fc_weight"`
	FCBias     []float64   `json:"fc_bias"`
}

type layerFile struct {
	WeightIH [][]float64 `json:"weight_ih"`
	WeightHH [][]float64 `json:"weight_hh"`
	BiasIH   []float64   `json:"bias_ih"`
	BiasHH   []float64   `json:"bias_hh"`
}

// Load reads a model weight artifact from disk.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var mf modelFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrUnavailable, path, err)
	}

	return build(&mf)
}

func build(mf *modelFile) (*Model, error) {
	if mf.InputSize <= 0 || mf.HiddenSize <= 0 || mf.NumLayers <= 0 || mf.NumClasses < 2 {
		return nil, fmt.Errorf("%w: invalid model dimensions", ErrUnavailable)
	}
	if len(mf.Layers) != mf.NumLayers {
		return nil, fmt.Errorf("%w: expected %d layers, got %d", ErrUnavailable, mf.NumLayers, len(mf.Layers))
	}

	m := &Model{
		InputSize:  mf.InputSize,
		HiddenSize: mf.HiddenSize,
		NumLayers:  mf.NumLayers,
		NumClasses: mf.NumClasses,
	}

	for i, lf := range mf.Layers {
		in := mf.InputSize
		if i > 0 {
			in = mf.HiddenSize
		}

		wih, err := denseFrom(lf.WeightIH, 4*mf.HiddenSize, in)
		if err != nil {
			return nil, fmt.Errorf("%w: layer %d weight_ih: %v", ErrUnavailable, i, err)
		}
		whh, err := denseFrom(lf.WeightHH, 4*mf.HiddenSize, mf.HiddenSize)
		if err != nil {
			return nil, fmt.Errorf("%w: layer %d weight_hh: %v", ErrUnavailable, i, err)
		}
		if len(lf.BiasIH) != 4*mf.HiddenSize || len(lf.BiasHH) != 4*mf.HiddenSize {
			return nil, fmt.Errorf("%w: layer %d bias length", ErrUnavailable, i)
		}

		m.layers = append(m.layers, lstmLayer{
			wih: wih,
			whh: whh,
			bih: mat.NewVecDense(4*mf.HiddenSize, append([]float64(nil), lf.BiasIH...)),
			bhh: mat.NewVecDense(4*mf.HiddenSize, append([]float64(nil), lf.BiasHH...)),
		})
	}

	fcW, err := denseFrom(mf.FCWeight, mf.NumClasses, mf.HiddenSize)
	if err != nil {
		return nil, fmt.Errorf("%w: fc_weight: %v", ErrUnavailable, err)
	}
	if len(mf.FCBias) != mf.NumClasses {
		return nil, fmt.Errorf("%w: fc_bias length", ErrUnavailable)
	}

	m.fcW = fcW
	m.fcB = mat.NewVecDense(mf.NumClasses, append([]float64(nil), mf.FCBias...))

	return m, nil
}

func denseFrom(rows [][]float64, r, c int) (*mat.Dense, error) {
	if len(rows) != r {
		return nil, fmt.Errorf("expected %d rows, got %d", r, len(rows))
	}
	data := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("row %d: expected %d cols, got %d", i, c, len(row))
		}
		data = append(data, row...)
	}
	return mat.NewDense(r, c, data), nil
}

// Predict runs the window through the LSTM stack and returns the softmax
// probability of the positive (correct form) class.
func (m *Model) Predict(window [][]float64) (float64, error) {
	if len(window) == 0 {
		return 0, fmt.Errorf("empty window")
	}
	for i, row := range window {
		if len(row) != m.InputSize {
			return 0, fmt.Errorf("window row %d: expected %d features, got %d", i, m.InputSize, len(row))
		}
	}

	// Each layer consumes the previous layer's hidden sequence.
	seq := make([]*mat.VecDense, len(window))
	for i, row := range window {
		seq[i] = mat.NewVecDense(m.InputSize, append([]float64(nil), row...))
	}

	for _, layer := range m.layers {
		seq = layer.forward(seq, m.HiddenSize)
	}

	last := seq[len(seq)-1]

	logits := mat.NewVecDense(m.NumClasses, nil)
	logits.MulVec(m.fcW, last)
	logits.AddVec(logits, m.fcB)

	return softmaxPositive(logits), nil
}

// forward runs one LSTM layer over the input sequence and returns the hidden
// state at every timestep.
func (l *lstmLayer) forward(seq []*mat.VecDense, hidden int) []*mat.VecDense {
	h := mat.NewVecDense(hidden, nil)
	c := mat.NewVecDense(hidden, nil)

	out := make([]*mat.VecDense, len(seq))
	gates := mat.NewVecDense(4*hidden, nil)
	rec := mat.NewVecDense(4*hidden, nil)

	for t, x := range seq {
		gates.MulVec(l.wih, x)
		rec.MulVec(l.whh, h)
		gates.AddVec(gates, rec)
		gates.AddVec(gates, l.bih)
		gates.AddVec(gates, l.bhh)

		next := mat.NewVecDense(hidden, nil)
		for j := 0; j < hidden; j++ {
			in := sigmoid(gates.AtVec(j))
			forget := sigmoid(gates.AtVec(hidden + j))
			cell := math.Tanh(gates.AtVec(2*hidden + j))
			outGate := sigmoid(gates.AtVec(3*hidden + j))

			cv := forget*c.AtVec(j) + in*cell
			c.SetVec(j, cv)
			next.SetVec(j, outGate*math.Tanh(cv))
		}

		h = next
		out[t] = next
	}

	return out
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// softmaxPositive returns the softmax probability of class 1. Logits are
// shifted by their maximum for numeric stability.
func softmaxPositive(logits *mat.VecDense) float64 {
	n := logits.Len()
	maxLogit := logits.AtVec(0)
	for i := 1; i < n; i++ {
		if logits.AtVec(i) > maxLogit {
			maxLogit = logits.AtVec(i)
		}
	}

	var sum float64
	var positive float64
	for i := 0; i < n; i++ {
		e := math.Exp(logits.AtVec(i) - maxLogit)
		sum += e
		if i == 1 {
			positive = e
		}
	}

	return positive / sum
}
