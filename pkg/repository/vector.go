package repository

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"modernc.org/sqlite"
)

// distanceFunc is the SQL scalar returning the cosine distance between two embedding blobs
const distanceFunc = "vector_distance_cos"

var registerOnce sync.Once
var registerErr error

// registerVectorFunctions adds vector_distance_cos to every connection opened by the sqlite driver
func registerVectorFunctions() error {
	registerOnce.Do(func() {
		registerErr = sqlite.RegisterDeterministicScalarFunction(distanceFunc, 2,
			func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
				a, okA := args[0].([]byte)
				b, okB := args[1].([]byte)
				if !okA || !okB || len(a) == 0 || len(b) == 0 {
					return nil, nil // NULL embedding never matches
				}
				dist, err := cosineDistance(decodeVector(a), decodeVector(b))
				if err != nil {
					return nil, err
				}
				return dist, nil
			})
	})
	return registerErr
}

// encodeVector packs float32 values as little-endian bytes
func encodeVector(v []float32) []byte {
	if len(v) == 0 {
		return nil
	}
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// decodeVector unpacks little-endian bytes into float32 values, trailing bytes are ignored
func decodeVector(b []byte) []float32 {
	n := len(b) / 4
	if n == 0 {
		return nil
	}
	v := make([]float32, n)
	for i := range n {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v
}

// cosineDistance returns 1 - cos(a, b). Zero vectors are treated as orthogonal.
func cosineDistance(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector dimensions differ: %d vs %d", len(a), len(b))
	}
	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 1, nil
	}
	return 1 - dot/(math.Sqrt(na)*math.Sqrt(nb)), nil
}
