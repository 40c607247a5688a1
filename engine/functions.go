package engine

import (
	"database/sql/driver"
	"fmt"
	"sort"
	"sync"

	"github.com/viant/vecdist/metric"
	"github.com/viant/vecdist/vector"
	sqlite "modernc.org/sqlite"
)

const (
	// DistanceFunction dispatches on an operator token or metric name:
	// vec_distance('<->', a, b).
	DistanceFunction = "vec_distance"
	// DimsFunction returns the number of elements of a vector.
	DimsFunction = "vec_dims"
)

// functionNames binds each metric to its SQL function.
var functionNames = map[metric.Metric]string{
	metric.SquaredEuclidean: "vec_squared_euclidean",
	metric.DotProduct:       "vec_dot_product",
	metric.Cosine:           "vec_cosine",
}

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterFunctions registers the vector functions with the driver so they
// are available on new connections opened after this call. Registration is
// process-wide and happens once; later calls return the first outcome and
// only the first caller's options are used for the per-function debug logs.
// Open logs the registered set on every call.
// Existing open connections will not see new functions.
func RegisterFunctions(opts ...Option) error {
	o := newOptions(opts)
	registerOnce.Do(func() {
		for _, m := range metric.All() {
			name := functionNames[m]
			if err := register(name, 2, kernelFunc(name, m)); err != nil {
				registerErr = err
				return
			}
			o.logger.Debug().Str("function", name).Str("token", m.Token()).Msg("registered distance function")
		}
		if registerErr = register(DistanceFunction, 3, distanceFunc); registerErr != nil {
			return
		}
		registerErr = register(DimsFunction, 1, dimsFunc)
	})
	return registerErr
}

func register(name string, nArgs int32, fn func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error)) error {
	if err := sqlite.RegisterDeterministicScalarFunction(name, nArgs, fn); err != nil {
		return fmt.Errorf("engine: register %s: %w", name, err)
	}
	return nil
}

// FunctionFor returns the SQL function bound to an operator token.
func FunctionFor(token string) (string, bool) {
	m, ok := metric.ByToken(token)
	if !ok {
		return "", false
	}
	return functionNames[m], true
}

// FunctionNames lists every SQL function installed by RegisterFunctions.
func FunctionNames() []string {
	names := []string{DistanceFunction, DimsFunction}
	for _, name := range functionNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// asVector converts a SQL argument into a vector; SQL NULL yields nil.
func asVector(fn string, arg driver.Value) ([]float32, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return vector.DecodeEmbedding(v)
	case string:
		return vector.ParseText(v)
	default:
		return nil, fmt.Errorf("%s: unsupported argument type %T for vector; want BLOB or TEXT", fn, arg)
	}
}

func asString(arg driver.Value) (string, bool) {
	switch v := arg.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	default:
		return "", false
	}
}

// evaluate decodes both operands and applies m. A NULL operand yields NULL.
func evaluate(fn string, m metric.Metric, left, right driver.Value) (driver.Value, error) {
	a, err := asVector(fn, left)
	if err != nil {
		return nil, err
	}
	b, err := asVector(fn, right)
	if err != nil {
		return nil, err
	}
	if a == nil || b == nil {
		return nil, nil
	}
	d, err := m.Distance(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return float64(d), nil
}

func kernelFunc(name string, m metric.Metric) func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error) {
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%s: expected 2 arguments, got %d", name, len(args))
		}
		return evaluate(name, m, args[0], args[1])
	}
}

func distanceFunc(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("%s: expected 3 arguments, got %d", DistanceFunction, len(args))
	}
	if args[0] == nil {
		return nil, nil
	}
	op, ok := asString(args[0])
	if !ok {
		return nil, fmt.Errorf("%s: operator must be TEXT, got %T", DistanceFunction, args[0])
	}
	m, err := metric.Parse(op)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", DistanceFunction, err)
	}
	return evaluate(DistanceFunction, m, args[1], args[2])
}

func dimsFunc(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%s: expected 1 argument, got %d", DimsFunction, len(args))
	}
	v, err := asVector(DimsFunction, args[0])
	if err != nil || v == nil {
		return nil, err
	}
	return int64(len(v)), nil
}
