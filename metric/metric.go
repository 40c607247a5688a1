package metric

import (
	"fmt"
	"strings"
)

// Metric identifies a distance kernel.
type Metric int

const (
	// SquaredEuclidean ranks by the sum of squared differences, smaller is closer.
	SquaredEuclidean Metric = iota
	// DotProduct ranks by the inner product, larger is closer.
	DotProduct
	// Cosine ranks by the normalized inner product, larger is closer.
	Cosine
)

// Properties are the evaluation guarantees a host engine may rely on.
// Immutable results may be cached for identical inputs within a statement;
// parallel-safe kernels may run concurrently without synchronization.
type Properties struct {
	Immutable    bool
	ParallelSafe bool
}

type entry struct {
	name    string
	token   string
	aliases []string
	kernel  Kernel
	props   Properties
	higher  bool
}

var pure = Properties{Immutable: true, ParallelSafe: true}

// registry is built once at init and only read afterwards.
var (
	registry = map[Metric]*entry{
		SquaredEuclidean: {name: "squared_euclidean", token: "<->", aliases: []string{"l2", "l2_squared", "euclidean"}, kernel: SquaredEuclideanDistance, props: pure},
		DotProduct:       {name: "dot_product", token: "<#>", aliases: []string{"dot", "inner_product"}, kernel: DotProductDistance, props: pure, higher: true},
		Cosine:           {name: "cosine", token: "<=>", aliases: []string{"cos"}, kernel: CosineDistance, props: pure, higher: true},
	}
	byToken = map[string]Metric{}
	byName  = map[string]Metric{}
)

func init() {
	for m, e := range registry {
		byToken[e.token] = m
		byName[e.name] = m
		for _, alias := range e.aliases {
			byName[alias] = m
		}
	}
}

func (m Metric) String() string {
	if e, ok := registry[m]; ok {
		return e.name
	}
	return fmt.Sprintf("unknown(%d)", int(m))
}

// Token returns the operator token bound to m, or "" if m is not registered.
func (m Metric) Token() string {
	if e, ok := registry[m]; ok {
		return e.token
	}
	return ""
}

// Properties returns the declared evaluation properties of m.
func (m Metric) Properties() Properties {
	if e, ok := registry[m]; ok {
		return e.props
	}
	return Properties{}
}

// HigherIsCloser reports whether larger results mean closer vectors.
func (m Metric) HigherIsCloser() bool {
	if e, ok := registry[m]; ok {
		return e.higher
	}
	return false
}

// Kernel returns the kernel bound to m.
func (m Metric) Kernel() (Kernel, error) {
	e, ok := registry[m]
	if !ok {
		return nil, &UnsupportedMetricError{Name: m.String()}
	}
	return e.kernel, nil
}

// Distance applies m to left and right.
func (m Metric) Distance(left, right []float32) (float32, error) {
	kernel, err := m.Kernel()
	if err != nil {
		return 0, err
	}
	return kernel(left, right)
}

// Distance applies the metric m to left and right.
func Distance(m Metric, left, right []float32) (float32, error) {
	return m.Distance(left, right)
}

// ByToken resolves an operator token such as "<->".
func ByToken(token string) (Metric, bool) {
	m, ok := byToken[strings.TrimSpace(token)]
	return m, ok
}

// Parse resolves a metric by operator token, name or alias (case-insensitive).
func Parse(s string) (Metric, error) {
	if m, ok := ByToken(s); ok {
		return m, nil
	}
	if m, ok := byName[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return 0, &UnsupportedMetricError{Name: s}
}

// All returns the registered metrics in declaration order.
func All() []Metric {
	return []Metric{SquaredEuclidean, DotProduct, Cosine}
}
