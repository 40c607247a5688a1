package bruteforce

import (
	"context"
	"fmt"
	"sort"

	"github.com/chewxy/math32"
	"github.com/viant/vecdist/index"
	"github.com/viant/vecdist/metric"
	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest number of vectors scored by one worker.
const minChunk = 256

// Option configures an Index.
type Option func(*Index)

// WithParallelism sets the number of workers used by Query. Values below 2
// scan sequentially.
func WithParallelism(n int) Option {
	return func(i *Index) { i.parallel = n }
}

// Index is a brute-force vector index ranking by a metric kernel.
type Index struct {
	metric   metric.Metric
	kernel   metric.Kernel
	parallel int
	ids      []string
	vecs     [][]float32
	dim      int
}

// New creates an empty index for m.
func New(m metric.Metric, opts ...Option) (*Index, error) {
	kernel, err := m.Kernel()
	if err != nil {
		return nil, fmt.Errorf("bruteforce: %w", err)
	}
	i := &Index{metric: m, kernel: kernel}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// Metric returns the metric used for ranking.
func (i *Index) Metric() metric.Metric { return i.metric }

// Len returns the number of indexed vectors.
func (i *Index) Len() int { return len(i.ids) }

// Build loads ids and vectors. Vectors are referenced, not copied, and must
// not be mutated while the index is in use.
func (i *Index) Build(ids []string, vectors [][]float32) error {
	if len(ids) != len(vectors) {
		return fmt.Errorf("bruteforce: ids and vectors length mismatch: %d != %d", len(ids), len(vectors))
	}
	if len(ids) == 0 {
		i.ids, i.vecs, i.dim = nil, nil, 0
		return nil
	}
	dim := len(vectors[0])
	for j := range vectors {
		if err := metric.ValidateDimensions(vectors[j], vectors[0]); err != nil {
			return fmt.Errorf("bruteforce: vector %q: %w", ids[j], err)
		}
	}
	i.ids = append([]string(nil), ids...)
	i.vecs = append([][]float32(nil), vectors...)
	i.dim = dim
	return nil
}

type scored struct {
	idx  int
	dist float32
}

// Query returns the top-k vectors closest to query. When k <= 0 every
// vector is returned. Vectors whose distance is NaN are skipped.
func (i *Index) Query(ctx context.Context, query []float32, k int) ([]string, []float32, error) {
	if len(i.vecs) == 0 {
		return nil, nil, nil
	}
	if err := metric.ValidateDimensions(query, i.vecs[0]); err != nil {
		return nil, nil, fmt.Errorf("bruteforce: query: %w", err)
	}
	scoreds, err := i.scan(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	higher := i.metric.HigherIsCloser()
	sort.SliceStable(scoreds, func(a, b int) bool {
		if higher {
			return scoreds[a].dist > scoreds[b].dist
		}
		return scoreds[a].dist < scoreds[b].dist
	})
	if k <= 0 || k > len(scoreds) {
		k = len(scoreds)
	}
	outIDs := make([]string, k)
	outDists := make([]float32, k)
	for n := 0; n < k; n++ {
		outIDs[n] = i.ids[scoreds[n].idx]
		outDists[n] = scoreds[n].dist
	}
	return outIDs, outDists, nil
}

func (i *Index) scan(ctx context.Context, query []float32) ([]scored, error) {
	workers := i.parallel
	if n := (len(i.vecs) + minChunk - 1) / minChunk; workers > n {
		workers = n
	}
	if workers < 2 {
		return i.scanRange(ctx, query, 0, len(i.vecs))
	}
	parts := make([][]scored, workers)
	chunk := (len(i.vecs) + workers - 1) / workers
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		from, to := w*chunk, min((w+1)*chunk, len(i.vecs))
		if from >= to {
			break
		}
		g.Go(func() error {
			part, err := i.scanRange(gctx, query, from, to)
			parts[w] = part
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	out := make([]scored, 0, len(i.vecs))
	for _, part := range parts {
		out = append(out, part...)
	}
	return out, nil
}

func (i *Index) scanRange(ctx context.Context, query []float32, from, to int) ([]scored, error) {
	out := make([]scored, 0, to-from)
	for j := from; j < to; j++ {
		if (j-from)%minChunk == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		d, err := i.kernel(query, i.vecs[j])
		if err != nil {
			return nil, fmt.Errorf("bruteforce: %q: %w", i.ids[j], err)
		}
		if math32.IsNaN(d) {
			continue
		}
		out = append(out, scored{idx: j, dist: d})
	}
	return out, nil
}

var _ index.Index = (*Index)(nil)
