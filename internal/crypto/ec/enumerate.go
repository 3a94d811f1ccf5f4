package ec

import (
	"context"

	"github.com/smartcontractkit/e256/internal/gf256"
	"golang.org/x/sync/errgroup"
)

const fieldSize = 1 << gf256.Degree

// satisfies reports whether y² + x·y = x³ + a·x² + b.
func satisfies(a, b, x, y gf256.Element) bool {
	return y.Mul(y.Add(x)).Equal(rhs(a, b, x))
}

// rhs returns x³ + a·x² + b = x²·(x + a) + b.
func rhs(a, b, x gf256.Element) gf256.Element {
	return x.Mul(x).Mul(x.Add(a)).Add(b)
}

// enumerate tests all 256 × 256 coordinate pairs against the curve equation. The x-range is split into one chunk per
// worker, each chunk collects its points locally, and the chunks are concatenated in order once all workers are done.
// The result is sorted by (x, y) and does not contain the identity.
func enumerate(ctx context.Context, a, b gf256.Element, workers int, m *metrics) ([]Point[gf256.Element], error) {
	workers = min(workers, fieldSize)
	chunkSize := (fieldSize + workers - 1) / workers
	chunks := make([][]Point[gf256.Element], (fieldSize+chunkSize-1)/chunkSize)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range chunks {
		g.Go(func() error {
			start, end := i*chunkSize, min((i+1)*chunkSize, fieldSize)
			var local []Point[gf256.Element]
			for xᵢ := start; xᵢ < end; xᵢ++ {
				if err := ctx.Err(); err != nil {
					return err
				}

				x := gf256.FromByte(byte(xᵢ))
				r := rhs(a, b, x)
				for yᵢ := 0; yᵢ < fieldSize; yᵢ++ {
					y := gf256.FromByte(byte(yᵢ))
					if y.Mul(y.Add(x)).Equal(r) {
						local = append(local, NewPoint(x, y))
					}
				}
				m.candidatesTested.Add(fieldSize)
			}
			chunks[i] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var points []Point[gf256.Element]
	for _, chunk := range chunks {
		points = append(points, chunk...)
	}
	return points, nil
}
