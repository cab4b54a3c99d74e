package quickcodes

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Request is one item of a batch.
type Request struct {
	Symbology Symbology
	Data      string
	Config    *RenderConfig
}

// Result pairs a batch item with its outcome. Exactly one of Barcode and Err
// is set.
type Result struct {
	Barcode *Barcode
	Err     error
}

// EncodeAll encodes every request using at most limit goroutines; limit <= 0
// means GOMAXPROCS. Results are returned in request order and per-item
// failures are reported in Result.Err. The returned error is non-nil only
// when ctx is done before every request was encoded; the requests it cut
// off carry that error in Result.Err.
func EncodeAll(ctx context.Context, reqs []Request, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	started := 0
	for i := range reqs {
		if gctx.Err() != nil {
			break
		}
		started++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = Result{Err: err}
				return err
			}
			req := reqs[i]
			bc, err := Encode(req.Symbology, req.Data, req.Config)
			results[i] = Result{Barcode: bc, Err: err}
			return nil
		})
	}
	err := g.Wait()
	if started < len(reqs) {
		if err == nil {
			err = ctx.Err()
		}
		for i := started; i < len(reqs); i++ {
			results[i] = Result{Err: err}
		}
	}
	return results, err
}
