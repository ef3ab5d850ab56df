package ranker

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"namesim/internal/errs"
	"namesim/internal/logging"
	"namesim/internal/scan"
	"namesim/internal/similarity"
)

// Result is one qualifying pair. PathA sorts before PathB so a pair has a
// single canonical orientation and is never emitted twice.
type Result struct {
	PathA        string  `json:"path_a"`
	PathB        string  `json:"path_b"`
	Score        float64 `json:"score"`
	CombinedSize int64   `json:"combined_size"`
}

// Options controls ranking behavior.
type Options struct {
	// Threshold excludes pairs scoring at or below it. Zero reports every
	// pair with any overlap at all.
	Threshold float64
	// NGram is the shingle length applied to name tokens, 1..4.
	NGram int
	// Weighting selects the vectorization scheme.
	Weighting similarity.Weighting
	// TopK caps how many pairs any single file may appear in. Zero means
	// unlimited.
	TopK int
	// Workers sets the scoring fan-out. Values below 2 keep scoring
	// sequential.
	Workers int
	// Progress, when set, is called after each entry's pair row completes.
	Progress func(done, total int)
	Logger   *slog.Logger
}

func (o Options) validate() error {
	if o.Threshold < 0 || o.Threshold >= 1 {
		return errs.Wrap(errs.ErrConfiguration, "ranker", "options",
			fmt.Sprintf("threshold %v outside [0, 1)", o.Threshold), nil)
	}
	if o.NGram < 1 || o.NGram > similarity.MaxShingleSize {
		return errs.Wrap(errs.ErrConfiguration, "ranker", "options",
			fmt.Sprintf("ngram %d outside 1..%d", o.NGram, similarity.MaxShingleSize), nil)
	}
	if o.TopK < 0 {
		return errs.Wrap(errs.ErrConfiguration, "ranker", "options",
			fmt.Sprintf("top-k %d is negative", o.TopK), nil)
	}
	return nil
}

// Rank vectorizes entries and returns every pair scoring strictly above the
// threshold, sorted by descending score with lexicographic (PathA, PathB)
// tie-breaking. Empty or single-entry input yields an empty, nil-error
// result.
func Rank(ctx context.Context, entries []scan.Entry, opts Options) ([]Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	logger := logging.WithComponent(opts.Logger, "ranker")

	if len(entries) < 2 {
		return []Result{}, nil
	}

	vectors := buildVectors(entries, opts)
	logger.Info("scoring pairs",
		logging.Int("entries", len(entries)),
		logging.Float64("threshold", opts.Threshold),
		logging.Int("ngram", opts.NGram),
		logging.String("weighting", string(opts.Weighting)),
	)

	results, err := scorePairs(ctx, entries, vectors, opts)
	if err != nil {
		return nil, err
	}

	sortResults(results)
	if opts.TopK > 0 {
		results = capPerFile(results, opts.TopK)
	}
	logger.Info("ranking complete", logging.Int("pairs", len(results)))
	return results, nil
}

func buildVectors(entries []scan.Entry, opts Options) []*similarity.Vector {
	vectors := make([]*similarity.Vector, len(entries))
	for i, entry := range entries {
		terms := similarity.Shingles(similarity.Tokenize(entry.Name), opts.NGram)
		vectors[i] = similarity.NewVector(terms, opts.Weighting)
	}
	if opts.Weighting == similarity.WeightingTFIDF {
		idf := similarity.IDFWeights(vectors)
		for i, v := range vectors {
			vectors[i] = v.WithIDF(idf)
		}
	}
	return vectors
}

func scorePairs(ctx context.Context, entries []scan.Entry, vectors []*similarity.Vector, opts Options) ([]Result, error) {
	if opts.Workers > 1 {
		return scorePairsParallel(ctx, entries, vectors, opts)
	}

	results := make([]Result, 0, len(entries))
	for i := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results = appendRow(results, entries, vectors, i, opts)
		if opts.Progress != nil {
			opts.Progress(i+1, len(entries))
		}
	}
	return results, nil
}

func scorePairsParallel(ctx context.Context, entries []scan.Entry, vectors []*similarity.Vector, opts Options) ([]Result, error) {
	workers := opts.Workers
	if workers > len(entries) {
		workers = len(entries)
	}

	var (
		wg      sync.WaitGroup
		done    atomic.Int64
		rows    = make(chan int)
		partial = make([][]Result, workers)
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := range rows {
				partial[w] = appendRow(partial[w], entries, vectors, i, opts)
				if opts.Progress != nil {
					opts.Progress(int(done.Add(1)), len(entries))
				}
			}
		}(w)
	}

	var ctxErr error
feed:
	for i := range entries {
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break feed
		case rows <- i:
		}
	}
	close(rows)
	wg.Wait()

	if ctxErr != nil {
		return nil, ctxErr
	}
	var results []Result
	for _, part := range partial {
		results = append(results, part...)
	}
	if results == nil {
		results = []Result{}
	}
	return results, nil
}

// appendRow scores entry i against every earlier entry, keeping the pair
// generation strictly lower-triangular so each unordered pair is scored once.
func appendRow(results []Result, entries []scan.Entry, vectors []*similarity.Vector, i int, opts Options) []Result {
	for j := 0; j < i; j++ {
		score := similarity.Cosine(vectors[i], vectors[j])
		if score <= opts.Threshold {
			continue
		}
		a, b := entries[j], entries[i]
		if b.Path < a.Path {
			a, b = b, a
		}
		results = append(results, Result{
			PathA:        a.Path,
			PathB:        b.Path,
			Score:        score,
			CombinedSize: a.Size + b.Size,
		})
	}
	return results
}

func sortResults(results []Result) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if results[i].PathA != results[j].PathA {
			return results[i].PathA < results[j].PathA
		}
		return results[i].PathB < results[j].PathB
	})
}

// capPerFile keeps each file in at most k pairs, walking the already-sorted
// results so every file retains its best matches.
func capPerFile(results []Result, k int) []Result {
	counts := make(map[string]int)
	kept := results[:0]
	for _, r := range results {
		if counts[r.PathA] >= k || counts[r.PathB] >= k {
			continue
		}
		counts[r.PathA]++
		counts[r.PathB]++
		kept = append(kept, r)
	}
	return kept
}
