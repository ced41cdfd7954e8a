// covec-train runs the full training pipeline over a corpus database
// and persists the resulting vector model.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/cognicore/covec/pkg/covec"
	"github.com/cognicore/covec/pkg/covec/config"
	"github.com/cognicore/covec/pkg/covec/ingest"
	"github.com/cognicore/covec/pkg/covec/store/sqlite"
)

// applyOverrides layers positive flag values over the loaded config.
// Zero means the flag was not set and the config value stands.
func applyOverrides(cfg config.Config, window, minCount, dims, maxIter int) config.Config {
	if window > 0 {
		cfg.WindowSize = window
	}
	if minCount > 0 {
		cfg.MinWordCount = minCount
	}
	if dims > 0 {
		cfg.NumDimensions = dims
	}
	if maxIter > 0 {
		cfg.MaxIterations = maxIter
	}
	return cfg
}

func main() {
	var (
		dbPath     = flag.String("db", "", "Corpus database path (required)")
		configPath = flag.String("config", "", "Training config YAML (optional)")
		windowSize = flag.Int("window", 0, "Override window_size")
		minCount   = flag.Int("min-count", 0, "Override min_word_count")
		dims       = flag.Int("dims", 0, "Override num_dimensions")
		maxIter    = flag.Int("max-iter", 0, "Override max_iterations")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal("Failed to load config:", err)
		}
		cfg = loaded
	}
	cfg = applyOverrides(cfg, *windowSize, *minCount, *dims, *maxIter)

	var stopwords []string
	if cfg.StoplistPath != "" {
		sl, err := config.LoadStoplist(cfg.StoplistPath)
		if err != nil {
			log.Fatal("Failed to load stoplist:", err)
		}
		stopwords = sl.Terms
	}

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}
	defer st.Close()

	cv := covec.New(covec.Options{
		Store:     st,
		Tokenizer: ingest.NewTokenizer(stopwords),
		Config:    cfg,
	})

	log.Printf("Training: window=%d min_count=%d dims=%d max_iter=%d",
		cfg.WindowSize, cfg.MinWordCount, cfg.NumDimensions, cfg.MaxIterations)

	result, err := cv.Train(ctx)
	if err != nil {
		log.Fatal("Training failed:", err)
	}

	r := result.Report
	log.Printf("Corpus: %d docs, %d tokens, vocabulary %d -> %d after floor",
		r.Docs, r.Tokens, r.VocabBefore, r.VocabAfter)
	log.Printf("Windows: %d built, %d dropped by membership check", r.Windows, r.DroppedWindows)
	log.Printf("Pairs: %d distinct co-occurring pairs", r.Pairs)
	if r.SVDConverged {
		log.Printf("SVD converged after %d iterations", r.SVDIterations)
	} else {
		log.Printf("SVD hit the iteration cap (%d); keeping best approximation", r.SVDIterations)
	}

	if err := cv.SaveModel(ctx, result.Model); err != nil {
		log.Fatal("Failed to save model:", err)
	}

	log.Printf("Saved model %s (%d words x %d dims)",
		result.Model.ID(), len(result.Model.Words()), result.Model.Dimensions())
}
