// covec-query answers nearest-synonym and analogy queries against a
// persisted vector model.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/cognicore/covec/pkg/covec"
	"github.com/cognicore/covec/pkg/covec/config"
	"github.com/cognicore/covec/pkg/covec/store/sqlite"
)

func main() {
	var (
		dbPath  = flag.String("db", "", "Corpus database path (required)")
		modelID = flag.String("model", "", "Model id (default: latest)")
		near    = flag.String("near", "", "Rank nearest synonyms of a word")
		analogy = flag.String("analogy", "", "Analogy query as word1,word2,word3")
		topK    = flag.Int("k", 10, "Number of results")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}
	if *near == "" && *analogy == "" {
		log.Fatal("one of --near or --analogy required")
	}

	ctx := context.Background()

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}
	defer st.Close()

	cv := covec.New(covec.Options{Store: st, Config: config.Default()})

	model, err := cv.LoadModel(ctx, *modelID)
	if err != nil {
		log.Fatal("Failed to load model:", err)
	}

	switch {
	case *near != "":
		matches, err := model.NearestSynonyms(strings.ToLower(*near), *topK)
		if err != nil {
			log.Fatal("Query failed:", err)
		}
		for i, m := range matches {
			fmt.Printf("%2d. %-24s %.4f\n", i+1, m.Word, m.Score)
		}

	case *analogy != "":
		parts := strings.Split(*analogy, ",")
		if len(parts) != 3 {
			log.Fatal("--analogy expects word1,word2,word3")
		}
		for i := range parts {
			parts[i] = strings.ToLower(strings.TrimSpace(parts[i]))
		}
		matches, err := model.Analogy(parts[0], parts[1], parts[2], *topK)
		if err != nil {
			log.Fatal("Query failed:", err)
		}
		for i, m := range matches {
			fmt.Printf("%2d. %-24s %.4f\n", i+1, m.Word, m.Score)
		}
	}
}
