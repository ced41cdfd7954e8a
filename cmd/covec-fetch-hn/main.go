// covec-fetch-hn downloads Hacker News stories into a covec corpus
// database. The pipeline itself never fetches; this is the host-side
// corpus acquisition step.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/cognicore/covec/internal/hn"
	"github.com/cognicore/covec/pkg/covec/corpus"
	"github.com/cognicore/covec/pkg/covec/store/sqlite"
)

func main() {
	var (
		dbPath = flag.String("db", "", "Corpus database path (required)")
		count  = flag.Int("count", 100, "Number of top stories to fetch")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}
	defer st.Close()

	client := hn.NewClient()

	log.Printf("Downloading top %d Hacker News stories...", *count)

	storyIDs, err := client.TopStories(ctx)
	if err != nil {
		log.Fatal("Failed to get top stories:", err)
	}
	if *count < len(storyIDs) {
		storyIDs = storyIDs[:*count]
	}

	downloaded := 0
	for _, id := range storyIDs {
		item, err := client.Item(ctx, id)
		if err != nil {
			log.Printf("Failed to get item %d: %v", id, err)
			continue
		}

		// Only stories carry usable text
		if item.Type != "story" || item.Title == "" {
			continue
		}

		text := item.Title
		if item.Text != "" {
			text += ". " + corpus.Normalize(item.Text)
		}

		if _, err := st.AddDoc(ctx, item.Title, text); err != nil {
			log.Printf("Failed to store item %d: %v", id, err)
			continue
		}

		downloaded++
		if downloaded%10 == 0 {
			log.Printf("Downloaded %d/%d stories...", downloaded, len(storyIDs))
		}

		// Be nice to the API
		time.Sleep(50 * time.Millisecond)
	}

	log.Printf("Stored %d stories in %s", downloaded, *dbPath)
}
