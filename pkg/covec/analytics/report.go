// Package analytics collects corpus and training statistics as the
// pipeline runs.
package analytics

import "github.com/cognicore/covec/pkg/covec/ingest"

// Report summarizes one training run
type Report struct {
	Docs            int64 // documents read from the corpus store
	Tokens          int64 // tokens after tokenization, before the floor
	SurvivingTokens int64 // tokens after the frequency floor
	VocabBefore     int   // distinct words before the floor
	VocabAfter      int   // distinct words meeting the floor
	Windows         int64 // windows built
	DroppedWindows  int64 // windows failing the membership check
	Pairs           int   // distinct co-occurring word pairs
	SVDIterations   int
	SVDConverged    bool
	TopWords        []ingest.WordCount
}

// Collector accumulates a Report during training
type Collector struct {
	report Report
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{}
}

// Doc records one document and its raw token count.
func (c *Collector) Doc(tokens int) {
	c.report.Docs++
	c.report.Tokens += int64(tokens)
}

// Vocabulary records floor statistics once counting is complete.
func (c *Collector) Vocabulary(v *ingest.Vocabulary, topK int) {
	c.report.VocabBefore = v.TotalWords()
	c.report.VocabAfter = v.Size()
	c.report.TopWords = v.Top(topK)
}

// Surviving records one document's post-floor token count.
func (c *Collector) Surviving(tokens int) {
	c.report.SurvivingTokens += int64(tokens)
}

// Windows records window construction results.
func (c *Collector) Windows(built int, dropped int64) {
	c.report.Windows = int64(built)
	c.report.DroppedWindows = dropped
}

// Pairs records the distinct co-occurring pair count.
func (c *Collector) Pairs(n int) {
	c.report.Pairs = n
}

// SVD records solver outcome.
func (c *Collector) SVD(iterations int, converged bool) {
	c.report.SVDIterations = iterations
	c.report.SVDConverged = converged
}

// Report returns the collected statistics
func (c *Collector) Report() Report {
	return c.report
}
