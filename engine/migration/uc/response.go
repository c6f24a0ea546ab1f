package uc

import "time"

// ConversionResponse is the outcome summary of one migration invocation.
// It is produced once per run and immutable after return; the core never
// lets a migration crash its host, so failures also arrive in this shape.
type ConversionResponse struct {
	Success          bool     `json:"success"`
	Message          string   `json:"message"`
	ProcessedCount   int      `json:"processedCount"`
	ErrorCount       int      `json:"errorCount"`
	Errors           []string `json:"errors"`
	ProcessingTimeMs int64    `json:"processingTimeMs"`
}

func newResponse() *ConversionResponse {
	return &ConversionResponse{Errors: []string{}}
}

// finish stamps the elapsed wall-clock duration; every branch goes through it.
func (r *ConversionResponse) finish(start time.Time) *ConversionResponse {
	r.ProcessingTimeMs = time.Since(start).Milliseconds()
	return r
}
