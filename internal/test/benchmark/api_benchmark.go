// Package benchmark drives concurrent load against the PropertyOps API and
// summarises latency and status codes.
package benchmark

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"time"
)

// APIBenchmark fires Requests calls at BaseURL with at most Concurrency in flight.
type APIBenchmark struct {
	BaseURL     string
	Concurrency int
	Requests    int
	Client      *http.Client
}

// BenchmarkResult summarises one run.
type BenchmarkResult struct {
	URL            string        `json:"url"`
	Method         string        `json:"method"`
	Concurrency    int           `json:"concurrency"`
	TotalRequests  int           `json:"total_requests"`
	SuccessCount   int           `json:"success_count"`
	FailureCount   int           `json:"failure_count"`
	TotalTime      time.Duration `json:"total_time"`
	AverageTime    time.Duration `json:"average_time"`
	MinTime        time.Duration `json:"min_time"`
	MaxTime        time.Duration `json:"max_time"`
	RequestsPerSec float64       `json:"requests_per_sec"`
	StatusCodes    map[int]int   `json:"status_codes"`
	Errors         []string      `json:"errors"`
}

// RequestResult is the outcome of a single call.
type RequestResult struct {
	Duration   time.Duration
	StatusCode int
	Error      error
}

// NewAPIBenchmark builds a runner with a 10 second client timeout.
func NewAPIBenchmark(baseURL string, concurrency, requests int) *APIBenchmark {
	if concurrency < 1 {
		concurrency = 1
	}
	return &APIBenchmark{
		BaseURL:     baseURL,
		Concurrency: concurrency,
		Requests:    requests,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// RunGET benchmarks GET path.
func (b *APIBenchmark) RunGET(path string) *BenchmarkResult {
	return b.runTest(http.MethodGet, b.BaseURL+path, nil)
}

// RunPOST benchmarks POST path with payload encoded as JSON.
func (b *APIBenchmark) RunPOST(path string, payload interface{}) *BenchmarkResult {
	return b.runJSON(http.MethodPost, path, payload)
}

// RunPATCH benchmarks PATCH path with payload encoded as JSON.
func (b *APIBenchmark) RunPATCH(path string, payload interface{}) *BenchmarkResult {
	return b.runJSON(http.MethodPatch, path, payload)
}

// RunDELETE benchmarks DELETE path.
func (b *APIBenchmark) RunDELETE(path string) *BenchmarkResult {
	return b.runTest(http.MethodDelete, b.BaseURL+path, nil)
}

func (b *APIBenchmark) runJSON(method, path string, payload interface{}) *BenchmarkResult {
	url := b.BaseURL + path
	body, err := json.Marshal(payload)
	if err != nil {
		return &BenchmarkResult{
			URL:    url,
			Method: method,
			Errors: []string{fmt.Sprintf("encode payload: %v", err)},
		}
	}
	return b.runTest(method, url, body)
}

func (b *APIBenchmark) runTest(method, url string, payload []byte) *BenchmarkResult {
	results := make(chan RequestResult, b.Requests)
	var wg sync.WaitGroup
	limiter := make(chan struct{}, b.Concurrency)

	startTime := time.Now()

	for i := 0; i < b.Requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			limiter <- struct{}{}
			defer func() { <-limiter }()

			results <- b.send(method, url, payload)
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	result := &BenchmarkResult{
		URL:           url,
		Method:        method,
		Concurrency:   b.Concurrency,
		TotalRequests: b.Requests,
		StatusCodes:   make(map[int]int),
	}

	var totalTime time.Duration
	completed := 0
	for r := range results {
		if r.Error != nil {
			result.FailureCount++
			result.Errors = append(result.Errors, r.Error.Error())
			continue
		}

		completed++
		totalTime += r.Duration
		if result.MinTime == 0 || r.Duration < result.MinTime {
			result.MinTime = r.Duration
		}
		if r.Duration > result.MaxTime {
			result.MaxTime = r.Duration
		}

		result.StatusCodes[r.StatusCode]++
		if r.StatusCode >= 200 && r.StatusCode < 300 {
			result.SuccessCount++
		} else {
			result.FailureCount++
		}
	}

	result.TotalTime = time.Since(startTime)
	if result.TotalTime > 0 {
		result.RequestsPerSec = float64(b.Requests) / result.TotalTime.Seconds()
	}
	if completed > 0 {
		result.AverageTime = totalTime / time.Duration(completed)
	}
	return result
}

func (b *APIBenchmark) send(method, url string, payload []byte) RequestResult {
	start := time.Now()
	req, err := http.NewRequest(method, url, bytes.NewReader(payload))
	if err != nil {
		return RequestResult{Error: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := b.Client.Do(req)
	if err != nil {
		return RequestResult{Error: err}
	}
	defer resp.Body.Close()
	// Drain so the connection is reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	return RequestResult{
		Duration:   time.Since(start),
		StatusCode: resp.StatusCode,
	}
}

// SuccessRate returns the share of 2xx responses as a percentage.
func (r *BenchmarkResult) SuccessRate() float64 {
	if r.TotalRequests == 0 {
		return 0
	}
	return float64(r.SuccessCount) / float64(r.TotalRequests) * 100
}

// PrintResult writes a human readable summary to w.
func (r *BenchmarkResult) PrintResult(w io.Writer) {
	fmt.Fprintf(w, "Benchmark: %s %s\n", r.Method, r.URL)
	fmt.Fprintf(w, "  concurrency:   %d\n", r.Concurrency)
	fmt.Fprintf(w, "  requests:      %d (ok %d, failed %d)\n", r.TotalRequests, r.SuccessCount, r.FailureCount)
	fmt.Fprintf(w, "  total time:    %s\n", r.TotalTime)
	fmt.Fprintf(w, "  latency:       avg %s, min %s, max %s\n", r.AverageTime, r.MinTime, r.MaxTime)
	fmt.Fprintf(w, "  throughput:    %.2f req/s\n", r.RequestsPerSec)

	codes := make([]int, 0, len(r.StatusCodes))
	for code := range r.StatusCodes {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		fmt.Fprintf(w, "  status %d:    %d\n", code, r.StatusCodes[code])
	}

	for i, err := range r.Errors {
		if i >= 5 {
			fmt.Fprintf(w, "  ... %d more errors\n", len(r.Errors)-5)
			break
		}
		fmt.Fprintf(w, "  error: %s\n", err)
	}
}
