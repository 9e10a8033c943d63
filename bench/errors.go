package bench

import "fmt"

// ConnectError means the data source could not be reached or refused the
// session. It is raised before any batch is requested.
type ConnectError struct {
	Addr string
	Err  error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connect %s: %v", e.Addr, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// QueryError means the data source rejected the query before producing the
// first batch.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %q: %v", truncate(e.Query, 60), e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// StreamError means a pull failed mid-stream. Batch is the 1-based index of
// the batch that could not be produced. No retry, no partial salvage.
type StreamError struct {
	Batch int
	Err   error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("stream batch %d: %v", e.Batch, e.Err)
}

func (e *StreamError) Unwrap() error { return e.Err }

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
