package domain

import (
	"io"
	"sync/atomic"
)

// ProgressFunc receives the bytes sent so far and the expected total (0 if unknown).
type ProgressFunc func(sent, total int64)

// ProgressReader counts the bytes read through it and reports them.
type ProgressReader struct {
	r     io.Reader
	total int64
	sent  atomic.Int64
	fn    ProgressFunc
}

// NewProgressReader wraps r. fn may be nil.
func NewProgressReader(r io.Reader, total int64, fn ProgressFunc) *ProgressReader {
	return &ProgressReader{r: r, total: total, fn: fn}
}

func (p *ProgressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		sent := p.sent.Add(int64(n))
		if p.fn != nil {
			p.fn(sent, p.total)
		}
	}
	return n, err
}

// Sent returns the bytes read so far.
func (p *ProgressReader) Sent() int64 {
	return p.sent.Load()
}

// Percent converts a progress report to a whole percentage capped at 100.
// An unknown total reports 0.
func Percent(sent, total int64) int {
	if total <= 0 {
		return 0
	}
	if sent >= total {
		return 100
	}
	return int(sent * 100 / total)
}
