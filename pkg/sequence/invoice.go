// Package sequence provides the invoice-number generator: a process-wide
// monotonic counter rendered as PREFIX/YYMM/NNNN. Numbers are unique within a
// single process lifetime only; there is no collision detection across
// restarts.
package sequence

import (
	"fmt"
	"sync"
	"time"
)

// InvoiceCounter issues strictly increasing invoice numbers. The zero value
// is not usable; construct with NewInvoiceCounter. The counter is owned state
// injected into the billing layer, never a package-level variable, so tests
// can build their own with a fixed clock.
type InvoiceCounter struct {
	mu     sync.Mutex
	prefix string
	last   int64
	now    func() time.Time
}

// NewInvoiceCounter builds a counter starting at zero.
func NewInvoiceCounter(prefix string) *InvoiceCounter {
	return &InvoiceCounter{prefix: prefix, now: time.Now}
}

// NewInvoiceCounterAt is NewInvoiceCounter with an injected clock.
func NewInvoiceCounterAt(prefix string, now func() time.Time) *InvoiceCounter {
	return &InvoiceCounter{prefix: prefix, now: now}
}

// Next returns the next invoice number, e.g. INV/2608/0001 for the first
// invoice issued in August 2026. The sequence part is zero-padded to four
// digits and never resets, so numbers within the same year/month are
// lexicographically increasing.
func (c *InvoiceCounter) Next() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last++
	return fmt.Sprintf("%s/%s/%04d", c.prefix, c.now().Format("0601"), c.last)
}
