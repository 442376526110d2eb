package hashing

import "sync"

// ThreadSafeDuplicateDetector is a DuplicateDetector that several
// goroutines may share.
type ThreadSafeDuplicateDetector struct {
	mu sync.Mutex
	d  *DuplicateDetector
}

// NewThreadSafeDuplicateDetector takes the same arguments as
// NewDuplicateDetector.
func NewThreadSafeDuplicateDetector(exactMatch bool, maxCapacity int) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{d: NewDuplicateDetector(exactMatch, maxCapacity)}
}

// CheckAndAdd records sig and reports whether an equal signature was
// already recorded, as one step.
func (t *ThreadSafeDuplicateDetector) CheckAndAdd(sig GameSignature) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.d.CheckAndAdd(sig)
}

func (t *ThreadSafeDuplicateDetector) DuplicateCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.d.DuplicateCount()
}

func (t *ThreadSafeDuplicateDetector) UniqueCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.d.UniqueCount()
}
