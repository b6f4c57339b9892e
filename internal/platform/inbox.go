package platform

import "sync"

// LoadResult is one finished background load: the parsed rows or the error,
// plus the source path.
type LoadResult struct {
	Path string
	Rows [][]string
	Err  error
}

// Inbox is a single-slot mailbox between background loaders and the frame
// loop. Deposit overwrites any undelivered result; the frame loop polls with
// Take once per update and never blocks.
type Inbox struct {
	mu     sync.Mutex
	result LoadResult
	full   bool
}

// Deposit places a result in the slot, replacing an unclaimed one.
func (in *Inbox) Deposit(res LoadResult) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.result = res
	in.full = true
}

// Take removes and returns the pending result, if any.
func (in *Inbox) Take() (LoadResult, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if !in.full {
		return LoadResult{}, false
	}
	res := in.result
	in.result = LoadResult{}
	in.full = false
	return res, true
}
