package chain

import (
	"context"
	"sync"
)

// Submission pins the nonce of one logical ledger write so that every
// retry signs a replacement of the same transaction instead of a new one.
// OnSign, when set, persists the nonce and hash before the transaction is
// broadcast; a failing OnSign aborts the broadcast.
type Submission struct {
	mu     sync.Mutex
	nonce  *uint64
	hashes []string
	onSign func(nonce uint64, hash string) error
}

// NewSubmission returns a submission resumed from a stored nonce and hash.
// Both may be empty for a first attempt.
func NewSubmission(nonce *uint64, hash string, onSign func(nonce uint64, hash string) error) *Submission {
	s := &Submission{onSign: onSign}
	if nonce != nil {
		n := *nonce
		s.nonce = &n
	}
	if hash != "" {
		s.hashes = []string{hash}
	}
	return s
}

type submissionKey struct{}

// WithSubmission attaches s to ctx.
func WithSubmission(ctx context.Context, s *Submission) context.Context {
	return context.WithValue(ctx, submissionKey{}, s)
}

// SubmissionFromContext returns the submission attached to ctx, or nil.
func SubmissionFromContext(ctx context.Context) *Submission {
	s, _ := ctx.Value(submissionKey{}).(*Submission)
	return s
}

// Nonce returns the pinned nonce.
func (s *Submission) Nonce() (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nonce == nil {
		return 0, false
	}
	return *s.nonce, true
}

// Hashes returns every hash signed for the pinned nonce, oldest first.
func (s *Submission) Hashes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.hashes...)
}

// record pins nonce and remembers hash, then runs the OnSign hook.
func (s *Submission) record(nonce uint64, hash string) error {
	s.mu.Lock()
	if s.nonce == nil || *s.nonce != nonce {
		n := nonce
		s.nonce = &n
		s.hashes = nil
	}
	s.hashes = append(s.hashes, hash)
	onSign := s.onSign
	s.mu.Unlock()

	if onSign != nil {
		return onSign(nonce, hash)
	}
	return nil
}

// restore drops hash after the node refused to let it replace an earlier
// transaction, and makes the previous hash current again. It returns ""
// when no earlier hash is known.
func (s *Submission) restore(hash string) (string, error) {
	s.mu.Lock()
	if n := len(s.hashes); n > 0 && s.hashes[n-1] == hash {
		s.hashes = s.hashes[:n-1]
	}
	var prev string
	if n := len(s.hashes); n > 0 {
		prev = s.hashes[n-1]
	}
	pinned := s.nonce != nil
	var nonce uint64
	if pinned {
		nonce = *s.nonce
	}
	onSign := s.onSign
	s.mu.Unlock()

	if prev == "" || !pinned || onSign == nil {
		return prev, nil
	}
	return prev, onSign(nonce, prev)
}

// reset unpins the nonce after it was consumed by a transaction this
// submission never signed.
func (s *Submission) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nonce = nil
	s.hashes = nil
}
