package classifier

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"conversational-todo/pkg/log"
)

// DefaultCacheSize bounds the classification result cache.
const DefaultCacheSize = 512

// Classifier is a rule-based intent classifier. The pattern tables are
// read-only after construction, so a single instance is safe for unlimited
// concurrent readers.
type Classifier struct {
	l     log.Logger
	cache *lru.Cache[string, Result]
}

// New creates a Classifier. Classification is a pure function of its input,
// so results are memoized in a bounded LRU keyed by the raw text.
func New(l log.Logger, cacheSize int) *Classifier {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	// lru.New only fails for a non-positive size, which is excluded above.
	cache, _ := lru.New[string, Result](cacheSize)

	return &Classifier{l: l, cache: cache}
}

// SupportedIntents lists every intent the classifier can produce.
func SupportedIntents() []Intent {
	return []Intent{IntentCreateTodo, IntentUpdateTodo, IntentDeleteTodo, IntentQueryTodos, IntentUnknown}
}
