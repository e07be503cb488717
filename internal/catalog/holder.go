package catalog

import (
	"fmt"
	"sync"

	"netsize-service/internal/sizing/model"
)

type State string

const (
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateFailed  State = "failed"
)

// Holder — контейнер для каталога, который грузится асинхронно при старте.
// Устанавливается ровно один раз: Set или Fail; повторные вызовы игнорируются.
type Holder struct {
	mu  sync.RWMutex
	cat *Catalog
	err error
	set bool
}

func NewHolder() *Holder { return &Holder{} }

// Set публикует загруженный каталог. false — если Holder уже был установлен.
func (h *Holder) Set(c *Catalog) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.set {
		return false
	}
	h.cat, h.set = c, true
	return true
}

// Fail фиксирует ошибку загрузки.
func (h *Holder) Fail(err error) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.set {
		return false
	}
	h.err, h.set = err, true
	return true
}

// Get возвращает каталог или nil, пока он не загружен.
func (h *Holder) Get() *Catalog {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cat
}

// Require — Get с ошибкой model.ErrCatalogUnavailable вместо nil.
func (h *Holder) Require() (*Catalog, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	switch {
	case h.cat != nil:
		return h.cat, nil
	case h.err != nil:
		return nil, fmt.Errorf("%w: %v", model.ErrCatalogUnavailable, h.err)
	default:
		return nil, fmt.Errorf("%w: still loading", model.ErrCatalogUnavailable)
	}
}

func (h *Holder) State() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	switch {
	case h.cat != nil:
		return StateLoaded
	case h.err != nil:
		return StateFailed
	default:
		return StateLoading
	}
}
