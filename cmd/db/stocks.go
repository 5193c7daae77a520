package db

import (
	"context"
	"maps"
	"sync"

	"golang.org/x/sync/singleflight"
)

func newStocks() stocks {
	return stocks{ids: make(map[string]uint32, 0)}
}

// stocks maps symbols to their ids in repo. Concurrent callers asking for the
// same unknown symbol get one genStockId call.
type stocks struct {
	ids   map[string]uint32
	group singleflight.Group
	mu    sync.RWMutex
}

func (self *stocks) Preload(ids map[string]uint32) {
	self.mu.Lock()
	defer self.mu.Unlock()
	maps.Copy(self.ids, ids)
}

func (self *stocks) Len() int {
	self.mu.RLock()
	defer self.mu.RUnlock()
	return len(self.ids)
}

func (self *stocks) Id(ctx context.Context, symbol string,
	genStockId func() (uint32, error),
) (uint32, error) {
	if id, ok := self.knownStock(symbol); ok {
		return id, nil
	}
	return self.createStock(ctx, symbol, genStockId)
}

func (self *stocks) knownStock(symbol string) (id uint32, ok bool) {
	self.mu.RLock()
	defer self.mu.RUnlock()
	id, ok = self.ids[symbol]
	return
}

func (self *stocks) createStock(ctx context.Context, symbol string,
	genStockId func() (uint32, error),
) (uint32, error) {
	ch := self.group.DoChan(symbol, func() (interface{}, error) {
		if id, ok := self.knownStock(symbol); ok {
			return id, nil
		}

		id, err := genStockId()
		if err != nil {
			return 0, err
		}

		self.mu.Lock()
		defer self.mu.Unlock()
		self.ids[symbol] = id
		return id, nil
	})

	select {
	case <-ctx.Done():
		return 0, context.Cause(ctx) //nolint:wrapcheck // caller wraps it
	case r := <-ch:
		if r.Err != nil {
			return 0, r.Err //nolint:wrapcheck // wrapped inside genStockId
		}
		return r.Val.(uint32), nil
	}
}
