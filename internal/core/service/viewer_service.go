package service

import (
	"context"
	"errors"
	"log"

	"golang.org/x/sync/singleflight"

	"github.com/audiophile/storefront/internal/core/domain"
	"github.com/audiophile/storefront/internal/port"
)

type ViewState string

const (
	ViewLoading  ViewState = "loading"
	ViewFound    ViewState = "found"
	ViewNotFound ViewState = "notFound"
)

// OrderView is one observable state of a lookup. Order is set only for
// ViewFound.
type OrderView struct {
	State ViewState
	Order *domain.Order
}

// ViewerService resolves a business order id for display. Lookups go
// cache-first, fall back to the repository, and warm the cache on a miss.
type ViewerService struct {
	repo  port.OrderRepository
	cache port.OrderCache
	sfg   singleflight.Group
}

func NewViewerService(repo port.OrderRepository, cache port.OrderCache) *ViewerService {
	return &ViewerService{repo: repo, cache: cache}
}

// Observe emits ViewLoading immediately, then exactly one terminal state
// (ViewFound or ViewNotFound), then closes the channel. "Not found" is a
// valid outcome, not an error; repository failures also resolve to
// ViewNotFound after being logged. Cancel via ctx when the consuming view
// goes away.
func (s *ViewerService) Observe(ctx context.Context, orderID string) <-chan OrderView {
	ch := make(chan OrderView, 2)

	go func() {
		defer close(ch)

		ch <- OrderView{State: ViewLoading}

		order, err := s.Get(ctx, orderID)
		view := OrderView{State: ViewNotFound}
		if err == nil {
			view = OrderView{State: ViewFound, Order: order}
		} else if !errors.Is(err, port.ErrOrderNotFound) {
			log.Printf("order lookup %s: %v", orderID, err)
		}

		select {
		case ch <- view:
		case <-ctx.Done():
		}
	}()

	return ch
}

// Get resolves an order synchronously, deduplicating concurrent lookups of
// the same id.
func (s *ViewerService) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	v, err, _ := s.sfg.Do(orderID, func() (interface{}, error) {
		order, err := s.cache.Get(ctx, orderID)
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, port.ErrCacheMiss) {
			log.Printf("order cache get: %v", err)
		}

		order, err = s.repo.GetByOrderID(ctx, orderID)
		if err != nil {
			return nil, err
		}

		go func() {
			if err := s.cache.Set(context.Background(), orderID, order); err != nil {
				log.Printf("order cache set: %v", err)
			}
		}()

		return order, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Order), nil
}
