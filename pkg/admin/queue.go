package admin

import (
	"context"
	"log"
	"sync"

	"zsmenu/pkg/storefront"
)

// Queue is the read-and-acknowledge view over remote orders. Acknowledging
// deletes the order; there is no intermediate "preparing" status and no
// undo.
type Queue struct {
	mu     sync.RWMutex
	client *storefront.Client
	notify storefront.Notifier
	orders []storefront.Order
}

func NewQueue(client *storefront.Client, notify storefront.Notifier) *Queue {
	return &Queue{client: client, notify: notify}
}

// Refresh replaces the order list wholesale. A failed fetch keeps the prior
// list and is only logged; the next poll cycle retries implicitly.
func (q *Queue) Refresh(ctx context.Context) error {
	orders, err := q.client.ListOrders(ctx)
	if err != nil {
		log.Printf("[orders] refresh failed, keeping %d orders: %v", q.Len(), err)
		return err
	}

	q.mu.Lock()
	q.orders = orders
	q.mu.Unlock()
	return nil
}

func (q *Queue) Orders() []storefront.Order {
	q.mu.RLock()
	defer q.mu.RUnlock()
	out := make([]storefront.Order, len(q.orders))
	copy(out, q.orders)
	return out
}

func (q *Queue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.orders)
}

// Acknowledge marks an order done by deleting it from the remote store,
// then refreshes the list.
func (q *Queue) Acknowledge(ctx context.Context, id string) error {
	if err := q.client.DeleteOrder(ctx, id); err != nil {
		q.notify.Notify("O'chirishda xato!")
		return err
	}

	_ = q.Refresh(ctx)
	return nil
}
