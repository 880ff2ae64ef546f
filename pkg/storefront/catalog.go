package storefront

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"
)

// CategoryAll is the catch-all filter label shown first on the customer
// surface.
const CategoryAll = "Barchasi"

// Catalog holds the last successfully fetched menu and the category set
// derived from it. A failed refresh keeps the previous state: a stale menu
// beats an empty screen.
type Catalog struct {
	mu         sync.RWMutex
	client     *Client
	foods      []Food
	categories []string
}

func NewCatalog(client *Client) *Catalog {
	return &Catalog{
		client:     client,
		categories: []string{CategoryAll},
	}
}

// Refresh replaces the held menu wholesale; there is no merging. On failure
// the prior state survives and the error is only logged here. Polling
// callers ignore it, user-initiated callers may surface it.
func (c *Catalog) Refresh(ctx context.Context) error {
	foods, err := c.client.ListFoods(ctx)
	if err != nil {
		log.Printf("[catalog] refresh failed, keeping %d foods: %v", c.Len(), err)
		return err
	}

	c.mu.Lock()
	c.foods = foods
	c.categories = deriveCategories(foods)
	c.mu.Unlock()
	return nil
}

// StartPolling refreshes on a fixed interval until ctx is cancelled. The
// admin surface runs this at 5s; the customer surface fetches once and
// never polls.
func (c *Catalog) StartPolling(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_ = c.Refresh(ctx)
			}
		}
	}()
}

func (c *Catalog) Foods() []Food {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Food, len(c.foods))
	copy(out, c.foods)
	return out
}

func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.foods)
}

// Filter returns foods matching the selected category and a case-insensitive
// title search. CategoryAll (or "") matches every category.
func (c *Catalog) Filter(category, search string) []Food {
	c.mu.RLock()
	defer c.mu.RUnlock()

	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]Food, 0, len(c.foods))
	for _, food := range c.foods {
		if category != "" && category != CategoryAll && food.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(food.Title), search) {
			continue
		}
		out = append(out, food)
	}
	return out
}

// deriveCategories collects distinct category labels in first-seen order,
// always prefixed with the catch-all.
func deriveCategories(foods []Food) []string {
	categories := []string{CategoryAll}
	seen := map[string]struct{}{}
	for _, food := range foods {
		if _, ok := seen[food.Category]; ok {
			continue
		}
		seen[food.Category] = struct{}{}
		categories = append(categories, food.Category)
	}
	return categories
}
