package admin

import (
	"context"
	"time"

	"zsmenu/pkg/storefront"
)

// DefaultPollInterval matches the admin surface's 5 second refresh of both
// foods and orders. The customer surface deliberately does not poll.
const DefaultPollInterval = 5 * time.Second

// Panel composes the admin surface: the shared catalog, the order queue and
// the food editor.
type Panel struct {
	Catalog *storefront.Catalog
	Queue   *Queue
	Editor  *Editor
}

func NewPanel(client *storefront.Client, notify storefront.Notifier, confirm Confirm) *Panel {
	catalog := storefront.NewCatalog(client)
	return &Panel{
		Catalog: catalog,
		Queue:   NewQueue(client, notify),
		Editor:  NewEditor(client, catalog, notify, confirm),
	}
}

// Refresh loads both lists. Errors are already logged by the stores; a
// polling caller has nothing further to do with them.
func (p *Panel) Refresh(ctx context.Context) {
	_ = p.Catalog.Refresh(ctx)
	_ = p.Queue.Refresh(ctx)
}

// Run refreshes once immediately, then on a fixed interval until ctx is
// cancelled. It blocks; callers wanting background polling run it in a
// goroutine.
func (p *Panel) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	p.Refresh(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Refresh(ctx)
		}
	}
}
