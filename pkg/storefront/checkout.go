package storefront

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Status is the order submission lifecycle. There is no failed state: a
// failed submission notifies the user and falls back to idle with the
// basket intact, so they can retry without retyping anything.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
)

// DefaultSuccessDisplay is how long the confirmation screen stays up before
// the machine returns to idle and the basket view closes.
const DefaultSuccessDisplay = 3 * time.Second

// Checkout turns a basket into a submitted order. The basket is cleared
// exactly once, on confirmed success, and never on failure.
type Checkout struct {
	mu             sync.Mutex
	client         *Client
	basket         *Basket
	notify         Notifier
	status         Status
	customerName   string
	customerPhone  string
	basketOpen     bool
	successDisplay time.Duration
}

func NewCheckout(client *Client, basket *Basket, notify Notifier) *Checkout {
	return &Checkout{
		client:         client,
		basket:         basket,
		notify:         notify,
		status:         StatusIdle,
		successDisplay: DefaultSuccessDisplay,
	}
}

// SetSuccessDisplay overrides the confirmation screen duration.
func (c *Checkout) SetSuccessDisplay(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.successDisplay = d
}

func (c *Checkout) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *Checkout) SetCustomerName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customerName = name
}

func (c *Checkout) SetCustomerPhone(phone string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customerPhone = phone
}

func (c *Checkout) CustomerName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.customerName
}

func (c *Checkout) CustomerPhone() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.customerPhone
}

func (c *Checkout) OpenBasket() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.basketOpen = true
}

// CloseBasket is a no-op unless the machine is idle, so the confirmation
// screen cannot be dismissed mid-flight.
func (c *Checkout) CloseBasket() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status == StatusIdle {
		c.basketOpen = false
	}
}

func (c *Checkout) BasketOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.basketOpen
}

// Submit runs the confirm action. Guards: ignored while submitting, a no-op
// on an empty basket, and rejected with a notice when the customer name or
// phone is blank. A transport failure notifies and resets to idle with
// basket and fields preserved.
func (c *Checkout) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.status == StatusSubmitting {
		c.mu.Unlock()
		return nil
	}
	if c.basket.Len() == 0 {
		c.mu.Unlock()
		return nil
	}
	if strings.TrimSpace(c.customerName) == "" || strings.TrimSpace(c.customerPhone) == "" {
		c.mu.Unlock()
		c.notify.Notify("Iltimos, ismingiz va telefon raqamingizni kiriting!")
		return nil
	}

	order := Order{
		CustomerName:  c.customerName,
		CustomerPhone: c.customerPhone,
		Total:         c.basket.Total(),
		Date:          time.Now().Format("02/01/2006, 15:04:05"),
	}
	for _, line := range c.basket.Lines() {
		order.Items = append(order.Items, OrderItem{
			Title:    line.Title,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}

	c.status = StatusSubmitting
	c.mu.Unlock()

	_, err := c.client.CreateOrder(ctx, order)

	c.mu.Lock()
	if err != nil {
		c.status = StatusIdle
		c.mu.Unlock()
		c.notify.Notify("Xatolik!")
		return err
	}

	c.status = StatusSuccess
	c.customerName = ""
	c.customerPhone = ""
	delay := c.successDisplay
	c.mu.Unlock()

	c.basket.Clear()

	time.AfterFunc(delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.status == StatusSuccess {
			c.status = StatusIdle
			c.basketOpen = false
		}
	})
	return nil
}
