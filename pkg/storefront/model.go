package storefront

// Food is a menu entry as the remote catalog API serves it. IDs are opaque
// strings assigned by the store.
type Food struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
	Img      string `json:"img"`
	Time     string `json:"time"`
	Rating   string `json:"rating"`
}

// OrderItem is a snapshot of a basket line copied into an order at
// submission time. Later catalog edits do not touch it.
type OrderItem struct {
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

type Order struct {
	ID            string      `json:"id,omitempty"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	Items         []OrderItem `json:"items"`
	Total         int64       `json:"total"`
	Date          string      `json:"date"`
}

// Notifier carries user-visible notices (validation messages, transport
// failures) out of the state objects. A nil Notifier drops them.
type Notifier func(message string)

// Notify is nil-safe so components can run without a notifier wired in.
func (n Notifier) Notify(message string) {
	if n != nil {
		n(message)
	}
}
