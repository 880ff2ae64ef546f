package handlers

import "testing"

func validOrderRequest() createOrderRequest {
	return createOrderRequest{
		CustomerName:  "Ali",
		CustomerPhone: "+998901234567",
		Items: []createOrderItemRequest{
			{Title: "Lavash", Quantity: 2, Price: 25000},
		},
		Total: 50000,
		Date:  "02/01/2026, 13:45:00",
	}
}

func TestBuildOrderFromRequestValid(t *testing.T) {
	order, err := buildOrderFromRequest(validOrderRequest())
	if err != nil {
		t.Fatalf("buildOrderFromRequest returned error: %v", err)
	}
	if order.Total != 50000 {
		t.Fatalf("total = %d, want client-supplied 50000", order.Total)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 {
		t.Fatalf("items = %+v", order.Items)
	}
	if order.CreatedAt.IsZero() {
		t.Fatal("createdAt not set")
	}
}

func TestBuildOrderFromRequestRejectsBlankContact(t *testing.T) {
	for _, name := range []string{"", "   ", "\t"} {
		req := validOrderRequest()
		req.CustomerName = name
		if _, err := buildOrderFromRequest(req); err == nil {
			t.Fatalf("expected error for customerName=%q", name)
		}
	}

	req := validOrderRequest()
	req.CustomerPhone = "  "
	if _, err := buildOrderFromRequest(req); err == nil {
		t.Fatal("expected error for blank customerPhone")
	}
}

func TestBuildOrderFromRequestRejectsEmptyItems(t *testing.T) {
	req := validOrderRequest()
	req.Items = nil
	if _, err := buildOrderFromRequest(req); err == nil {
		t.Fatal("expected error for empty items")
	}
}

func TestBuildOrderFromRequestRejectsBadQuantities(t *testing.T) {
	for _, quantity := range []int{0, -3} {
		req := validOrderRequest()
		req.Items[0].Quantity = quantity
		if _, err := buildOrderFromRequest(req); err == nil {
			t.Fatalf("expected error for quantity=%d", quantity)
		}
	}
}

func TestBuildOrderFromRequestDefaultsDate(t *testing.T) {
	req := validOrderRequest()
	req.Date = ""
	order, err := buildOrderFromRequest(req)
	if err != nil {
		t.Fatalf("buildOrderFromRequest returned error: %v", err)
	}
	if order.Date == "" {
		t.Fatal("expected date to be defaulted")
	}
}
