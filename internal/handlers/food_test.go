package handlers

import "testing"

func validFoodRequest() foodRequest {
	return foodRequest{
		Title:    " Lavash ",
		Price:    25000,
		Category: "Fastfud",
		Img:      "data:image/png;base64,AA==",
	}
}

func TestBuildFoodFromRequestTrimsAndDefaults(t *testing.T) {
	food, err := buildFoodFromRequest(validFoodRequest())
	if err != nil {
		t.Fatalf("buildFoodFromRequest returned error: %v", err)
	}
	if food.Title != "Lavash" {
		t.Fatalf("title = %q, want trimmed Lavash", food.Title)
	}
	if food.Time != defaultPrepTime {
		t.Fatalf("time = %q, want default %q", food.Time, defaultPrepTime)
	}
	if food.Rating != defaultRating {
		t.Fatalf("rating = %q, want default %q", food.Rating, defaultRating)
	}
}

func TestBuildFoodFromRequestKeepsExplicitTimeAndRating(t *testing.T) {
	req := validFoodRequest()
	req.Time = "25 daqiqa"
	req.Rating = "4.7"

	food, err := buildFoodFromRequest(req)
	if err != nil {
		t.Fatalf("buildFoodFromRequest returned error: %v", err)
	}
	if food.Time != "25 daqiqa" || food.Rating != "4.7" {
		t.Fatalf("time=%q rating=%q, want explicit values kept", food.Time, food.Rating)
	}
}

func TestBuildFoodFromRequestRejectsBadInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*foodRequest)
	}{
		{"blank title", func(r *foodRequest) { r.Title = "  " }},
		{"blank category", func(r *foodRequest) { r.Category = "" }},
		{"negative price", func(r *foodRequest) { r.Price = -1 }},
		{"missing image", func(r *foodRequest) { r.Img = " " }},
	}

	for _, tc := range cases {
		req := validFoodRequest()
		tc.mutate(&req)
		if _, err := buildFoodFromRequest(req); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}
