package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"zsmenu/pkg/storefront"
)

type noticeLog struct {
	mu      sync.Mutex
	notices []string
}

func (l *noticeLog) notifier() storefront.Notifier {
	return func(message string) {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.notices = append(l.notices, message)
	}
}

func (l *noticeLog) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.notices)
}

func confirmAlways(string) bool { return true }
func confirmNever(string) bool  { return false }

func fakeAPI(t *testing.T, requests *atomic.Int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests != nil {
			requests.Add(1)
		}
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/foods":
			_ = json.NewEncoder(w).Encode([]storefront.Food{})
		case r.Method == http.MethodPost && r.URL.Path == "/foods":
			var food storefront.Food
			_ = json.NewDecoder(r.Body).Decode(&food)
			food.ID = "new1"
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(food)
		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/foods/"):
			var food storefront.Food
			_ = json.NewDecoder(r.Body).Decode(&food)
			_ = json.NewEncoder(w).Encode(food)
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/foods/"):
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "food deleted"})
		default:
			http.NotFound(w, r)
		}
	}))
}

func newTestEditor(t *testing.T, srvURL string, notify storefront.Notifier, confirm Confirm) *Editor {
	t.Helper()
	client := storefront.NewClient(srvURL)
	return NewEditor(client, storefront.NewCatalog(client), notify, confirm)
}

func TestOpenResetsDraftToDefaults(t *testing.T) {
	editor := newTestEditor(t, "http://localhost:0", nil, nil)
	editor.SetTitle("leftover")
	editor.Open()

	draft := editor.Draft()
	if draft.Title != "" || draft.ID != "" {
		t.Fatalf("draft not reset: %+v", draft)
	}
	if draft.Category != "Fastfud" {
		t.Fatalf("draft category = %q, want first seeded category", draft.Category)
	}
	if draft.Time != "15 daqiqa" || draft.Rating != "5.0" {
		t.Fatalf("draft defaults wrong: time=%q rating=%q", draft.Time, draft.Rating)
	}
	if editor.EditMode() {
		t.Fatal("fresh open should not be in edit mode")
	}
}

func TestOpenEditSeedsFullFood(t *testing.T) {
	editor := newTestEditor(t, "http://localhost:0", nil, nil)
	food := storefront.Food{ID: "7", Title: "Somsa", Price: 12000, Category: "Milliy Taomlar", Img: "data:x", Time: "20 daqiqa", Rating: "4.8"}
	editor.OpenEdit(food)

	if !editor.EditMode() {
		t.Fatal("expected edit mode")
	}
	if got := editor.Draft(); got != food {
		t.Fatalf("draft = %+v, want %+v", got, food)
	}

	editor.Close()
	if got := editor.Draft(); got.ID != "" || got.Title != "" {
		t.Fatalf("close did not reset draft: %+v", got)
	}
}

func TestAddCategoryRejectsBlankAndDuplicate(t *testing.T) {
	notices := &noticeLog{}
	editor := newTestEditor(t, "http://localhost:0", notices.notifier(), nil)
	editor.Open()
	before := editor.Categories()

	editor.AddCategory("   ")
	if !reflect.DeepEqual(editor.Categories(), before) {
		t.Fatal("blank label mutated category list")
	}
	if notices.count() != 0 {
		t.Fatal("blank label should be rejected silently")
	}

	editor.AddCategory("Fastfud")
	if !reflect.DeepEqual(editor.Categories(), before) {
		t.Fatal("duplicate label mutated category list")
	}
	if got := editor.Draft().Category; got != "Fastfud" {
		t.Fatalf("draft selection changed to %q on rejected duplicate", got)
	}
	if notices.count() != 1 {
		t.Fatalf("expected one duplicate notice, got %d", notices.count())
	}
}

func TestAddCategoryAppendsAndSelects(t *testing.T) {
	editor := newTestEditor(t, "http://localhost:0", nil, nil)
	editor.Open()

	editor.AddCategory("  Salatlar  ")

	categories := editor.Categories()
	if categories[len(categories)-1] != "Salatlar" {
		t.Fatalf("categories = %v, want Salatlar appended", categories)
	}
	if got := editor.Draft().Category; got != "Salatlar" {
		t.Fatalf("draft category = %q, want Salatlar", got)
	}
}

func TestAddCategoryIsCaseSensitive(t *testing.T) {
	editor := newTestEditor(t, "http://localhost:0", nil, nil)
	editor.Open()

	editor.AddCategory("fastfud")
	categories := editor.Categories()
	if categories[len(categories)-1] != "fastfud" {
		t.Fatalf("case-variant label rejected: %v", categories)
	}
}

func TestSetImageEncodesDataURI(t *testing.T) {
	editor := newTestEditor(t, "http://localhost:0", nil, nil)
	editor.Open()

	// minimal PNG header so content sniffing sees an image
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
	if err := editor.SetImage(strings.NewReader(string(png))); err != nil {
		t.Fatalf("SetImage failed: %v", err)
	}

	img := editor.Draft().Img
	if !strings.HasPrefix(img, "data:image/png;base64,") {
		t.Fatalf("img = %q, want png data URI", img)
	}
}

func TestSaveRejectedWithoutImage(t *testing.T) {
	var requests atomic.Int32
	srv := fakeAPI(t, &requests)
	defer srv.Close()

	notices := &noticeLog{}
	editor := newTestEditor(t, srv.URL, notices.notifier(), nil)
	editor.Open()
	editor.SetTitle("Lavash")
	editor.SetPrice(25000)

	if err := editor.Save(context.Background()); err != nil {
		t.Fatalf("save returned error: %v", err)
	}

	if requests.Load() != 0 {
		t.Fatal("save without image issued a network call")
	}
	if notices.count() != 1 {
		t.Fatalf("expected one rejection notice, got %d", notices.count())
	}
	if !editor.IsOpen() {
		t.Fatal("editor closed on rejected save")
	}
}

func TestSaveSuccessRefreshesAndCloses(t *testing.T) {
	srv := fakeAPI(t, nil)
	defer srv.Close()

	editor := newTestEditor(t, srv.URL, nil, nil)
	editor.Open()
	editor.SetTitle("Lavash")
	editor.SetPrice(25000)
	_ = editor.SetImage(strings.NewReader("fake-image-bytes"))

	if err := editor.Save(context.Background()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if editor.IsOpen() {
		t.Fatal("editor still open after successful save")
	}
	if editor.Draft().Title != "" {
		t.Fatal("draft not reset after successful save")
	}
}

func TestSaveFailureKeepsDraftAndEditorOpen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	notices := &noticeLog{}
	editor := newTestEditor(t, srv.URL, notices.notifier(), nil)
	editor.Open()
	editor.SetTitle("Lavash")
	_ = editor.SetImage(strings.NewReader("fake-image-bytes"))

	if err := editor.Save(context.Background()); err == nil {
		t.Fatal("expected save error")
	}
	if !editor.IsOpen() {
		t.Fatal("editor closed on failed save")
	}
	if editor.Draft().Title != "Lavash" {
		t.Fatal("draft lost on failed save")
	}
	if notices.count() != 1 {
		t.Fatalf("expected one failure notice, got %d", notices.count())
	}
}

func TestDeleteFoodDeclinedIssuesNoCall(t *testing.T) {
	var requests atomic.Int32
	srv := fakeAPI(t, &requests)
	defer srv.Close()

	editor := newTestEditor(t, srv.URL, nil, confirmNever)
	if err := editor.DeleteFood(context.Background(), "7"); err != nil {
		t.Fatalf("declined delete returned error: %v", err)
	}
	if requests.Load() != 0 {
		t.Fatal("declined confirmation still issued a delete call")
	}
}

func TestDeleteFoodConfirmedDeletes(t *testing.T) {
	var deletes atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deletes.Add(1)
		}
		_ = json.NewEncoder(w).Encode([]storefront.Food{})
	}))
	defer srv.Close()

	editor := newTestEditor(t, srv.URL, nil, confirmAlways)
	if err := editor.DeleteFood(context.Background(), "7"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deletes.Load() != 1 {
		t.Fatalf("server saw %d deletes, want 1", deletes.Load())
	}
}
