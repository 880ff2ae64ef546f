package admin

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"strings"
	"sync"

	"zsmenu/pkg/storefront"
)

// DefaultCategories seeds the editor's category picker. The list lives in
// memory only; a label added here survives a restart only if some food
// already uses it (the customer surface re-derives it from the catalog).
var DefaultCategories = []string{"Fastfud", "Ichimliklar", "Shirinliklar", "Milliy Taomlar"}

const (
	defaultPrepTime = "15 daqiqa"
	defaultRating   = "5.0"
)

// Confirm asks the operator a yes/no question before a destructive action.
type Confirm func(prompt string) bool

// Editor holds the admin's draft food record. Create and edit share one
// Save path; they differ only in whether the draft carries an ID.
type Editor struct {
	mu         sync.Mutex
	client     *storefront.Client
	catalog    *storefront.Catalog
	notify     storefront.Notifier
	confirm    Confirm
	categories []string
	draft      storefront.Food
	editMode   bool
	open       bool
}

func NewEditor(client *storefront.Client, catalog *storefront.Catalog, notify storefront.Notifier, confirm Confirm) *Editor {
	e := &Editor{
		client:     client,
		catalog:    catalog,
		notify:     notify,
		confirm:    confirm,
		categories: append([]string(nil), DefaultCategories...),
	}
	e.draft = e.blankDraft()
	return e
}

func (e *Editor) blankDraft() storefront.Food {
	category := ""
	if len(e.categories) > 0 {
		category = e.categories[0]
	}
	return storefront.Food{
		Category: category,
		Time:     defaultPrepTime,
		Rating:   defaultRating,
	}
}

// Open starts a fresh create draft.
func (e *Editor) Open() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = e.blankDraft()
	e.editMode = false
	e.open = true
}

// OpenEdit seeds the draft with an existing food, ID included.
func (e *Editor) OpenEdit(food storefront.Food) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = food
	e.editMode = true
	e.open = true
}

func (e *Editor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.open = false
	e.editMode = false
	e.draft = e.blankDraft()
}

func (e *Editor) IsOpen() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.open
}

func (e *Editor) EditMode() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.editMode
}

func (e *Editor) Draft() storefront.Food {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

func (e *Editor) SetTitle(title string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.Title = title
}

func (e *Editor) SetPrice(price int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.Price = price
}

func (e *Editor) SetCategory(category string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.Category = category
}

func (e *Editor) Categories() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.categories))
	copy(out, e.categories)
	return out
}

// AddCategory appends a new label and selects it for the draft. Blank input
// is ignored; an exact duplicate is rejected with a notice and mutates
// nothing.
func (e *Editor) AddCategory(label string) {
	label = strings.TrimSpace(label)
	if label == "" {
		return
	}

	e.mu.Lock()
	for _, existing := range e.categories {
		if existing == label {
			e.mu.Unlock()
			e.notify.Notify("Bu kategoriya allaqachon mavjud!")
			return
		}
	}
	e.categories = append(e.categories, label)
	e.draft.Category = label
	e.mu.Unlock()
}

// SetImage reads the whole file and stores it on the draft as a base64 data
// URI. No type or size validation happens here; that matches the product's
// current behavior.
func (e *Editor) SetImage(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	mime := http.DetectContentType(data)
	img := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)

	e.mu.Lock()
	e.draft.Img = img
	e.mu.Unlock()
	return nil
}

// Save submits the draft to the remote store. An empty image is rejected
// before any network call. On success the catalog refreshes and the editor
// closes; on transport failure the editor stays open with the draft intact.
func (e *Editor) Save(ctx context.Context) error {
	e.mu.Lock()
	draft := e.draft
	e.mu.Unlock()

	if draft.Img == "" {
		e.notify.Notify("Rasm yuklang!")
		return nil
	}

	if _, err := e.client.SaveFood(ctx, draft); err != nil {
		e.notify.Notify("Server bilan aloqa yo'q!")
		return err
	}

	_ = e.catalog.Refresh(ctx)
	e.Close()
	return nil
}

// DeleteFood removes a food after operator confirmation. A declined prompt
// issues no network call at all.
func (e *Editor) DeleteFood(ctx context.Context, id string) error {
	if e.confirm == nil || !e.confirm("Ushbu taomni o'chirmoqchimisiz?") {
		return nil
	}

	if err := e.client.DeleteFood(ctx, id); err != nil {
		e.notify.Notify("O'chirishda xato!")
		return err
	}

	_ = e.catalog.Refresh(ctx)
	return nil
}
