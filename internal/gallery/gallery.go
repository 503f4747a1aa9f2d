package gallery

import (
	"github.com/luminadental/lumina/internal/site"
)

// CategoryAll selects every item regardless of category.
const CategoryAll = "ALL"

// Zoom bounds for the lightbox view.
const (
	ZoomMin     = 0.5
	ZoomMax     = 3.0
	ZoomStep    = 0.25
	ZoomDefault = 1.0
)

// Collection holds gallery items in their original order with a stable
// id index, so navigation never depends on filtered positions.
type Collection struct {
	items []site.GalleryItem
	byID  map[int]int
}

// NewCollection builds a collection from items. Order is preserved.
func NewCollection(items []site.GalleryItem) *Collection {
	c := &Collection{
		items: make([]site.GalleryItem, len(items)),
		byID:  make(map[int]int, len(items)),
	}
	copy(c.items, items)
	for i, item := range c.items {
		c.byID[item.ID] = i
	}
	return c
}

// Len returns the number of items in the collection.
func (c *Collection) Len() int {
	return len(c.items)
}

// All returns every item in original order.
func (c *Collection) All() []site.GalleryItem {
	out := make([]site.GalleryItem, len(c.items))
	copy(out, c.items)
	return out
}

// Filter returns the items whose category exactly matches the given one,
// in original relative order. CategoryAll (or the empty string) returns
// the full list.
func (c *Collection) Filter(category string) []site.GalleryItem {
	if category == "" || category == CategoryAll {
		return c.All()
	}
	var out []site.GalleryItem
	for _, item := range c.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Get returns the item with the given id.
func (c *Collection) Get(id int) (site.GalleryItem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return site.GalleryItem{}, false
	}
	return c.items[i], true
}

// indexOf maps an item id back to its position in the unfiltered list.
func (c *Collection) indexOf(id int) (int, bool) {
	i, ok := c.byID[id]
	return i, ok
}

// Lightbox is the full-screen viewer state. It is opened on an item by id
// and navigates the whole unfiltered collection, so arrow navigation is
// never trapped inside a filtered subset.
type Lightbox struct {
	col   *Collection
	index int
	zoom  float64
	open  bool
}

// NewLightbox creates a closed lightbox over the collection.
func NewLightbox(col *Collection) *Lightbox {
	return &Lightbox{col: col, zoom: ZoomDefault}
}

// Open shows the item with the given id. Opening resets zoom.
func (l *Lightbox) Open(id int) bool {
	i, ok := l.col.indexOf(id)
	if !ok {
		return false
	}
	l.index = i
	l.open = true
	l.zoom = ZoomDefault
	return true
}

// Close hides the lightbox and resets zoom.
func (l *Lightbox) Close() {
	l.open = false
	l.zoom = ZoomDefault
}

// IsOpen reports whether the lightbox is visible.
func (l *Lightbox) IsOpen() bool {
	return l.open
}

// Current returns the item being viewed.
func (l *Lightbox) Current() (site.GalleryItem, bool) {
	if !l.open || l.index < 0 || l.index >= l.col.Len() {
		return site.GalleryItem{}, false
	}
	return l.col.items[l.index], true
}

// Next advances to the following item. At the last item it is a no-op.
// Changing the image resets zoom.
func (l *Lightbox) Next() {
	if !l.open || l.index >= l.col.Len()-1 {
		return
	}
	l.index++
	l.zoom = ZoomDefault
}

// Prev steps back to the preceding item. At the first item it is a no-op.
// Changing the image resets zoom.
func (l *Lightbox) Prev() {
	if !l.open || l.index <= 0 {
		return
	}
	l.index--
	l.zoom = ZoomDefault
}

// Zoom returns the current zoom level.
func (l *Lightbox) Zoom() float64 {
	return l.zoom
}

// ZoomIn increases zoom by one step, clamped at ZoomMax.
func (l *Lightbox) ZoomIn() {
	l.zoom += ZoomStep
	if l.zoom > ZoomMax {
		l.zoom = ZoomMax
	}
}

// ZoomOut decreases zoom by one step, clamped at ZoomMin.
func (l *Lightbox) ZoomOut() {
	l.zoom -= ZoomStep
	if l.zoom < ZoomMin {
		l.zoom = ZoomMin
	}
}

// ResetZoom restores the default zoom level.
func (l *Lightbox) ResetZoom() {
	l.zoom = ZoomDefault
}
