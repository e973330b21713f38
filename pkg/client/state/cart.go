package state

import (
	"github.com/dambastudy/backend/internal/models"
)

// CartItem is a course waiting for checkout
type CartItem struct {
	ID        string  `json:"_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Thumbnail string  `json:"thumbnail,omitempty"`
}

// ItemFromCourse builds a cart item from a catalog course
func ItemFromCourse(course models.Course) CartItem {
	return CartItem{
		ID:        course.ID,
		Title:     course.Title,
		Price:     course.Price,
		Thumbnail: course.Thumbnail,
	}
}

// Cart is the persisted list of courses to buy. Every change is saved right away.
type Cart struct {
	store *Store
	items []CartItem
}

// LoadCart reads the saved cart; a missing cart is empty
func LoadCart(store *Store) (*Cart, error) {
	c := &Cart{store: store, items: []CartItem{}}
	if _, err := store.Load(CartKey, &c.items); err != nil {
		return nil, err
	}
	if c.items == nil {
		c.items = []CartItem{}
	}
	return c, nil
}

// Items returns a copy of the cart content
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// IDs returns the course ids in the cart
func (c *Cart) IDs() []string {
	ids := make([]string, len(c.items))
	for i, item := range c.items {
		ids[i] = item.ID
	}
	return ids
}

// Len returns the number of items
func (c *Cart) Len() int {
	return len(c.items)
}

// Contains reports whether the course is in the cart
func (c *Cart) Contains(id string) bool {
	for _, item := range c.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Total returns the sum of the item prices
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price
	}
	return total
}

// Add appends an item. It returns false and leaves the cart untouched when the course is already in it.
func (c *Cart) Add(item CartItem) (bool, error) {
	if c.Contains(item.ID) {
		return false, nil
	}

	c.items = append(c.items, item)
	return true, c.save()
}

// Remove drops the item with the given course id
func (c *Cart) Remove(id string) error {
	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return c.save()
		}
	}
	return nil
}

// Clear empties the cart
func (c *Cart) Clear() error {
	c.items = []CartItem{}
	return c.save()
}

func (c *Cart) save() error {
	return c.store.Save(CartKey, c.items)
}
