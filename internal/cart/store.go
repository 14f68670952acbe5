package cart

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Obed2006p/Rincon-De-Lore/internal/catalog"
)

// Line is one cart entry: a dish plus a positive quantity. There is
// never more than one line per item id, and a quantity ≤ 0 removes
// the line instead of being stored.
type Line struct {
	Item     catalog.MenuItem `json:"item"`
	Quantity int              `json:"quantity"`
}

func (l Line) Subtotal() float64 {
	return l.Item.Price * float64(l.Quantity)
}

// Cart is a session-scoped order in progress. Methods are safe for
// concurrent use: the web UI and a chat session mutate the same cart.
type Cart struct {
	ID string

	mu    sync.Mutex
	lines []Line // insertion order, for stable summaries
}

// AddOrIncrement merges quantity into the line for item.ID, creating
// the line if needed. Callers filter out non-positive quantities.
func (c *Cart) AddOrIncrement(item catalog.MenuItem, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity += quantity
			return
		}
	}

	c.lines = append(c.lines, Line{Item: item, Quantity: quantity})
}

// SetQuantity sets the line for itemID to exactly quantity; ≤ 0
// removes it. A missing line is a no-op.
func (c *Cart) SetQuantity(itemID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Item.ID != itemID {
			continue
		}
		if quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity = quantity
		}
		return
	}
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}

// Clear empties the cart after a placed order.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Manager hands out carts keyed by server-issued session ids.
type Manager struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewManager() *Manager {
	return &Manager{carts: make(map[string]*Cart)}
}

func (m *Manager) Create() *Cart {
	cart := &Cart{ID: uuid.New().String()}

	m.mu.Lock()
	m.carts[cart.ID] = cart
	m.mu.Unlock()

	return cart
}

func (m *Manager) Get(id string) (*Cart, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cart, ok := m.carts[id]
	return cart, ok
}
