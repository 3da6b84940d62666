package cart

import (
	"sync"

	"github.com/sh1vam31/food-inventory-console/internal/domain"
)

// Snapshot is the cart as of one version. Versions increase by one per
// effective mutation.
type Snapshot struct {
	Version uint64
	Cart    Cart
}

type Listener func(Snapshot)

// Store is the single source of truth for what the user wants to buy. All
// operations are local and never block on I/O; listeners are told about
// every effective mutation.
type Store struct {
	mu        sync.Mutex
	cart      Cart
	version   uint64
	listeners []Listener
}

func NewStore() *Store {
	return &Store{}
}

// Subscribe registers l for every later mutation. Listeners run on the
// mutating goroutine and must not call back into the store.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, l)
}

func (s *Store) AddItem(item domain.MenuItem) Snapshot {
	snap, _ := s.apply(func(c Cart) (Cart, bool) {
		return c.Add(item), true
	})
	return snap
}

func (s *Store) SetQuantity(menuItemID int64, quantity int) (Snapshot, bool) {
	return s.apply(func(c Cart) (Cart, bool) {
		return c.SetQuantity(menuItemID, quantity)
	})
}

func (s *Store) RemoveItem(menuItemID int64) (Snapshot, bool) {
	return s.apply(func(c Cart) (Cart, bool) {
		return c.Remove(menuItemID)
	})
}

func (s *Store) Clear() Snapshot {
	snap, _ := s.apply(func(c Cart) (Cart, bool) {
		return Cart{}, !c.IsEmpty()
	})
	return snap
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{Version: s.version, Cart: s.cart}
}

func (s *Store) TotalPrice() float64 {
	return s.Snapshot().Cart.TotalPrice()
}

// apply runs one transition and notifies listeners while still holding the
// lock so they observe versions in order.
func (s *Store) apply(transition func(Cart) (Cart, bool)) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := transition(s.cart)
	if !changed {
		return Snapshot{Version: s.version, Cart: s.cart}, false
	}

	s.cart = next
	s.version++
	snap := Snapshot{Version: s.version, Cart: s.cart}

	for _, l := range s.listeners {
		l(snap)
	}

	return snap, true
}
