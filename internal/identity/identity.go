// Package identity holds the signed-in user of a client process and lets
// views watch it change.
package identity

import "sync"

type User struct {
	ID          string
	Email       string
	DisplayName string
}

// Snapshot is one observed value of the cell.
type Snapshot struct {
	User     User
	SignedIn bool
}

// Cell is a subscribable holder for the current user. The zero value is
// signed out and ready to use.
type Cell struct {
	mu     sync.Mutex
	cur    Snapshot
	subs   map[int]chan Snapshot
	nextID int
}

func NewCell() *Cell {
	return &Cell{}
}

func (c *Cell) Set(u User) {
	c.publish(Snapshot{User: u, SignedIn: true})
}

func (c *Cell) Clear() {
	c.publish(Snapshot{})
}

func (c *Cell) Current() (User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cur.User, c.cur.SignedIn
}

// Subscribe returns a channel that first carries the current value and then
// every change. A slow reader only sees the latest value. cancel closes the
// channel and is safe to call more than once.
func (c *Cell) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	c.mu.Lock()
	if c.subs == nil {
		c.subs = make(map[int]chan Snapshot)
	}
	id := c.nextID
	c.nextID++
	c.subs[id] = ch
	ch <- c.cur
	c.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			close(ch)
			c.mu.Unlock()
		})
	}
	return ch, cancel
}

func (c *Cell) publish(s Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = s
	for _, ch := range c.subs {
		// Replace an unread value so the reader never sees a stale one.
		select {
		case <-ch:
		default:
		}
		ch <- s
	}
}
