package toggle

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Capture is a single owner pointer capture. Whoever holds it receives drag
// events; anybody can take it away with Steal.
type Capture struct {
	holder string
}

// Acquire takes the capture under a fresh holder id
func (c *Capture) Acquire() string {
	c.holder = newHolderID()
	return c.holder
}

// Release drops the capture if id still holds it
func (c *Capture) Release(id string) {
	if id != "" && c.holder == id {
		c.holder = ""
	}
}

// HeldBy reports whether id currently holds the capture
func (c *Capture) HeldBy(id string) bool {
	return id != "" && c.holder == id
}

// Held reports whether anybody holds the capture
func (c *Capture) Held() bool {
	return c.holder != ""
}

// Steal revokes the capture from its holder. Holders notice on their next
// check.
func (c *Capture) Steal() {
	c.holder = ""
}

func newHolderID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("capture-%d", time.Now().UnixNano())
	}
	return id.String()
}
