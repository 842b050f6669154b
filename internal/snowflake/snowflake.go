// Package snowflake hands out request ids for the HTTP layer.
package snowflake

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	mu   sync.RWMutex
	node *snowflake.Node
)

// Init sets up the generator for nodeID, which must be unique per running
// instance (0-1023).
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}
	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

func current() *snowflake.Node {
	mu.RLock()
	n := node
	mu.RUnlock()
	if n != nil {
		return n
	}

	mu.Lock()
	defer mu.Unlock()
	if node == nil {
		node, _ = snowflake.NewNode(0)
	}
	return node
}

// NextID generates a new unique id. Without Init it uses node 0.
func NextID() int64 {
	return current().Generate().Int64()
}

// RequestID is NextID in the base58 form sent in X-Request-Id.
func RequestID() string {
	return current().Generate().Base58()
}
