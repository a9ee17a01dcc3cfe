// Package id generates snowflake identifiers for all persisted entities.
package id

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node     *snowflake.Node
	initOnce sync.Once
)

// New returns a fresh snowflake ID. The node number is taken from
// SNOWFLAKE_NODE_ID (default 1) so multiple instances can coexist.
func New() int64 {
	initOnce.Do(func() {
		nodeID := int64(1)
		if v := os.Getenv("SNOWFLAKE_NODE_ID"); v != "" {
			parsed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				panic(fmt.Sprintf("invalid SNOWFLAKE_NODE_ID %q: %v", v, err))
			}
			nodeID = parsed
		}
		var err error
		node, err = snowflake.NewNode(nodeID)
		if err != nil {
			panic(fmt.Sprintf("initializing snowflake node: %v", err))
		}
	})
	return node.Generate().Int64()
}
