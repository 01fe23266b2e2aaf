package common

import (
	"fmt"
	"os"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	idNode     *snowflake.Node
	idNodeOnce sync.Once
)

func node() *snowflake.Node {
	idNodeOnce.Do(func() {
		n := int64(1)
		if v := os.Getenv("STOCKBRIDGE_NODE_ID"); v != "" {
			fmt.Sscanf(v, "%d", &n)
		}
		var err error
		idNode, err = snowflake.NewNode(n % 1024)
		if err != nil {
			panic(err)
		}
	})
	return idNode
}

// UUIDint64 returns a cluster-unique int64 identifier.
func UUIDint64() int64 {
	return node().Generate().Int64()
}

// UUIDBase32 returns a short sortable string identifier.
func UUIDBase32() string {
	return node().Generate().Base32()
}
