package uid

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Snowflake produces time-ordered 64-bit ids. Each replica needs its own node
// number (0-1023) so ids never collide across processes.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake returns a generator bound to node.
func NewSnowflake(node int64) (*Snowflake, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("uid: snowflake node %d: %w", node, err)
	}
	return &Snowflake{node: n}, nil
}

func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}
