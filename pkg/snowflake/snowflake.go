package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID 令牌 jti
func GenID() int64 {
	return node.Generate().Int64()
}
