package client

import (
	"github.com/arcticline/icefloe/internal/game"
	"github.com/arcticline/icefloe/internal/protocol"
)

// EncodeMoveReply translates a domain move into the wire reply shape.
// A nil origin stays absent, marking a placement.
func EncodeMoveReply(m *game.Move) *protocol.MoveReply {
	reply := &protocol.MoveReply{
		To: protocol.CoordValue{X: m.To.X, Y: m.To.Y},
	}
	if m.From != nil {
		reply.From = &protocol.CoordValue{X: m.From.X, Y: m.From.Y}
	}
	return reply
}
