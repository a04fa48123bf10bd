package dto

// 客户端 -> 服务端的消息类型
const (
	WsTypeAnswer = "answer"
	WsTypeHint   = "hint"
	WsTypeNext   = "next"
)

// 服务端 -> 客户端的消息类型
const (
	WsTypeInit   = "init"
	WsTypeDeal   = "deal"
	WsTypeResult = "result"
	WsTypeError  = "error"
)

// ClientMessage 客户端发来的消息
type ClientMessage struct {
	Type       string `json:"type"`
	Expression string `json:"expression,omitempty"`
}

// ServerMessage 服务端推送的消息，按 Type 填充不同字段
type ServerMessage struct {
	Type        string   `json:"type"`
	PlayerID    string   `json:"playerId,omitempty"`
	Cards       []string `json:"cards,omitempty"`
	Target      int      `json:"target,omitempty"`
	HasSolution *bool    `json:"hasSolution,omitempty"`
	Correct     *bool    `json:"correct,omitempty"`
	Expression  string   `json:"expression,omitempty"`
	Solutions   []string `json:"solutions,omitempty"`
	Message     string   `json:"message,omitempty"`
}
