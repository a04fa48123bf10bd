package ws

import (
	"encoding/json"
	"fmt"

	"card24/dto"

	"github.com/gorilla/websocket"
)

// 只写连接，便于测试替换
type writeConn interface {
	WriteMessage(messageType int, data []byte) error
}

func send(conn writeConn, msg dto.ServerMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("编码 JSON 失败: %w", err)
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}

func sendError(conn writeConn, message string) error {
	return send(conn, dto.ServerMessage{Type: dto.WsTypeError, Message: message})
}
