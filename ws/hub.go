package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"card24/dto"
	"card24/game24"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// PlayerConn 一个练习连接，手牌只属于该连接
type PlayerConn struct {
	PlayerID string
	Conn     *websocket.Conn
	Mode     game24.Mode
	Deal     game24.Deal
}

// Hub 管理所有练习连接
type Hub struct {
	engine *game24.Engine
	log    *zap.Logger

	mu      sync.Mutex
	players map[*websocket.Conn]*PlayerConn
}

func NewHub(engine *game24.Engine, log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		engine:  engine,
		log:     log,
		players: make(map[*websocket.Conn]*PlayerConn),
	}
}

// OnlineCount 当前连接数
func (h *Hub) OnlineCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.players)
}

func (h *Hub) join(pc *PlayerConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.players[pc.Conn] = pc
}

// 玩家断开连接后移除
func (h *Hub) cleanupOnDisconnect(pc *PlayerConn) {
	h.mu.Lock()
	delete(h.players, pc.Conn)
	h.mu.Unlock()
	h.log.Info("玩家离开练习", zap.String("player_id", pc.PlayerID))
}

// 生成匿名玩家ID（使用 UUID）
func generateAnonymousPlayerID() string {
	return uuid.New().String()
}

// HandleWebSocket WebSocket 主入口（处理每个连接）
func (h *Hub) HandleWebSocket(c *gin.Context) {
	mode, err := game24.ParseMode(c.Query("mode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	playerID := c.Query("userId")
	if playerID == "" {
		playerID = generateAnonymousPlayerID()
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("WebSocket 升级失败", zap.Error(err))
		return
	}
	defer conn.Close()

	pc := &PlayerConn{PlayerID: playerID, Conn: conn, Mode: mode}
	h.join(pc)
	defer h.cleanupOnDisconnect(pc)

	h.log.Info("玩家开始练习",
		zap.String("player_id", playerID),
		zap.String("mode", string(mode)),
		zap.Int("online", h.OnlineCount()))

	if err := send(conn, dto.ServerMessage{Type: dto.WsTypeInit, PlayerID: playerID}); err != nil {
		return
	}
	if err := h.deal(pc); err != nil {
		return
	}
	h.listen(pc)
}

// listen 持续读取客户端消息直到连接断开
func (h *Hub) listen(pc *PlayerConn) {
	for {
		_, raw, err := pc.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("读取消息失败", zap.String("player_id", pc.PlayerID), zap.Error(err))
			}
			return
		}

		var msg dto.ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			if err := sendError(pc.Conn, "消息解析失败"); err != nil {
				return
			}
			continue
		}

		if err := h.handle(pc, msg); err != nil {
			h.log.Warn("发送消息失败", zap.String("player_id", pc.PlayerID), zap.Error(err))
			return
		}
	}
}

func (h *Hub) handle(pc *PlayerConn, msg dto.ClientMessage) error {
	switch msg.Type {
	case dto.WsTypeAnswer:
		correct := h.engine.Verify(msg.Expression, pc.Deal.Cards, pc.Deal.Target)
		return send(pc.Conn, dto.ServerMessage{
			Type:       dto.WsTypeResult,
			Correct:    &correct,
			Expression: msg.Expression,
		})
	case dto.WsTypeHint:
		res, err := h.engine.Solutions(pc.Deal.Cards, pc.Deal.Target)
		if err != nil {
			return sendError(pc.Conn, err.Error())
		}
		return send(pc.Conn, dto.ServerMessage{
			Type:        dto.WsTypeHint,
			HasSolution: &res.HasSolution,
			Solutions:   res.Solutions,
		})
	case dto.WsTypeNext:
		return h.deal(pc)
	}
	return sendError(pc.Conn, "未知的消息类型: "+msg.Type)
}

// deal 为连接发一手新牌（总是有解）
func (h *Hub) deal(pc *PlayerConn) error {
	deal, err := h.engine.NewGame(pc.Mode, true)
	if err != nil {
		return sendError(pc.Conn, err.Error())
	}
	pc.Deal = deal
	return send(pc.Conn, dto.ServerMessage{
		Type:        dto.WsTypeDeal,
		Cards:       deal.Cards.Strings(),
		Target:      deal.Target,
		HasSolution: &deal.HasSolution,
	})
}
