package entities

import "strings"

// GameInfo 一局游戏在存储中的记录
type GameInfo struct {
	GameID    string `json:"gameID"`
	Mode      string `json:"mode"`
	Cards     string `json:"cards"` // 逗号分隔，如 "4,A,8,7"
	Target    int    `json:"target"`
	CreatedAt int64  `json:"createdAt"` // unix 秒
}

// CardList 拆分牌面
func (g GameInfo) CardList() []string {
	if g.Cards == "" {
		return nil
	}
	return strings.Split(g.Cards, ",")
}

// JoinCards 合并牌面
func JoinCards(cards []string) string {
	return strings.Join(cards, ",")
}

// ToHash 转为 Redis Hash 字段
func (g GameInfo) ToHash() map[string]interface{} {
	return map[string]interface{}{
		"gameID":    g.GameID,
		"mode":      g.Mode,
		"cards":     g.Cards,
		"target":    g.Target,
		"createdAt": g.CreatedAt,
	}
}
