package service

import (
	"strings"

	"github.com/google/uuid"
)

// newGameID 生成 8 位游戏 ID
func newGameID() string {
	uuidStr := uuid.New().String()
	return strings.ReplaceAll(uuidStr, "-", "")[:8]
}
