package game24

import "fmt"

// Mode 游戏模式：4 张牌凑 24，或 5 张牌凑 60
type Mode string

const (
	Mode24 Mode = "24"
	Mode60 Mode = "60"
)

// ParseMode 解析模式字符串，空字符串默认为 24 点
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", Mode24:
		return Mode24, nil
	case Mode60:
		return Mode60, nil
	}
	return "", fmt.Errorf("%w: 未知模式 %q", ErrInvalidInput, s)
}

// CardCount 该模式的发牌数
func (m Mode) CardCount() int {
	if m == Mode60 {
		return 5
	}
	return 4
}

// Target 该模式的目标值
func (m Mode) Target() int {
	if m == Mode60 {
		return 60
	}
	return 24
}
