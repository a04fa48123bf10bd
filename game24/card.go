package game24

import (
	"fmt"
	"sort"
	"strings"
)

// Card 一张扑克牌的牌面，如 "A"、"10"、"K"
type Card string

// Alphabet 随机发牌使用的牌面字母表（有放回均匀抽取）
var Alphabet = []Card{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

var cardValues = map[Card]int{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9, "10": 10,
	"J": 11, "Q": 12, "K": 13, "A": 1,
}

// MaxHandSize 求解器支持的最大手牌数
const MaxHandSize = 5

// ValueOf 返回牌面对应的点数
func ValueOf(c Card) (int, error) {
	v, ok := cardValues[c]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCard, string(c))
	}
	return v, nil
}

// Hand 一局游戏的手牌，允许重复，创建后不再修改
type Hand []Card

// ParseHand 把客户端传来的牌面字符串转换为手牌
func ParseHand(tokens []string) (Hand, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: 手牌为空", ErrInvalidInput)
	}
	hand := make(Hand, 0, len(tokens))
	for _, t := range tokens {
		c := Card(strings.ToUpper(strings.TrimSpace(t)))
		if _, err := ValueOf(c); err != nil {
			return nil, err
		}
		hand = append(hand, c)
	}
	return hand, nil
}

// Values 返回每张牌的点数，顺序与手牌一致
func (h Hand) Values() ([]int, error) {
	values := make([]int, len(h))
	for i, c := range h {
		v, err := ValueOf(c)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// Operands 手牌点数组成的允许操作数集合
func (h Hand) Operands() (OperandSet, error) {
	values, err := h.Values()
	if err != nil {
		return nil, err
	}
	set := make(OperandSet, len(values))
	for _, v := range values {
		set[float64(v)] = struct{}{}
	}
	return set, nil
}

// Strings 转为字符串切片，便于序列化
func (h Hand) Strings() []string {
	out := make([]string, len(h))
	for i, c := range h {
		out[i] = string(c)
	}
	return out
}

func (h Hand) String() string {
	return strings.Join(h.Strings(), " ")
}

// sortedValues 升序点数，用于比较两个多重集合
func sortedValues(values []float64) []float64 {
	out := append([]float64(nil), values...)
	sort.Float64s(out)
	return out
}

// cardNames 字母牌面到点数的绑定，数字牌面由词法分析直接识别为数字
func cardNames() map[string]float64 {
	names := make(map[string]float64)
	for c, v := range cardValues {
		if c[0] < '0' || c[0] > '9' {
			names[string(c)] = float64(v)
		}
	}
	return names
}

// OperandSet 求值时允许出现的数字集合
type OperandSet map[float64]struct{}

// NewOperandSet 由若干数字构造集合
func NewOperandSet(values ...float64) OperandSet {
	set := make(OperandSet, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Contains 判断数字是否允许
func (s OperandSet) Contains(v float64) bool {
	_, ok := s[v]
	return ok
}
