package game24

import "errors"

var (
	// ErrInvalidCard 牌面不在字母表内
	ErrInvalidCard = errors.New("无效的牌面")
	// ErrInvalidInput 空手牌、手牌过大、目标值非正等
	ErrInvalidInput = errors.New("无效的输入")

	// ErrSyntax 表达式无法解析
	ErrSyntax = errors.New("表达式语法错误")
	// ErrRejected 表达式含有白名单以外的结构或数字
	ErrRejected = errors.New("表达式未通过白名单校验")
	// ErrEvaluation 计算过程出错（除零、溢出、NaN）
	ErrEvaluation = errors.New("表达式计算失败")
)
