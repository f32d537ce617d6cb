package overlay

import "github.com/mattn/go-runewidth"

// Content 浮层显示的文本行，构造后不可变
//
// 行长度按等宽字符格计算（ASCII 下与字符数一致）。
type Content struct {
	lines  []string
	maxLen int
}

// NewContent 创建浮层内容（复制传入的行）
func NewContent(lines []string) Content {
	copied := make([]string, len(lines))
	copy(copied, lines)

	maxLen := 0
	for _, line := range copied {
		if w := runewidth.StringWidth(line); w > maxLen {
			maxLen = w
		}
	}

	return Content{lines: copied, maxLen: maxLen}
}

// Lines 返回行的副本
func (c Content) Lines() []string {
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// Line 返回第 i 行
func (c Content) Line(i int) string {
	return c.lines[i]
}

// LineCount 返回行数
func (c Content) LineCount() int {
	return len(c.lines)
}

// MaxLineLength 返回最长行的字符格数
func (c Content) MaxLineLength() int {
	return c.maxLen
}

// IsEmpty 内容为空时返回 true
func (c Content) IsEmpty() bool {
	return len(c.lines) == 0
}
