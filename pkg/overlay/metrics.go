package overlay

import "math"

const (
	// FallbackCharAspect 字形源未提供宽高比时使用的字符宽度比例（宽 = 字号 * 0.6）
	FallbackCharAspect = 0.6

	// LineSpacingRatio 行高与字号的比例
	LineSpacingRatio = 1.35
)

// Metrics 未缩放的字符格尺寸
type Metrics struct {
	CharWidth  float64 // 单个字符宽度（像素）
	LineHeight float64 // 行高（像素），至少为 1
}

// AspectSource 可选地报告字符宽高比的字形源
type AspectSource interface {
	// CharAspect 返回字符宽度 / 高度比例；ok 为 false 表示没有该元数据
	CharAspect() (aspect float64, ok bool)
}

// ResolveMetrics 根据字形源和字号计算名义字符格尺寸
//
// 参数：
//   - src: 字形源，可为 nil（使用后备比例）
//   - textSize: 字号（像素）
//
// 返回：
//   - Metrics: CharWidth = aspect * textSize（无元数据时 textSize * 0.6），
//     LineHeight = max(1, floor(textSize * 1.35))
func ResolveMetrics(src AspectSource, textSize float64) Metrics {
	aspect := FallbackCharAspect
	if src != nil {
		if a, ok := src.CharAspect(); ok && a > 0 {
			aspect = a
		}
	}

	return Metrics{
		CharWidth:  aspect * textSize,
		LineHeight: max(1, math.Floor(textSize*LineSpacingRatio)),
	}
}
