package overlay

// 布局常量
const (
	// MinScale 浮层最小缩放比例，再小就牺牲溢出保证可读性
	MinScale = 0.4

	// MinAvailable 可用区域的下限（像素），防止极小视口产生负数空间
	MinAvailable = 50.0
)

// Point 像素坐标（原点在视口左下角，Y 轴向上）
type Point struct {
	X, Y float64
}

// Rect 像素矩形（原点在视口左下角，Y 轴向上）
type Rect struct {
	Left, Bottom, Right, Top float64
}

// Width 返回矩形宽度
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height 返回矩形高度
func (r Rect) Height() float64 {
	return r.Top - r.Bottom
}

// Viewport 视口尺寸（像素）
type Viewport struct {
	Width, Height float64
}

// Spacing 浮层外边距与内边距
type Spacing struct {
	MarginX float64 // 距视口左右边缘
	MarginY float64 // 距视口上下边缘
	Padding float64 // 面板内边距
}

// Layout 一次布局计算的结果
// 每次绘制重新计算，不跨帧保存
type Layout struct {
	Scale      float64 // 适配缩放比例 [MinScale, 1]
	TextSize   float64 // 缩放后的字号
	CharWidth  float64 // 缩放后的字符宽度
	LineHeight float64 // 缩放后的行高
	Panel      Rect    // 背景面板矩形（已包含内边距）
	Anchors    []Point // 每行第一个字符格的中心点，从上到下
}

// ComputeLayout 计算浮层在视口中的缩放与位置
//
// 纯函数：相同输入总是得到相同结果。
//
// 参数：
//   - vp: 视口尺寸
//   - content: 浮层内容
//   - metrics: 未缩放的字符格尺寸
//   - textSize: 未缩放的字号
//   - sp: 外边距与内边距
//
// 返回：
//   - Layout: 面板矩形与每行锚点；空内容返回最小面板且没有锚点
func ComputeLayout(vp Viewport, content Content, metrics Metrics, textSize float64, sp Spacing) Layout {
	lines := content.LineCount()
	maxChars := float64(content.MaxLineLength())
	padding := sp.Padding

	// 1. 未缩放的文本块尺寸
	totalHeight, totalWidth := blockSize(lines, maxChars, textSize, metrics.CharWidth, metrics.LineHeight)

	// 2. 可用空间（设下限）
	availW := max(vp.Width-2*sp.MarginX, MinAvailable)
	availH := max(vp.Height-2*sp.MarginY, MinAvailable)

	// 3. 适配缩放
	scaleW := 1.0
	if denom := totalWidth + 2*padding; denom > 0 {
		scaleW = availW / denom
	}
	scaleH := 1.0
	if denom := totalHeight + 2*padding; denom > 0 {
		scaleH = availH / denom
	}
	scale := max(min(1.0, scaleW, scaleH), MinScale)

	// 4. 按比例缩放
	size := textSize * scale
	charWidth := metrics.CharWidth * scale
	lineHeight := max(1.0, metrics.LineHeight*scale)
	totalHeight, totalWidth = blockSize(lines, maxChars, size, charWidth, lineHeight)

	// 5. 锚定在左上区域；内容纵向溢出时底边停在 padding，行可能重叠
	top := vp.Height - sp.MarginY
	bottom := max(top-totalHeight, padding)
	left := sp.MarginX
	right := left + totalWidth

	// 6. 横向溢出时左移，但左边不小于 padding
	if overshoot := (right + padding) - (vp.Width - sp.MarginX); overshoot > 0 {
		left = max(padding, left-overshoot)
		right = left + totalWidth
	}

	// 7. 面板与锚点
	anchors := make([]Point, lines)
	centerX := left + charWidth/2
	for i := range anchors {
		anchors[i] = Point{
			X: centerX,
			Y: top - float64(i)*lineHeight - size/2,
		}
	}

	return Layout{
		Scale:      scale,
		TextSize:   size,
		CharWidth:  charWidth,
		LineHeight: lineHeight,
		Panel: Rect{
			Left:   left - padding,
			Bottom: bottom - padding,
			Right:  right + padding,
			Top:    top + padding,
		},
		Anchors: anchors,
	}
}

// blockSize 计算文本块的高度和宽度；没有行时为 0
func blockSize(lines int, maxChars, textSize, charWidth, lineHeight float64) (height, width float64) {
	if lines == 0 {
		return 0, 0
	}
	height = textSize + float64(lines-1)*lineHeight
	width = maxChars * charWidth
	return height, width
}
