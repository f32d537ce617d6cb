package overlay

// Color 浮点颜色（非预乘 alpha）
type Color struct {
	R, G, B, A float32
}

// 浮层配色
var (
	// panelRGB 背景面板颜色，alpha 为 0.7 * 浮层不透明度
	panelRGB = Color{R: 0.05, G: 0.05, B: 0.05}

	// textRGB 文字颜色，alpha 为浮层不透明度
	textRGB = Color{R: 1, G: 1, B: 1}
)

// panelOpacity 面板相对文字的不透明度
const panelOpacity = 0.7

// RenderContext 绘制背景面板所需的渲染后端
type RenderContext interface {
	// SetBlend 开启（source-over）或关闭（不透明覆盖）混合
	SetBlend(enabled bool)
	// WriteQuad 把 4 个顶点（x, y 交错，三角带顺序）写入可复用的四边形缓冲
	WriteQuad(vertices [8]float32)
	// DrawStrip 以给定颜色绘制缓冲中的三角带
	DrawStrip(clr Color)
}

// GlyphSource 字形源：提供度量并绘制单行文本
type GlyphSource interface {
	AspectSource
	// DrawLine 绘制一行文本，anchor 为第一个字符格的中心点
	DrawLine(text string, anchor Point, size float64, clr Color)
}

// Renderer 按布局绘制面板和文字
// 不拥有渲染后端，只调用它们
type Renderer struct {
	ctx    RenderContext
	glyphs GlyphSource
	quad   [8]float32
}

// NewRenderer 创建浮层渲染器
func NewRenderer(ctx RenderContext, glyphs GlyphSource) *Renderer {
	return &Renderer{ctx: ctx, glyphs: glyphs}
}

// Draw 绘制面板和每一行文字
//
// alpha <= 0 时不做任何调用。否则开启混合绘制，结束后恢复为关闭混合，
// 不给后续绘制留下混合状态。
func (r *Renderer) Draw(layout Layout, content Content, alpha float64) {
	if alpha <= 0 {
		return
	}

	p := layout.Panel
	r.quad = [8]float32{
		float32(p.Left), float32(p.Bottom),
		float32(p.Left), float32(p.Top),
		float32(p.Right), float32(p.Bottom),
		float32(p.Right), float32(p.Top),
	}

	r.ctx.SetBlend(true)
	defer r.ctx.SetBlend(false)

	r.ctx.WriteQuad(r.quad)
	panel := panelRGB
	panel.A = float32(panelOpacity * alpha)
	r.ctx.DrawStrip(panel)

	fg := textRGB
	fg.A = float32(alpha)
	n := min(len(layout.Anchors), content.LineCount())
	for i := 0; i < n; i++ {
		r.glyphs.DrawLine(content.Line(i), layout.Anchors[i], layout.TextSize, fg)
	}
}
