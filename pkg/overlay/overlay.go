// Package overlay 实现渐隐的操作说明浮层
//
// 浮层由四部分组成：Fader 负责停留/淡出计时，ResolveMetrics 计算名义字符格尺寸，
// ComputeLayout 把文本块适配到当前视口，Renderer 按布局绘制面板和文字。
// Overlay 把它们组合起来，宿主每帧调用 Update(dt) 和 Draw(window)。
//
// 所有坐标以视口左下角为原点、Y 轴向上。
package overlay

import "log"

// Options 浮层构造参数
type Options struct {
	TextSize float64 // 名义字号（像素）
	HoldTime float64 // 完全显示的停留时间（秒）
	FadeTime float64 // 淡出时长（秒）
	MarginX  float64 // 距视口左右边缘（像素）
	MarginY  float64 // 距视口上下边缘（像素）
	Padding  float64 // 面板内边距（像素）
}

// DefaultOptions 返回默认参数
func DefaultOptions() Options {
	return Options{
		TextSize: 22.0,
		HoldTime: 3.0,
		FadeTime: 2.5,
		MarginX:  36,
		MarginY:  36,
		Padding:  18,
	}
}

// Spacing 返回外边距与内边距
func (o Options) Spacing() Spacing {
	return Spacing{MarginX: o.MarginX, MarginY: o.MarginY, Padding: o.Padding}
}

// HostWindow 提供当前视口像素尺寸
type HostWindow interface {
	Size() (width, height int)
}

// Overlay 渐隐说明浮层
type Overlay struct {
	opts     Options
	content  Content
	glyphs   GlyphSource
	metrics  Metrics
	fader    *Fader
	renderer *Renderer
}

// New 创建浮层
//
// 参数：
//   - lines: 显示的文本行
//   - glyphs: 字形源（度量 + 绘制）
//   - ctx: 面板渲染后端
//   - opts: 构造参数
func New(lines []string, glyphs GlyphSource, ctx RenderContext, opts Options) *Overlay {
	o := &Overlay{
		opts:     opts,
		content:  NewContent(lines),
		glyphs:   glyphs,
		metrics:  ResolveMetrics(glyphs, opts.TextSize),
		fader:    NewFader(opts.HoldTime, opts.FadeTime),
		renderer: NewRenderer(ctx, glyphs),
	}

	log.Printf("[Overlay] Created: lines=%d, maxChars=%d, charWidth=%.2f, lineHeight=%.0f",
		o.content.LineCount(), o.content.MaxLineLength(), o.metrics.CharWidth, o.metrics.LineHeight)
	return o
}

// Update 推进淡出计时
func (o *Overlay) Update(dt float64) {
	before := o.fader.Phase()
	o.fader.Update(dt)
	if after := o.fader.Phase(); after != before {
		log.Printf("[Overlay] Phase %s -> %s (elapsed=%.2f)", before, after, o.fader.State().Elapsed)
	}
}

// Reset 重新显示浮层
func (o *Overlay) Reset() {
	o.fader.Reset()
}

// SetContent 替换显示内容并重新显示
func (o *Overlay) SetContent(lines []string) {
	o.content = NewContent(lines)
	o.fader.Reset()
}

// SetTextSize 修改名义字号并重新计算字符格尺寸
func (o *Overlay) SetTextSize(size float64) {
	if size <= 0 || size == o.opts.TextSize {
		return
	}
	o.opts.TextSize = size
	o.metrics = ResolveMetrics(o.glyphs, size)
}

// Alpha 返回当前不透明度
func (o *Overlay) Alpha() float64 {
	return o.fader.Alpha()
}

// Phase 返回当前生命周期阶段
func (o *Overlay) Phase() Phase {
	return o.fader.Phase()
}

// Visible 浮层仍需绘制时返回 true
func (o *Overlay) Visible() bool {
	return o.fader.Alpha() > 0 && !o.content.IsEmpty()
}

// Content 返回当前内容
func (o *Overlay) Content() Content {
	return o.content
}

// Metrics 返回名义字符格尺寸
func (o *Overlay) Metrics() Metrics {
	return o.metrics
}

// Layout 按给定视口计算布局
func (o *Overlay) Layout(width, height int) Layout {
	return ComputeLayout(
		Viewport{Width: float64(width), Height: float64(height)},
		o.content, o.metrics, o.opts.TextSize, o.opts.Spacing(),
	)
}

// Draw 绘制浮层
//
// 已隐藏、内容为空或视口任一边 <= 0 时直接跳过，不产生任何绘制调用。
func (o *Overlay) Draw(win HostWindow) {
	if !o.Visible() {
		return
	}

	width, height := win.Size()
	if width <= 0 || height <= 0 {
		return
	}

	o.renderer.Draw(o.Layout(width, height), o.content, o.fader.Alpha())
}
