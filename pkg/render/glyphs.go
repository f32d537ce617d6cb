package render

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/decker502/fractal/pkg/overlay"
)

// aspectProbeSize 测量字符宽高比时使用的字号
const aspectProbeSize = 100.0

// MonoGlyphs 基于 Go Mono 字体的等宽字形源
// 实现 overlay.GlyphSource
type MonoGlyphs struct {
	surface *Surface
	source  *text.GoTextFaceSource
	face    text.GoTextFace
	opts    text.DrawOptions
	aspect  float64
}

// NewMonoGlyphs 加载内置的等宽字体
//
// 参数：
//   - surface: 绘制目标，同时决定文字使用的混合模式
//
// 返回：
//   - *MonoGlyphs: 字形源
//   - error: 字体数据无法解析时返回错误
func NewMonoGlyphs(surface *Surface) (*MonoGlyphs, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load Go Mono font: %w", err)
	}

	g := &MonoGlyphs{
		surface: surface,
		source:  source,
		face: text.GoTextFace{
			Source:    source,
			Size:      aspectProbeSize,
			Direction: text.DirectionLeftToRight,
		},
	}
	g.aspect = text.Advance("M", &g.face) / aspectProbeSize
	return g, nil
}

// CharAspect 返回字符宽高比
func (g *MonoGlyphs) CharAspect() (float64, bool) {
	if g.aspect <= 0 {
		return 0, false
	}
	return g.aspect, true
}

// DrawLine 绘制一行文字，anchor 为第一个字符格的中心（左下角原点）
func (g *MonoGlyphs) DrawLine(line string, anchor overlay.Point, size float64, clr overlay.Color) {
	if g.surface.screen == nil || size <= 0 {
		return
	}

	_, h := g.surface.Size()
	cellWidth := g.aspect * size
	x, y := flipAnchor(anchor, cellWidth, size, float64(h))

	g.face.Size = size
	g.opts.GeoM.Reset()
	g.opts.GeoM.Translate(x, y)
	g.opts.ColorScale.Reset()
	g.opts.ColorScale.Scale(clr.R*clr.A, clr.G*clr.A, clr.B*clr.A, clr.A)
	g.opts.Blend = g.surface.blend

	text.Draw(g.surface.screen, line, &g.face, &g.opts)
}

// flipAnchor 把字符格中心（左下角原点）转换为文字左上角（左上角原点）
func flipAnchor(anchor overlay.Point, cellWidth, size, height float64) (x, y float64) {
	return anchor.X - cellWidth/2, (height - anchor.Y) - size/2
}
