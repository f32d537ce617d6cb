// Package render 把浮层的渲染接口接到 ebiten 上
//
// 浮层布局使用左下角原点、y 向上的坐标系，ebiten 使用左上角原点、
// y 向下的坐标系，转换集中在本包完成。
package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/fractal/pkg/overlay"
)

var (
	// whiteImage 纯色三角形的纹理源
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage 取中心像素，避免采样到边缘
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(image.White)
}

// quadIndices 三角带顺序（LB, LT, RB, RT）对应的两个三角形
var quadIndices = []uint16{0, 1, 2, 1, 2, 3}

// Surface 每帧绑定到屏幕的渲染目标
// 实现 overlay.RenderContext 和 overlay.HostWindow
type Surface struct {
	screen   *ebiten.Image
	vertices []ebiten.Vertex
	blend    ebiten.Blend
	opts     ebiten.DrawTrianglesOptions
}

// NewSurface 创建渲染表面
func NewSurface() *Surface {
	return &Surface{
		vertices: make([]ebiten.Vertex, 4),
		blend:    ebiten.BlendCopy,
	}
}

// Bind 设置本帧的绘制目标
func (s *Surface) Bind(screen *ebiten.Image) {
	s.screen = screen
}

// Size 返回绑定目标的尺寸，未绑定时为 0
func (s *Surface) Size() (int, int) {
	if s.screen == nil {
		return 0, 0
	}
	b := s.screen.Bounds()
	return b.Dx(), b.Dy()
}

// SetBlend 开启 source-over 混合或恢复不透明覆盖
func (s *Surface) SetBlend(enabled bool) {
	if enabled {
		s.blend = ebiten.BlendSourceOver
	} else {
		s.blend = ebiten.BlendCopy
	}
}

// WriteQuad 写入四边形顶点（左下角原点坐标）
func (s *Surface) WriteQuad(v [8]float32) {
	_, h := s.Size()
	for i := range s.vertices {
		x, y := FlipY(v[i*2], v[i*2+1], float32(h))
		s.vertices[i].DstX = x
		s.vertices[i].DstY = y
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
	}
}

// DrawStrip 以给定颜色绘制缓冲中的四边形
func (s *Surface) DrawStrip(clr overlay.Color) {
	if s.screen == nil {
		return
	}

	r, g, b, a := Premultiply(clr)
	for i := range s.vertices {
		s.vertices[i].ColorR = r
		s.vertices[i].ColorG = g
		s.vertices[i].ColorB = b
		s.vertices[i].ColorA = a
	}

	s.opts.Blend = s.blend
	s.screen.DrawTriangles(s.vertices, quadIndices, whiteSubImage, &s.opts)
}

// FlipY 把左下角原点坐标转换为左上角原点坐标
func FlipY(x, y, height float32) (float32, float32) {
	return x, height - y
}

// Premultiply 把非预乘颜色转换为 ebiten 顶点颜色（预乘 alpha）
func Premultiply(c overlay.Color) (r, g, b, a float32) {
	return c.R * c.A, c.G * c.A, c.B * c.A, c.A
}
