package fractal

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/fractal/pkg/embedded"
)

// ShaderPath 嵌入的分形着色器路径
const ShaderPath = "data/shaders/fractal.kage"

// Uniforms 计算一帧的着色器 uniform
//
// 参数：
//   - p: 视图参数
//   - palette: BuildPalette 的结果
//   - width, height: 目标尺寸（像素）
//
// 纯函数，不访问 GPU。
func Uniforms(p *Params, palette []float32, width, height int) map[string]any {
	ratio := 1.0
	if width > 0 && height > 0 {
		ratio = float64(width) / float64(height)
	}

	return map[string]any{
		"Resolution": []float32{float32(width), float32(height)},
		"Center":     []float32{float32(p.Center.X), float32(p.Center.Y)},
		"Scale":      float32(p.Scale),
		"Ratio":      float32(ratio),
		"Iterations": float32(p.Iterations),
		"Power":      float32(p.Power),
		"Style":      float32(p.Style),
		"JuliaC":     []float32{float32(p.Julia.X), float32(p.Julia.Y)},
		"Palette":    palette,
	}
}

// Renderer 用 Kage 着色器绘制全屏分形
type Renderer struct {
	shader  *ebiten.Shader
	palette []float32
	opts    ebiten.DrawRectShaderOptions
}

// NewRenderer 编译着色器源码
func NewRenderer(src []byte, palette []float32) (*Renderer, error) {
	if len(palette) != PaletteSize*3 {
		return nil, fmt.Errorf("palette must have %d components, got %d", PaletteSize*3, len(palette))
	}

	shader, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to compile fractal shader: %w", err)
	}

	return &Renderer{shader: shader, palette: palette}, nil
}

// LoadRenderer 从嵌入资源加载着色器
func LoadRenderer(palette []float32) (*Renderer, error) {
	src, err := embedded.ReadFile(ShaderPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ShaderPath, err)
	}

	r, err := NewRenderer(src, palette)
	if err != nil {
		return nil, err
	}
	log.Printf("[Fractal] Shader loaded from %s", ShaderPath)
	return r, nil
}

// Draw 覆盖整个 screen 绘制分形（不透明，不依赖混合状态）
func (r *Renderer) Draw(screen *ebiten.Image, p *Params) {
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return
	}

	r.opts.Uniforms = Uniforms(p, r.palette, w, h)
	r.opts.Blend = ebiten.BlendCopy
	screen.DrawRectShader(w, h, r.shader, &r.opts)
}
