package fractal

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// PaletteSize 着色器调色板的色标数量（与 fractal.kage 中的数组长度一致）
const PaletteSize = 16

// BuildPalette 在 HCL 空间中把配置的色标展开为 PaletteSize 个 RGB 色标
//
// 参数：
//   - stops: 十六进制颜色（#rrggbb），至少 2 个
//
// 返回：
//   - []float32: PaletteSize*3 个分量（r, g, b 交错），可直接作为 vec3 数组 uniform
//   - error: 色标数量不足或颜色格式无效时返回错误
func BuildPalette(stops []string) ([]float32, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("palette needs at least 2 colors, got %d", len(stops))
	}

	colors := make([]colorful.Color, len(stops))
	for i, s := range stops {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("invalid palette color %q: %w", s, err)
		}
		colors[i] = c
	}

	out := make([]float32, 0, PaletteSize*3)
	segments := len(colors) - 1
	for i := 0; i < PaletteSize; i++ {
		t := float64(i) / float64(PaletteSize-1) * float64(segments)
		seg := min(int(math.Floor(t)), segments-1)
		c := colors[seg].BlendHcl(colors[seg+1], t-float64(seg)).Clamped()
		out = append(out, float32(c.R), float32(c.G), float32(c.B))
	}
	return out, nil
}
