package fractal

import (
	"github.com/decker502/fractal/pkg/config"
	"github.com/decker502/fractal/pkg/utils"
)

const (
	// smoothing 每帧向目标靠近的比例
	smoothing = 0.05

	// zoomInRate 放大时每帧的目标缩放倍率，缩小时取倒数
	zoomInRate = 0.99

	// MinIterations 迭代次数下限
	MinIterations = 1
)

// styleNames 样式名称，按 CycleStyle 的切换顺序
var styleNames = [config.StyleCount]string{
	"Mandelbrot",
	"Julia",
	"Burning Ship",
	"Burning Ship Julia",
	"Tricorn",
	"Tricorn Julia",
	"Celtic",
	"Celtic Julia",
}

// StyleName 返回样式名称，越界时返回 "Unknown"
func StyleName(style int) string {
	if style < 0 || style >= len(styleNames) {
		return "Unknown"
	}
	return styleNames[style]
}

// Vec2 二维向量（复平面坐标）
type Vec2 struct {
	X, Y float64
}

// lerp 按 smoothing 向目标靠近
func (v Vec2) lerp(target Vec2) Vec2 {
	return Vec2{
		X: utils.Approach(v.X, target.X, smoothing),
		Y: utils.Approach(v.Y, target.Y, smoothing),
	}
}

// Params 分形视图参数
//
// 中心、缩放速度、幂次和 Julia 种子都有目标值，每帧平滑靠近；
// 迭代次数和样式立即生效。
type Params struct {
	Center       Vec2    // 当前视图中心
	TargetCenter Vec2    // 平移目标
	Scale        float64 // 视图缩放（半高对应的复平面长度）
	Zoom         float64 // 每帧缩放倍率，空闲时趋近 1
	Power        float64 // 当前幂次
	TargetPower  float64 // 幂次目标
	Iterations   int     // 迭代次数 [MinIterations, config.MaxIterations]
	Style        int     // 样式编号 [0, config.StyleCount)
	Julia        Vec2    // 当前 Julia 种子
	TargetJulia  Vec2    // Julia 种子目标
}

// FromConfig 根据配置创建初始参数
func FromConfig(cfg config.FractalConfig) *Params {
	center := Vec2{X: cfg.CenterX, Y: cfg.CenterY}
	julia := Vec2{X: cfg.JuliaX, Y: cfg.JuliaY}
	return &Params{
		Center:       center,
		TargetCenter: center,
		Scale:        cfg.Scale,
		Zoom:         1,
		Power:        cfg.Power,
		TargetPower:  cfg.TargetPower,
		Iterations:   utils.ClampInt(cfg.Iterations, MinIterations, config.MaxIterations),
		Style:        utils.Wrap(cfg.Style, config.StyleCount),
		Julia:        julia,
		TargetJulia:  julia,
	}
}

// DefaultParams 返回默认参数
func DefaultParams() *Params {
	return FromConfig(config.Default().Fractal)
}

// Step 推进一帧
//
// 参数：
//   - dt: 帧时长（秒）
//   - in: 当前按住的动作
//
// 平移速度与当前缩放成正比，放大后平移同样的屏幕距离。
func (p *Params) Step(dt float64, in InputState) {
	// 平移
	speed := p.Scale * dt
	if in.Right {
		p.TargetCenter.X -= speed
	}
	if in.Left {
		p.TargetCenter.X += speed
	}
	if in.Up {
		p.TargetCenter.Y -= speed
	}
	if in.Down {
		p.TargetCenter.Y += speed
	}
	p.Center = p.Center.lerp(p.TargetCenter)

	// 缩放
	if in.ZoomIn || in.ZoomOut {
		if in.ZoomIn {
			p.Zoom = utils.Approach(p.Zoom, zoomInRate, smoothing)
		}
		if in.ZoomOut {
			p.Zoom = utils.Approach(p.Zoom, 1/zoomInRate, smoothing)
		}
	} else {
		p.Zoom = utils.Approach(p.Zoom, 1, smoothing)
	}

	// 幂次
	if in.PowerUp {
		p.TargetPower += dt
	}
	if in.PowerDown {
		p.TargetPower -= dt
	}
	p.Power = utils.Approach(p.Power, p.TargetPower, smoothing)

	p.Scale *= p.Zoom
	p.Julia = p.Julia.lerp(p.TargetJulia)

	// 迭代次数
	if in.IterUp {
		p.Iterations++
	}
	if in.IterDown {
		p.Iterations--
	}
	p.Iterations = utils.ClampInt(p.Iterations, MinIterations, config.MaxIterations)
}

// SetJuliaSeed 根据窗口点击位置设置 Julia 种子目标
//
// 参数：
//   - x, y: 点击位置（窗口像素，原点左上角）
//   - width, height: 窗口尺寸；任一为 0 时忽略
func (p *Params) SetJuliaSeed(x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.TargetJulia = Vec2{
		X: float64(x)*2/float64(width) - 1,
		Y: float64(y)*2/float64(height) - 1,
	}
}

// CycleStyle 切换到下一个样式，返回新样式编号
func (p *Params) CycleStyle() int {
	p.Style = utils.Wrap(p.Style+1, config.StyleCount)
	return p.Style
}

// IsJulia 当前样式是否为 Julia 变体
func (p *Params) IsJulia() bool {
	return p.Style%2 == 1
}
