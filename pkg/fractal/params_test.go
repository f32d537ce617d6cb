package fractal

import (
	"math"
	"testing"

	"github.com/decker502/fractal/pkg/config"
)

const dt = 1.0 / 60.0

// TestDefaultParams 测试默认参数
func TestDefaultParams(t *testing.T) {
	p := DefaultParams()

	if p.Center != (Vec2{0.5, 0}) || p.TargetCenter != p.Center {
		t.Errorf("Center = %+v, TargetCenter = %+v", p.Center, p.TargetCenter)
	}
	if p.Julia != (Vec2{-0.8, 0.156}) {
		t.Errorf("Julia = %+v", p.Julia)
	}
	if p.Scale != 1.25 || p.Zoom != 1 || p.Power != 1 || p.TargetPower != 2 {
		t.Errorf("Scale/Zoom/Power = %v/%v/%v/%v", p.Scale, p.Zoom, p.Power, p.TargetPower)
	}
	if p.Iterations != 100 || p.Style != 0 {
		t.Errorf("Iterations = %d, Style = %d", p.Iterations, p.Style)
	}
}

// TestFromConfigClamps 测试配置越界值被限制
func TestFromConfigClamps(t *testing.T) {
	cfg := config.Default().Fractal
	cfg.Iterations = 5000
	cfg.Style = 9

	p := FromConfig(cfg)
	if p.Iterations != config.MaxIterations {
		t.Errorf("Iterations = %d, 期望 %d", p.Iterations, config.MaxIterations)
	}
	if p.Style != 1 {
		t.Errorf("Style = %d, 期望 1", p.Style)
	}
}

// TestStepIdleConvergesPower 测试空闲时幂次平滑趋近目标
func TestStepIdleConvergesPower(t *testing.T) {
	p := DefaultParams()

	p.Step(dt, InputState{})
	if math.Abs(p.Power-1.05) > 1e-9 {
		t.Errorf("一帧后 Power = %v, 期望 1.05", p.Power)
	}

	for i := 0; i < 600; i++ {
		p.Step(dt, InputState{})
	}
	if math.Abs(p.Power-2) > 1e-6 {
		t.Errorf("Power = %v, 期望收敛到 2", p.Power)
	}
	if p.Scale != 1.25 || p.Center != (Vec2{0.5, 0}) {
		t.Errorf("空闲时视图不应变化: Scale = %v Center = %+v", p.Scale, p.Center)
	}
}

// TestStepPan 测试平移方向和速度
func TestStepPan(t *testing.T) {
	tests := []struct {
		name   string
		in     InputState
		dx, dy float64
	}{
		{"向右", InputState{Right: true}, -1, 0},
		{"向左", InputState{Left: true}, 1, 0},
		{"向上", InputState{Up: true}, 0, -1},
		{"向下", InputState{Down: true}, 0, 1},
		{"左右抵消", InputState{Left: true, Right: true}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			p.Step(dt, tt.in)

			speed := 1.25 * dt
			wantTarget := Vec2{0.5 + tt.dx*speed, tt.dy * speed}
			if math.Abs(p.TargetCenter.X-wantTarget.X) > 1e-12 || math.Abs(p.TargetCenter.Y-wantTarget.Y) > 1e-12 {
				t.Errorf("TargetCenter = %+v, 期望 %+v", p.TargetCenter, wantTarget)
			}

			wantCenter := Vec2{0.5 + tt.dx*speed*0.05, tt.dy * speed * 0.05}
			if math.Abs(p.Center.X-wantCenter.X) > 1e-12 || math.Abs(p.Center.Y-wantCenter.Y) > 1e-12 {
				t.Errorf("Center = %+v, 期望 %+v", p.Center, wantCenter)
			}
		})
	}
}

// TestStepZoom 测试缩放倍率平滑趋近并作用于 Scale
func TestStepZoom(t *testing.T) {
	p := DefaultParams()
	p.Step(dt, InputState{ZoomIn: true})

	wantZoom := 1 + (0.99-1)*0.05
	if math.Abs(p.Zoom-wantZoom) > 1e-12 {
		t.Errorf("Zoom = %v, 期望 %v", p.Zoom, wantZoom)
	}
	if math.Abs(p.Scale-1.25*wantZoom) > 1e-12 {
		t.Errorf("Scale = %v, 期望 %v", p.Scale, 1.25*wantZoom)
	}

	for i := 0; i < 200; i++ {
		p.Step(dt, InputState{ZoomIn: true})
	}
	if p.Scale >= 1.25 {
		t.Errorf("持续放大后 Scale = %v, 期望 < 1.25", p.Scale)
	}

	// 松开后倍率回到 1
	for i := 0; i < 1000; i++ {
		p.Step(dt, InputState{})
	}
	if math.Abs(p.Zoom-1) > 1e-9 {
		t.Errorf("空闲后 Zoom = %v, 期望趋近 1", p.Zoom)
	}

	q := DefaultParams()
	for i := 0; i < 100; i++ {
		q.Step(dt, InputState{ZoomOut: true})
	}
	if q.Scale <= 1.25 {
		t.Errorf("持续缩小后 Scale = %v, 期望 > 1.25", q.Scale)
	}
}

// TestStepPowerTarget 测试按住时幂次目标按 dt 变化
func TestStepPowerTarget(t *testing.T) {
	p := DefaultParams()
	for i := 0; i < 60; i++ {
		p.Step(dt, InputState{PowerUp: true})
	}
	if math.Abs(p.TargetPower-3) > 1e-9 {
		t.Errorf("TargetPower = %v, 期望 3", p.TargetPower)
	}

	for i := 0; i < 30; i++ {
		p.Step(dt, InputState{PowerDown: true})
	}
	if math.Abs(p.TargetPower-2.5) > 1e-9 {
		t.Errorf("TargetPower = %v, 期望 2.5", p.TargetPower)
	}
}

// TestStepIterationsClamp 测试迭代次数每帧 ±1 并限制在范围内
func TestStepIterationsClamp(t *testing.T) {
	p := DefaultParams()

	p.Step(dt, InputState{IterUp: true})
	if p.Iterations != 101 {
		t.Errorf("Iterations = %d, 期望 101", p.Iterations)
	}

	p.Iterations = config.MaxIterations
	p.Step(dt, InputState{IterUp: true})
	if p.Iterations != config.MaxIterations {
		t.Errorf("Iterations = %d, 不应超过 %d", p.Iterations, config.MaxIterations)
	}

	p.Iterations = 1
	p.Step(dt, InputState{IterDown: true})
	if p.Iterations != MinIterations {
		t.Errorf("Iterations = %d, 不应低于 %d", p.Iterations, MinIterations)
	}
}

// TestSetJuliaSeed 测试点击位置映射为 Julia 种子
func TestSetJuliaSeed(t *testing.T) {
	tests := []struct {
		name         string
		x, y, w, h   int
		want         Vec2
		shouldChange bool
	}{
		{"左上角", 0, 0, 800, 600, Vec2{-1, -1}, true},
		{"中心", 400, 300, 800, 600, Vec2{0, 0}, true},
		{"右下角", 800, 600, 800, 600, Vec2{1, 1}, true},
		{"零宽度", 10, 10, 0, 600, Vec2{}, false},
		{"零高度", 10, 10, 800, 0, Vec2{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			before := p.TargetJulia
			p.SetJuliaSeed(tt.x, tt.y, tt.w, tt.h)

			if !tt.shouldChange {
				if p.TargetJulia != before {
					t.Errorf("TargetJulia = %+v, 期望保持 %+v", p.TargetJulia, before)
				}
				return
			}
			if math.Abs(p.TargetJulia.X-tt.want.X) > 1e-12 || math.Abs(p.TargetJulia.Y-tt.want.Y) > 1e-12 {
				t.Errorf("TargetJulia = %+v, 期望 %+v", p.TargetJulia, tt.want)
			}
			if p.Julia != before {
				t.Error("当前种子应在 Step 中平滑靠近，而不是立即改变")
			}
		})
	}
}

// TestJuliaSeedConverges 测试 Julia 种子逐帧靠近目标
func TestJuliaSeedConverges(t *testing.T) {
	p := DefaultParams()
	p.SetJuliaSeed(400, 300, 800, 600)

	p.Step(dt, InputState{})
	wantX := -0.8 + (0-(-0.8))*0.05
	if math.Abs(p.Julia.X-wantX) > 1e-12 {
		t.Errorf("Julia.X = %v, 期望 %v", p.Julia.X, wantX)
	}

	for i := 0; i < 600; i++ {
		p.Step(dt, InputState{})
	}
	if math.Abs(p.Julia.X) > 1e-6 || math.Abs(p.Julia.Y) > 1e-6 {
		t.Errorf("Julia = %+v, 期望收敛到原点", p.Julia)
	}
}

// TestCycleStyle 测试样式循环切换
func TestCycleStyle(t *testing.T) {
	p := DefaultParams()
	want := []int{1, 2, 3, 4, 5, 6, 7, 0, 1}
	for i, w := range want {
		if got := p.CycleStyle(); got != w {
			t.Errorf("第 %d 次 CycleStyle = %d, 期望 %d", i+1, got, w)
		}
	}
	if !p.IsJulia() {
		t.Error("样式 1 应为 Julia 变体")
	}
}

// TestStyleName 测试样式名称
func TestStyleName(t *testing.T) {
	tests := []struct {
		style int
		want  string
	}{
		{0, "Mandelbrot"},
		{1, "Julia"},
		{2, "Burning Ship"},
		{5, "Tricorn Julia"},
		{7, "Celtic Julia"},
		{8, "Unknown"},
		{-1, "Unknown"},
	}
	for _, tt := range tests {
		if got := StyleName(tt.style); got != tt.want {
			t.Errorf("StyleName(%d) = %q, 期望 %q", tt.style, got, tt.want)
		}
	}
}
