package overlay

// fadeEpsilon 淡出时长的最小除数，避免 fadeDuration <= 0 时除零
// 此时效果等同于超过停留时间后立即消失
const fadeEpsilon = 1e-6

// Phase 浮层生命周期阶段
type Phase int

const (
	// PhaseActive 完全显示（alpha = 1）
	PhaseActive Phase = iota
	// PhaseFading 正在淡出（0 < alpha < 1）
	PhaseFading
	// PhaseHidden 已隐藏（alpha = 0），只有 Reset 能回到 PhaseActive
	PhaseHidden
)

// String 返回阶段名称（用于日志）
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseFading:
		return "fading"
	case PhaseHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// FadeState 淡出计时状态快照
type FadeState struct {
	Elapsed float64 // 已累计的激活时间（秒）
	Hold    float64 // 完全显示的停留时间（秒）
	Fade    float64 // 淡出时长（秒）
	Alpha   float64 // 当前不透明度 [0, 1]
}

// Fader 基于帧间隔累计时间计算不透明度
//
// 生命周期：Active → (elapsed > hold) → Fading → (alpha 到 0) → Hidden
// Hidden 状态下 Update 不再推进时间，直到调用 Reset。
type Fader struct {
	state FadeState
}

// NewFader 创建淡出计时器
//
// 参数：
//   - hold: 完全显示的停留时间（秒）
//   - fade: 淡出时长（秒），<= 0 时在停留结束后立即隐藏
func NewFader(hold, fade float64) *Fader {
	return &Fader{
		state: FadeState{
			Hold:  hold,
			Fade:  fade,
			Alpha: 1.0,
		},
	}
}

// Update 推进计时并重新计算不透明度
//
// 只在 alpha > 0 时累计时间。负的 dt 会被接受并减少 elapsed。
func (f *Fader) Update(dt float64) {
	if f.state.Alpha <= 0 {
		return
	}

	f.state.Elapsed += dt
	if f.state.Elapsed <= f.state.Hold {
		f.state.Alpha = 1.0
		return
	}

	progress := (f.state.Elapsed - f.state.Hold) / max(f.state.Fade, fadeEpsilon)
	f.state.Alpha = clamp01(1.0 - progress)
}

// Reset 重新激活浮层（elapsed 归零，alpha 恢复为 1）
func (f *Fader) Reset() {
	f.state.Elapsed = 0
	f.state.Alpha = 1.0
}

// Alpha 返回当前不透明度
func (f *Fader) Alpha() float64 {
	return f.state.Alpha
}

// State 返回当前状态快照
func (f *Fader) State() FadeState {
	return f.state
}

// Phase 返回当前生命周期阶段
func (f *Fader) Phase() Phase {
	switch {
	case f.state.Alpha <= 0:
		return PhaseHidden
	case f.state.Alpha < 1:
		return PhaseFading
	default:
		return PhaseActive
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
