package fractal

import "github.com/decker502/fractal/pkg/input"

// InputState 当前按住的持续动作
// 按下置 true，松开置 false，由 Params.Step 每帧读取
type InputState struct {
	Left, Right, Up, Down bool
	ZoomIn, ZoomOut       bool
	PowerUp, PowerDown    bool
	IterUp, IterDown      bool
}

// Apply 记录一次按下或松开
// 单次动作（切换样式、帮助等）不在这里处理，返回 false
func (s *InputState) Apply(ev input.Event) bool {
	var flag *bool
	switch ev.Action {
	case input.ActionPanLeft:
		flag = &s.Left
	case input.ActionPanRight:
		flag = &s.Right
	case input.ActionPanUp:
		flag = &s.Up
	case input.ActionPanDown:
		flag = &s.Down
	case input.ActionZoomIn:
		flag = &s.ZoomIn
	case input.ActionZoomOut:
		flag = &s.ZoomOut
	case input.ActionPowerUp:
		flag = &s.PowerUp
	case input.ActionPowerDown:
		flag = &s.PowerDown
	case input.ActionIterUp:
		flag = &s.IterUp
	case input.ActionIterDown:
		flag = &s.IterDown
	default:
		return false
	}
	*flag = ev.Pressed
	return true
}

// Clear 松开所有动作（窗口失去焦点时使用）
func (s *InputState) Clear() {
	*s = InputState{}
}
