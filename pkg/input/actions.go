// Package input 把键盘和指针输入转换为与引擎按键无关的动作事件
//
// 按键绑定由配置（动作名 -> 按键名）决定，宿主每帧调用 Keyboard.Poll
// 取得按下/松开事件，再交给分形参数的输入状态记录。
package input

// Action 输入动作名称（与配置文件中的键一致）
type Action string

// 持续动作：按下期间每帧生效
const (
	ActionPanLeft   Action = "pan_left"
	ActionPanRight  Action = "pan_right"
	ActionPanUp     Action = "pan_up"
	ActionPanDown   Action = "pan_down"
	ActionZoomIn    Action = "zoom_in"
	ActionZoomOut   Action = "zoom_out"
	ActionPowerUp   Action = "power_up"
	ActionPowerDown Action = "power_down"
	ActionIterUp    Action = "iter_up"
	ActionIterDown  Action = "iter_down"
)

// 单次动作：只在按下时触发一次
const (
	ActionCycleStyle       Action = "cycle_style"
	ActionShowHelp         Action = "show_help"
	ActionSaveView         Action = "save_view"
	ActionToggleFullscreen Action = "toggle_fullscreen"
)

// allActions 所有已知动作，顺序即默认绑定的列出顺序
var allActions = []Action{
	ActionPanLeft, ActionPanRight, ActionPanUp, ActionPanDown,
	ActionZoomIn, ActionZoomOut,
	ActionPowerUp, ActionPowerDown,
	ActionIterUp, ActionIterDown,
	ActionCycleStyle, ActionShowHelp, ActionSaveView, ActionToggleFullscreen,
}

// IsKnown 判断动作名是否有效
func (a Action) IsKnown() bool {
	for _, known := range allActions {
		if a == known {
			return true
		}
	}
	return false
}

// IsHeld 持续动作返回 true，单次动作返回 false
func (a Action) IsHeld() bool {
	switch a {
	case ActionCycleStyle, ActionShowHelp, ActionSaveView, ActionToggleFullscreen:
		return false
	default:
		return a.IsKnown()
	}
}

// Event 一次按下或松开
type Event struct {
	Action  Action
	Pressed bool // true 为按下，false 为松开
}

// DefaultKeyNames 默认按键绑定（动作 -> 按键名）
func DefaultKeyNames() map[Action][]string {
	return map[Action][]string{
		ActionPanLeft:          {"A"},
		ActionPanRight:         {"D"},
		ActionPanUp:            {"W"},
		ActionPanDown:          {"S"},
		ActionZoomIn:           {"Z"},
		ActionZoomOut:          {"X"},
		ActionPowerUp:          {"P"},
		ActionPowerDown:        {"O"},
		ActionIterUp:           {"K"},
		ActionIterDown:         {"L"},
		ActionCycleStyle:       {"M"},
		ActionShowHelp:         {"H"},
		ActionSaveView:         {"F5"},
		ActionToggleFullscreen: {"F11"},
	}
}
