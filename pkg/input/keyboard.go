package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard 每帧轮询键盘并产生动作事件
type Keyboard struct {
	bindings *Bindings
	pressed  []ebiten.Key
	released []ebiten.Key
}

// NewKeyboard 创建键盘轮询器
func NewKeyboard(bindings *Bindings) *Keyboard {
	return &Keyboard{bindings: bindings}
}

// Poll 返回本帧的按下/松开事件
// 必须在 ebiten.Game.Update 中调用
func (k *Keyboard) Poll() []Event {
	k.pressed = inpututil.AppendJustPressedKeys(k.pressed[:0])
	k.released = inpututil.AppendJustReleasedKeys(k.released[:0])
	if len(k.pressed) == 0 && len(k.released) == 0 {
		return nil
	}
	return k.bindings.Translate(k.pressed, k.released)
}
