package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerClick 检查本帧是否刚刚发生点击或触摸
// 优先检测触摸（移动设备），其次鼠标左键
//
// 返回：
//   - clicked: 是否点击
//   - x, y: 点击位置（窗口像素坐标，原点在左上角）
func PointerClick() (clicked bool, x, y int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}
