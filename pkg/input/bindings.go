package input

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Bindings 按键 -> 动作映射
// 一个按键可以触发多个动作，一个动作可以绑定多个按键
type Bindings struct {
	byKey map[ebiten.Key][]Action
}

// NewBindings 以默认绑定为基础，应用配置中的覆盖项
//
// 参数：
//   - overrides: 动作名 -> 按键名列表；出现的动作整体替换默认按键，空列表表示解除绑定
//
// 返回：
//   - *Bindings: 绑定表
//   - error: 动作名或按键名无效时返回错误
func NewBindings(overrides map[string][]string) (*Bindings, error) {
	names := DefaultKeyNames()

	// 按动作名排序，保证错误信息稳定
	keys := make([]string, 0, len(overrides))
	for name := range overrides {
		keys = append(keys, name)
	}
	sort.Strings(keys)

	for _, name := range keys {
		action := Action(name)
		if !action.IsKnown() {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		names[action] = overrides[name]
	}

	b := &Bindings{byKey: make(map[ebiten.Key][]Action)}
	for _, action := range allActions {
		for _, keyName := range names[action] {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(keyName)); err != nil {
				return nil, fmt.Errorf("action %s: invalid key name %q: %w", action, keyName, err)
			}
			b.byKey[key] = append(b.byKey[key], action)
		}
	}

	return b, nil
}

// Lookup 返回按键绑定的动作
func (b *Bindings) Lookup(key ebiten.Key) []Action {
	return b.byKey[key]
}

// Translate 把本帧按下和松开的按键转换为动作事件
// 先输出按下事件，再输出松开事件
func (b *Bindings) Translate(pressed, released []ebiten.Key) []Event {
	var events []Event
	for _, key := range pressed {
		for _, action := range b.byKey[key] {
			events = append(events, Event{Action: action, Pressed: true})
		}
	}
	for _, key := range released {
		for _, action := range b.byKey[key] {
			events = append(events, Event{Action: action, Pressed: false})
		}
	}
	return events
}
