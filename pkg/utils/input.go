// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TouchZone 触摸区域
// 屏幕左侧四分之一为瞄准区（上半抬高、下半压低），其余区域点击发射
type TouchZone int

const (
	TouchZoneFire TouchZone = iota
	TouchZoneAimUp
	TouchZoneAimDown
)

// ClassifyTouch 判断触摸点所在区域
func ClassifyTouch(x, y, screenWidth, screenHeight int) TouchZone {
	if x*4 >= screenWidth {
		return TouchZoneFire
	}
	if y*2 < screenHeight {
		return TouchZoneAimUp
	}
	return TouchZoneAimDown
}

// KeyboardCannonInput 炮台的键盘与触摸输入
//
// 键位：
//   - W / ↑：炮管抬高
//   - S / ↓：炮管压低
//   - 空格 / 鼠标左键：发射
type KeyboardCannonInput struct {
	ScreenWidth  int
	ScreenHeight int
}

// RotateUpHeld 是否按住抬高键
func (in *KeyboardCannonInput) RotateUpHeld() bool {
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		return true
	}
	return in.anyTouchIn(TouchZoneAimUp)
}

// RotateDownHeld 是否按住压低键
func (in *KeyboardCannonInput) RotateDownHeld() bool {
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		return true
	}
	return in.anyTouchIn(TouchZoneAimDown)
}

// FireJustPressed 本帧是否刚按下发射
func (in *KeyboardCannonInput) FireJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	pressed, x, y := IsJustTouchedOrClicked()
	return pressed && ClassifyTouch(x, y, in.ScreenWidth, in.ScreenHeight) == TouchZoneFire
}

func (in *KeyboardCannonInput) anyTouchIn(zone TouchZone) bool {
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		if ClassifyTouch(x, y, in.ScreenWidth, in.ScreenHeight) == zone {
			return true
		}
	}
	return false
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}
