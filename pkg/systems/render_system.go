package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/cannonbox/pkg/components"
	"github.com/decker502/cannonbox/pkg/config"
	"github.com/decker502/cannonbox/pkg/ecs"
	"github.com/decker502/cannonbox/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	skyColor         = color.RGBA{R: 196, G: 226, B: 245, A: 255}
	groundColor      = color.RGBA{R: 96, G: 140, B: 72, A: 255}
	outlineColor     = color.RGBA{R: 60, G: 40, B: 24, A: 255}
	hudColor         = color.RGBA{R: 20, G: 24, B: 32, A: 255}
	debugLimitColor  = color.RGBA{R: 220, G: 60, B: 60, A: 200}
	debugUprightClr  = color.RGBA{R: 40, G: 160, B: 60, A: 220}
	debugToppledClr  = color.RGBA{R: 230, G: 140, B: 20, A: 220}
	impactRingStroke = float32(3)
)

// RenderSystem 绘制游戏世界与 HUD
//
// 世界坐标（米，Y 向上）经 config.WorldToScreen 转换为屏幕像素。
// 实体的颜色与不透明度来自 SpriteComponent。
type RenderSystem struct {
	em    *ecs.EntityManager
	pixel *ebiten.Image // 1x1 白色纹理，缩放旋转后绘制箱子
	face  text.Face
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)

	return &RenderSystem{
		em:    em,
		pixel: pixel,
		face:  text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw 绘制背景、地面与所有实体
// 绘制顺序（从底到顶）：箱子 → 炮弹 → 炮台 → 击中效果
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	s.drawGround(screen)

	for _, id := range ecs.GetEntitiesWith2[*components.BoxComponent, *components.BodyComponent](s.em) {
		s.drawBox(screen, id)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.BodyComponent](s.em) {
		s.drawProjectile(screen, id)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.CannonComponent, *components.TransformComponent](s.em) {
		s.drawCannon(screen, id)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.ImpactEffectComponent, *components.LifetimeComponent](s.em) {
		s.drawImpactEffect(screen, id)
	}
}

func (s *RenderSystem) drawGround(screen *ebiten.Image) {
	_, groundY := config.WorldToScreen(0, 0)
	vector.DrawFilledRect(screen, 0, float32(groundY), config.ScreenWidth, float32(config.ScreenHeight-groundY), groundColor, false)
}

func (s *RenderSystem) drawBox(screen *ebiten.Image, id ecs.EntityID) {
	bodyComp, ok := ecs.GetComponent[*components.BodyComponent](s.em, id)
	if !ok || bodyComp.Body == nil {
		return
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, id)
	if !ok || sprite.Opacity <= 0 {
		return
	}

	pos := bodyComp.Body.Position()
	rotation := bodyComp.Body.RotationDegrees()
	sx, sy := config.WorldToScreen(pos.X, pos.Y)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Scale(bodyComp.Width*config.PixelsPerMeter, bodyComp.Height*config.PixelsPerMeter)
	// 屏幕 Y 轴向下，逆时针的世界角度在屏幕上取反
	op.GeoM.Rotate(-rotation * math.Pi / 180)
	op.GeoM.Translate(sx, sy)
	op.ColorScale.ScaleWithColor(sprite.Color)
	op.ColorScale.ScaleAlpha(float32(sprite.Opacity))
	screen.DrawImage(s.pixel, op)

	outline := fadeColor(outlineColor, sprite.Opacity)
	corners := BoxCorners(pos.X, pos.Y, bodyComp.Width, bodyComp.Height, rotation)
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		vector.StrokeLine(screen, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), 2, outline, true)
	}
}

func (s *RenderSystem) drawProjectile(screen *ebiten.Image, id ecs.EntityID) {
	bodyComp, ok := ecs.GetComponent[*components.BodyComponent](s.em, id)
	if !ok || bodyComp.Body == nil {
		return
	}
	clr := color.Color(color.Black)
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, id); ok {
		clr = fadeColor(sprite.Color, sprite.Opacity)
	}

	pos := bodyComp.Body.Position()
	sx, sy := config.WorldToScreen(pos.X, pos.Y)
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(bodyComp.Radius*config.PixelsPerMeter), clr, true)
}

func (s *RenderSystem) drawCannon(screen *ebiten.Image, id ecs.EntityID) {
	cannon, ok := ecs.GetComponent[*components.CannonComponent](s.em, id)
	if !ok {
		return
	}
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.em, id)
	if !ok {
		return
	}
	clr := color.Color(color.Black)
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, id); ok {
		clr = fadeColor(sprite.Color, sprite.Opacity)
	}

	barrel := 1.0
	if cannon.SpawnPoint != nil {
		barrel = cannon.SpawnPoint.BarrelLength
	}
	dx, dy := utils.DirectionFromDegrees(transform.Rotation)
	px, py := config.WorldToScreen(transform.X, transform.Y)
	mx, my := config.WorldToScreen(transform.X+dx*barrel, transform.Y+dy*barrel)

	// 底座：从枢轴到地面的支架 + 半圆炮座
	_, gy := config.WorldToScreen(0, 0)
	vector.StrokeLine(screen, float32(px), float32(py), float32(px), float32(gy), 10, clr, false)
	vector.DrawFilledCircle(screen, float32(px), float32(py), float32(0.45*config.PixelsPerMeter), clr, true)
	vector.StrokeLine(screen, float32(px), float32(py), float32(mx), float32(my), float32(0.35*config.PixelsPerMeter), clr, true)
}

func (s *RenderSystem) drawImpactEffect(screen *ebiten.Image, id ecs.EntityID) {
	effect, ok := ecs.GetComponent[*components.ImpactEffectComponent](s.em, id)
	if !ok {
		return
	}
	lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.em, id)
	if !ok {
		return
	}
	clr := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, id); ok {
		clr = sprite.Color
	}

	radius, alpha := ImpactRing(lifetime.CurrentLifetime, lifetime.MaxLifetime, effect.MaxRadius)
	if alpha <= 0 || radius <= 0 {
		return
	}
	sx, sy := config.WorldToScreen(effect.X, effect.Y)
	vector.StrokeCircle(screen, float32(sx), float32(sy), float32(radius*config.PixelsPerMeter), impactRingStroke, fadeColor(clr, alpha), true)
}

// DrawHUD 绘制得分与最高分
func (s *RenderSystem) DrawHUD(screen *ebiten.Image, scoreText string, best int) {
	lines := []string{
		"SCORE " + scoreText,
		fmt.Sprintf("BEST  %0*d", len(scoreText), best),
	}
	for i, line := range lines {
		s.drawText(screen, line, config.HUDMarginX, config.HUDMarginY+float64(i)*config.HUDLineHeight, hudColor)
	}

	hint := "W/S aim  SPACE fire  R restart  F3 debug"
	s.drawText(screen, hint, config.HUDMarginX, config.ScreenHeight-config.HUDLineHeight, hudColor)
}

// DrawDebug 绘制箱子的倾倒阈值辅助线与状态
//
// 尚未倾倒的箱子显示两条阈值线（红）与当前朝上方向（绿）；
// 已倾倒的箱子只显示朝上方向（橙）与状态名。
func (s *RenderSystem) DrawDebug(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.BoxComponent, *components.BodyComponent](s.em) {
		box, _ := ecs.GetComponent[*components.BoxComponent](s.em, id)
		bodyComp, _ := ecs.GetComponent[*components.BodyComponent](s.em, id)
		if box == nil || bodyComp == nil || bodyComp.Body == nil {
			continue
		}

		pos := bodyComp.Body.Position()
		length := math.Max(bodyComp.Width, bodyComp.Height)
		cx, cy := config.WorldToScreen(pos.X, pos.Y)

		if !box.HasBeenToppled {
			for _, limit := range []float64{box.ToppleThreshold, -box.ToppleThreshold} {
				s.drawRay(screen, pos.X, pos.Y, 90+limit, length, debugLimitColor)
			}
		}
		upColor := debugUprightClr
		if box.HasBeenToppled {
			upColor = debugToppledClr
		}
		s.drawRay(screen, pos.X, pos.Y, 90+bodyComp.Body.RotationDegrees(), length*0.8, upColor)

		label := fmt.Sprintf("%s %.0f", box.State, box.Deflection)
		s.drawText(screen, label, cx-float64(len(label))*3.5, cy+4, hudColor)
	}
}

// drawRay 从世界坐标 (x, y) 沿 degrees 方向画一条长 length 米的线
func (s *RenderSystem) drawRay(screen *ebiten.Image, x, y, degrees, length float64, clr color.Color) {
	dx, dy := utils.DirectionFromDegrees(degrees)
	x0, y0 := config.WorldToScreen(x, y)
	x1, y1 := config.WorldToScreen(x+dx*length, y+dy*length)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1.5, clr, true)
}

func (s *RenderSystem) drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.face, op)
}

// BoxCorners 返回旋转矩形四个角的屏幕坐标（逆时针）
func BoxCorners(x, y, width, height, rotation float64) [4][2]float64 {
	cos, sin := utils.DirectionFromDegrees(rotation)
	hw, hh := width/2, height/2

	var corners [4][2]float64
	for i, local := range [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}} {
		wx := x + local[0]*cos - local[1]*sin
		wy := y + local[0]*sin + local[1]*cos
		corners[i][0], corners[i][1] = config.WorldToScreen(wx, wy)
	}
	return corners
}

// ImpactRing 计算击中圆环的半径（米）与不透明度
// 半径按 EaseOutCubic 扩散，不透明度线性衰减
func ImpactRing(elapsed, duration, maxRadius float64) (radius, alpha float64) {
	progress := 1.0
	if duration > 0 {
		progress = utils.Clamp01(elapsed / duration)
	}
	return maxRadius * utils.EaseOutCubic(progress), 1 - progress
}

// fadeColor 按不透明度缩放颜色（预乘 alpha）
func fadeColor(c color.RGBA, opacity float64) color.RGBA {
	a := utils.Clamp01(opacity)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
