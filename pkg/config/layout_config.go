package config

// 布局配置常量
// 世界坐标：米，Y 轴向上，地面在 y = 0
// 屏幕坐标：像素，Y 轴向下，原点在窗口左上角
const (
	// ScreenWidth 逻辑屏幕宽度（像素）
	ScreenWidth = 960

	// ScreenHeight 逻辑屏幕高度（像素）
	ScreenHeight = 540

	// PixelsPerMeter 每米对应的像素数
	// 960 / 40 = 24 米可见宽度
	PixelsPerMeter = 40.0

	// WorldOriginScreenX 世界原点在屏幕上的 X 坐标
	// 炮台位于 x = 0，左侧留出 2 米
	WorldOriginScreenX = 80.0

	// WorldOriginScreenY 世界原点（地面）在屏幕上的 Y 坐标
	WorldOriginScreenY = 480.0

	// GroundHalfWidth 地面向两侧延伸的长度（米）
	// 远大于可见区域，飞出屏幕的炮弹仍会落地
	GroundHalfWidth = 200.0

	// HUDMarginX HUD 文字左边距
	HUDMarginX = 16.0

	// HUDMarginY HUD 文字上边距
	HUDMarginY = 24.0

	// HUDLineHeight HUD 行高
	HUDLineHeight = 18.0
)

// WorldToScreen 世界坐标 → 屏幕坐标
func WorldToScreen(x, y float64) (float64, float64) {
	return WorldOriginScreenX + x*PixelsPerMeter, WorldOriginScreenY - y*PixelsPerMeter
}

// ScreenToWorld 屏幕坐标 → 世界坐标
func ScreenToWorld(sx, sy float64) (float64, float64) {
	return (sx - WorldOriginScreenX) / PixelsPerMeter, (WorldOriginScreenY - sy) / PixelsPerMeter
}

// VisibleWorldBounds 返回屏幕可见的世界范围
// 返回值：minX, minY, maxX, maxY
func VisibleWorldBounds() (float64, float64, float64, float64) {
	minX, maxY := ScreenToWorld(0, 0)
	maxX, minY := ScreenToWorld(ScreenWidth, ScreenHeight)
	return minX, minY, maxX, maxY
}
