package game

import (
	"fmt"
	"log"
)

// ScoreDigits 分数显示位数
const ScoreDigits = 7

// DisplaySink 分数文本的显示目标
type DisplaySink interface {
	SetText(text string)
}

// ScoreBoard 一局游戏的累计得分
//
// 每局创建一个实例，注入到 BoxSystem；只在模拟线程中修改，不做加锁。
type ScoreBoard struct {
	total   int
	text    string
	display DisplaySink     // 可为 nil
	best    *HighScoreStore // 可为 nil
}

// NewScoreBoard 创建计分板，并立即把 0 分投射到显示目标
func NewScoreBoard(display DisplaySink, best *HighScoreStore) *ScoreBoard {
	sb := &ScoreBoard{
		display: display,
		best:    best,
	}
	sb.project()
	return sb
}

// AddScore 累加非负分数并刷新显示
// 负数被忽略
func (sb *ScoreBoard) AddScore(points int) {
	if points < 0 {
		log.Printf("[ScoreBoard] Warning: ignoring negative score %d", points)
		return
	}

	sb.total += points
	sb.project()

	if sb.best != nil && sb.best.Submit(sb.total) {
		log.Printf("[ScoreBoard] New best score: %s", sb.text)
	}
}

// Total 返回累计得分
func (sb *ScoreBoard) Total() int {
	return sb.total
}

// Text 返回当前显示文本
func (sb *ScoreBoard) Text() string {
	return sb.text
}

func (sb *ScoreBoard) project() {
	sb.text = FormatScore(sb.total)
	if sb.display != nil {
		sb.display.SetText(sb.text)
	}
}

// FormatScore 格式化为定宽补零的十进制文本，如 100 → "0000100"
// 超过位数时原样输出全部数字
func FormatScore(score int) string {
	return fmt.Sprintf("%0*d", ScoreDigits, score)
}

// TextLabel 最简单的显示目标：保存最近一次设置的文本，由渲染系统读取
type TextLabel struct {
	text string
}

// SetText 实现 DisplaySink
func (l *TextLabel) SetText(text string) {
	l.text = text
}

// Text 返回文本
func (l *TextLabel) Text() string {
	return l.text
}
