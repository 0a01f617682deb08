package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	highScoreObject   = "scores"
	highScoreProperty = "best"
)

// highScoreRecord 持久化格式
type highScoreRecord struct {
	Best int `yaml:"best"`
}

// HighScoreStore 最高分存储
// gdataManager 为 nil 时只在内存中记录（降级模式）
type HighScoreStore struct {
	gdataManager *gdata.Manager
	best         int
}

// NewHighScoreStore 创建最高分存储并加载已保存的记录
func NewHighScoreStore(gdataManager *gdata.Manager) *HighScoreStore {
	hs := &HighScoreStore{gdataManager: gdataManager}
	if err := hs.Load(); err != nil {
		log.Printf("[HighScore] Warning: %v (starting from 0)", err)
	}
	return hs
}

// Best 返回最高分
func (hs *HighScoreStore) Best() int {
	return hs.best
}

// Load 从 gdata 读取最高分
func (hs *HighScoreStore) Load() error {
	hs.best = 0
	if hs.gdataManager == nil || !hs.gdataManager.ObjectPropExists(highScoreObject, highScoreProperty) {
		return nil
	}

	data, err := hs.gdataManager.LoadObjectProp(highScoreObject, highScoreProperty)
	if err != nil {
		return fmt.Errorf("failed to load high score: %w", err)
	}

	var record highScoreRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to unmarshal high score: %w", err)
	}
	if record.Best < 0 {
		return fmt.Errorf("invalid stored high score %d", record.Best)
	}

	hs.best = record.Best
	return nil
}

// Submit 提交一次得分，超过最高分时更新并保存
// 返回是否刷新了最高分
func (hs *HighScoreStore) Submit(score int) bool {
	if score <= hs.best {
		return false
	}
	hs.best = score
	if err := hs.Save(); err != nil {
		log.Printf("[HighScore] Warning: %v", err)
	}
	return true
}

// Save 把最高分写入 gdata
func (hs *HighScoreStore) Save() error {
	if hs.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(highScoreRecord{Best: hs.best})
	if err != nil {
		return fmt.Errorf("failed to marshal high score: %w", err)
	}
	if err := hs.gdataManager.SaveObjectProp(highScoreObject, highScoreProperty, data); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}
	return nil
}
