//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// androidDataRoot 应用私有数据目录的父目录
const androidDataRoot = "/data/data"

// EnsureStorageDir 在 gdata 打开前创建 saves 目录并确认可写
// gdata 在 Android 上使用 /data/data/{package}/ 但不会创建子目录
func EnsureStorageDir() error {
	savesDir, err := savesDirectory()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(savesDir, 0755); err != nil {
		return fmt.Errorf("failed to create saves directory %s: %w", savesDir, err)
	}

	probe := filepath.Join(savesDir, ".write_test")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("saves directory %s is not writable: %w", savesDir, err)
	}
	return os.Remove(probe)
}

// GetStoragePath 返回应用数据目录，包名无法识别时为空
func GetStoragePath() string {
	pkg, err := androidPackageName()
	if err != nil {
		return ""
	}
	return filepath.Join(androidDataRoot, pkg)
}

func savesDirectory() (string, error) {
	pkg, err := androidPackageName()
	if err != nil {
		return "", fmt.Errorf("failed to detect Android package: %w", err)
	}
	return filepath.Join(androidDataRoot, pkg, "saves"), nil
}

// androidPackageName 从 /proc/self/cmdline 读取进程名（即包名）
func androidPackageName() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}

	// cmdline 以 NUL 分隔参数，第一个参数就是包名
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	name := string(bytes.TrimSpace(data))
	if name == "" {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return name, nil
}
