package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/game.yaml":          {Data: []byte("box:\n  pointValue: 100\n")},
		"assets/sounds/thud.au":   {Data: []byte(".snd")},
		"other/not_a_resource.md": {Data: []byte("x")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())
	defer func() { initialized = false }()

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Init(nil)
	if IsInitialized() {
		t.Error("Init(nil) should leave the package uninitialized")
	}
}

func TestNotInitialized(t *testing.T) {
	initialized = false

	if _, err := Open("data/game.yaml"); err == nil || err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Open before Init: unexpected error %v", err)
	}
	if _, err := ReadFile("data/game.yaml"); err == nil {
		t.Error("Expected error when calling ReadFile() before Init()")
	}
	if Exists("data/game.yaml") {
		t.Error("Expected Exists() to return false before Init()")
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"data 路径", "data/game.yaml", "box:\n  pointValue: 100\n", false},
		{"去掉 ./ 前缀", "./data/game.yaml", "box:\n  pointValue: 100\n", false},
		{"assets 路径", "assets/sounds/thud.au", ".snd", false},
		{"文件不存在", "data/missing.yaml", "", true},
		{"无效前缀", "other/not_a_resource.md", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestInvalidPrefixMessage(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	_, err := Open("invalid/path/test.png")
	if err == nil {
		t.Fatal("Expected error for invalid path prefix")
	}
	if err.Error() != "unknown resource path prefix: invalid/path/test.png (must start with 'assets/' or 'data/')" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestExists(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	if !Exists("data/game.yaml") {
		t.Error("data/game.yaml should exist")
	}
	if Exists("assets/nonexistent.png") {
		t.Error("Expected Exists() to return false for non-existent file")
	}
}
