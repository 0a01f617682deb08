//go:build !mobile

// stub.go - 非移动端构建时的占位文件
//
// 普通构建只需要让 ./mobile 包可以被编译；
// 真正的入口在 mobile.go 和 embed.go，仅在 -tags mobile 时编译。
package mobile

// Dummy 空导出函数，保证包在桌面端也有导出符号
func Dummy() {}
