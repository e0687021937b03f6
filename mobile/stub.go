//go:build !mobile

// stub.go - 桌面端构建时的占位文件
//
// 不带 -tags mobile 时 mobile.go 和 embed.go 都不参与编译，
// 此文件保证 ./... 下的包仍然可以构建。
package mobile

// Dummy 与移动端构建导出同名函数
func Dummy() {}
