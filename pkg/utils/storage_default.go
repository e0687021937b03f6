//go:build !android

package utils

// EnsureStorageDir 确保设置存储目录存在
// 非 Android 平台由 gdata 自动创建目录
func EnsureStorageDir() error {
	return nil
}
