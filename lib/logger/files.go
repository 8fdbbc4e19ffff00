package logger

import (
	"fmt"
	"os"
	"path/filepath"
)

// 目录不存在时创建目录
func ensureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, os.ModePerm)
	}
	return nil
}

// mustOpen 以追加模式打开日志文件，目录不存在时先创建
func mustOpen(fileName, dir string) (*os.File, error) {
	if _, err := os.Stat(dir); os.IsPermission(err) {
		return nil, fmt.Errorf("permission denied dir: %s", dir)
	}
	if err := ensureDir(dir); err != nil {
		return nil, fmt.Errorf("error during make dir %s, err: %s", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, fileName), os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("fail to open file, err: %s", err)
	}
	return f, nil
}
