package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Settings 日志的配置
type Settings struct {
	Path       string
	Name       string
	Ext        string
	TimeFormat string
}

type logLevel int

// 日志级别
const (
	DEBUG logLevel = iota
	INFO
	WARNING
	ERROR
	FATAL
)

// callerDepth 跳过本包内的两层调用，定位到打日志的业务代码
const callerDepth = 2

var (
	logger     = log.New(os.Stdout, "", log.LstdFlags)
	mu         sync.Mutex
	levelNames = []string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}
)

// Setup 打开日志文件，之后的日志同时写到标准输出和文件中
// 文件名由Name、当天日期和Ext拼接而成
func Setup(settings *Settings) {
	fileName := fmt.Sprintf("%s-%s.%s",
		settings.Name,
		time.Now().Format(settings.TimeFormat),
		settings.Ext)
	logFile, err := mustOpen(fileName, settings.Path)
	if err != nil {
		log.Fatalf("logger.Setup err: %s", err)
	}

	mu.Lock()
	defer mu.Unlock()
	logger = log.New(io.MultiWriter(os.Stdout, logFile), "", log.LstdFlags)
}

// prefix 生成形如[INFO][main.go:42]的前缀
func prefix(level logLevel) string {
	_, file, line, ok := runtime.Caller(callerDepth)
	if !ok {
		return fmt.Sprintf("[%s] ", levelNames[level])
	}
	return fmt.Sprintf("[%s][%s:%d] ", levelNames[level], filepath.Base(file), line)
}

// Debug 打印Debug日志
func Debug(v ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetPrefix(prefix(DEBUG))
	logger.Println(v...)
}

// Info 打印常规日志
func Info(v ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetPrefix(prefix(INFO))
	logger.Println(v...)
}

// Warn 打印警告日志
func Warn(v ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetPrefix(prefix(WARNING))
	logger.Println(v...)
}

// Error 打印错误日志
func Error(v ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetPrefix(prefix(ERROR))
	logger.Println(v...)
}

// Fatal 打印错误日志并停止程序
func Fatal(v ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetPrefix(prefix(FATAL))
	logger.Fatalln(v...)
}
