package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

// LogLevel определяет уровни логирования
type LogLevel int

const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// String возвращает строковое представление уровня логирования
func (l LogLevel) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel разбирает уровень из конфигурации (регистр не важен)
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TRACE, nil
	case "DEBUG":
		return DEBUG, nil
	case "INFO", "":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("unknown log level %q", s)
	}
}

func (l LogLevel) toLogrus() logrus.Level {
	switch l {
	case TRACE:
		return logrus.TraceLevel
	case DEBUG:
		return logrus.DebugLevel
	case WARN:
		return logrus.WarnLevel
	case ERROR:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// levelsFrom возвращает уровни logrus не ниже lowest
func levelsFrom(lowest LogLevel) []logrus.Level {
	threshold := lowest.toLogrus()
	var out []logrus.Level
	for _, lvl := range logrus.AllLevels {
		if lvl <= threshold {
			out = append(out, lvl)
		}
	}
	return out
}

// Options настраивает создание логгера
type Options struct {
	// Dir: каталог файлов логов; пусто, файл не создаётся
	Dir string
	// Console: куда писать консольный вывод (по умолчанию os.Stdout)
	Console         io.Writer
	MinConsoleLevel LogLevel
	MinFileLevel    LogLevel
}

// DefaultOptions: консоль от INFO, файл в logs/ от DEBUG
func DefaultOptions() Options {
	return Options{
		Dir:             "logs",
		Console:         os.Stdout,
		MinConsoleLevel: INFO,
		MinFileLevel:    DEBUG,
	}
}

// Logger представляет логгер компонента с раздельными уровнями консоли и файла
type Logger struct {
	mu        sync.Mutex
	component string
	entry     *logrus.Entry
	console   io.Writer
	file      *os.File

	minConsoleLevel LogLevel
	minFileLevel    LogLevel
}

// NewLogger создаёт логгер компонента с настройками по умолчанию
func NewLogger(component string) (*Logger, error) {
	return NewLoggerWithOptions(component, DefaultOptions())
}

// NewLoggerWithOptions создаёт логгер компонента.
// Файл получает имя <component>_<timestamp>.log.
func NewLoggerWithOptions(component string, opts Options) (*Logger, error) {
	l := newConsoleLogger(component, opts)
	if opts.Dir == "" {
		return l, nil
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, fmt.Errorf("ошибка создания директории %s: %w", opts.Dir, err)
	}
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := filepath.Join(opts.Dir, fmt.Sprintf("%s_%s.log", component, timestamp))
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания файла логов: %w", err)
	}
	l.file = file
	l.rebuildHooks()

	return l, nil
}

// newConsoleLogger собирает логгер без файла; ошибок не бывает
func newConsoleLogger(component string, opts Options) *Logger {
	if opts.Console == nil {
		opts.Console = os.Stdout
	}

	l := &Logger{
		component:       component,
		console:         opts.Console,
		minConsoleLevel: opts.MinConsoleLevel,
		minFileLevel:    opts.MinFileLevel,
	}

	base := logrus.New()
	// весь вывод идёт через хуки, у каждого свой порог
	base.SetOutput(io.Discard)
	base.SetLevel(logrus.TraceLevel)
	l.entry = base.WithField("component", component)
	l.rebuildHooks()
	return l
}

func (l *Logger) rebuildHooks() {
	hooks := make(logrus.LevelHooks)

	console := make(lfshook.WriterMap)
	for _, lvl := range levelsFrom(l.minConsoleLevel) {
		console[lvl] = l.console
	}
	hooks.Add(lfshook.NewHook(console, &logrus.TextFormatter{FullTimestamp: true}))

	if l.file != nil {
		file := make(lfshook.WriterMap)
		for _, lvl := range levelsFrom(l.minFileLevel) {
			file[lvl] = l.file
		}
		hooks.Add(lfshook.NewHook(file, &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}))
	}

	l.entry.Logger.ReplaceHooks(hooks)
}

// SetLevels меняет пороги консоли и файла
func (l *Logger) SetLevels(consoleLevel, fileLevel LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minConsoleLevel = consoleLevel
	l.minFileLevel = fileLevel
	l.rebuildHooks()
}

// Component возвращает имя компонента
func (l *Logger) Component() string {
	return l.component
}

// Entry возвращает запись logrus для структурированных полей
func (l *Logger) Entry() *logrus.Entry {
	return l.entry
}

// Close закрывает файл логов
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.rebuildHooks()
	return err
}

func (l *Logger) Trace(format string, args ...interface{}) { l.entry.Tracef(format, args...) }
func (l *Logger) Debug(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

// Логгер по умолчанию

var (
	defaultMu     sync.RWMutex
	defaultLogger *Logger
)

// InitDefaultLogger создаёт логгер по умолчанию для компонента
func InitDefaultLogger(component string) error {
	return InitDefaultLoggerWithOptions(component, DefaultOptions())
}

// InitDefaultLoggerWithOptions создаёт логгер по умолчанию с настройками
func InitDefaultLoggerWithOptions(component string, opts Options) error {
	logger, err := NewLoggerWithOptions(component, opts)
	if err != nil {
		return err
	}

	defaultMu.Lock()
	old := defaultLogger
	defaultLogger = logger
	defaultMu.Unlock()

	if old != nil {
		old.Close()
	}
	return nil
}

// CloseDefaultLogger закрывает логгер по умолчанию
func CloseDefaultLogger() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger != nil {
		defaultLogger.Close()
		defaultLogger = nil
	}
}

// Default возвращает логгер по умолчанию; без инициализации пишет только в консоль
func Default() *Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = newConsoleLogger("default", DefaultOptions())
	}
	return defaultLogger
}

func Trace(format string, args ...interface{}) { Default().Trace(format, args...) }
func Debug(format string, args ...interface{}) { Default().Debug(format, args...) }
func Info(format string, args ...interface{})  { Default().Info(format, args...) }
func Warn(format string, args ...interface{})  { Default().Warn(format, args...) }
func Error(format string, args ...interface{}) { Default().Error(format, args...) }
