package logging

import (
	"sync"
)

var (
	instance *Logger
	once     sync.Once
	mu       sync.Mutex
)

// InitLogger initializes the global logger with the given configuration.
// Subsequent calls are no-ops.
func InitLogger(config *Config) error {
	var err error
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		instance, err = NewLogger(config)
	})
	return err
}

// GetLogger returns the singleton logger instance.
// If InitLogger was never called, a logger writing to ./logs/lumina.log is created.
func GetLogger() *Logger {
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()

		var err error
		instance, err = NewLogger(&Config{
			Level:      "info",
			File:       "./logs/lumina.log",
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     7,
		})
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
	})

	return instance
}
