package logger

import (
	"log/slog"
	"os"
)

// Init inicializa o logger global.
func Init() {
	// Cria um logger JSON estruturado
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
}

// Info registra uma mensagem de informação.
func Info(msg string, args ...any) {
	slog.Info(msg, args...)
}

// Warn registra um aviso.
func Warn(msg string, args ...any) {
	slog.Warn(msg, args...)
}

// Error registra uma mensagem de erro.
func Error(msg string, args ...any) {
	slog.Error(msg, args...)
}
