package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once     sync.Once
	instance *zap.Logger
)

// Init inicializa el logger singleton con la configuración dada.
// Es idempotente: solo la primera llamada tiene efecto.
// cmd/service lo llama después de cargar la config, antes de cablear la app.
func Init(cfg Config) {
	once.Do(func() {
		instance = build(cfg)
	})
}

// Set reemplaza el logger singleton y marca Init como ejecutado.
// Lo usan los tests para capturar logs con un core observer.
func Set(l *zap.Logger) {
	once.Do(func() {})
	instance = l
}

// L retorna el logger singleton.
// Si Init() no fue llamado (tests, CLI), crea un logger por defecto (dev, info).
func L() *zap.Logger {
	if instance == nil {
		Init(Config{Env: "dev", Level: "info"})
	}
	return instance
}

// Named retorna un logger con un nombre de componente.
// El nombre aparece como prefijo en la salida de consola.
func Named(name string) *zap.Logger {
	return L().Named(name)
}

// With retorna el singleton con campos fijos.
// Para loggers de larga vida que no dependen de un request (ej: main, seed).
func With(fields ...zap.Field) *zap.Logger {
	return L().With(fields...)
}

// Sync flushea cualquier buffer pendiente.
// Va con defer en main, después de Init.
func Sync() error {
	if instance != nil {
		return instance.Sync()
	}
	return nil
}
