// Package logger provee el logger Zap del servicio con scoping por contexto.
//
// # Decisiones
//
//   - Singleton: una sola instancia global inicializada con Init().
//   - Context Scoping: cada request lleva su propio logger "scoped" (request_id,
//     method, path) inyectado por middlewares.WithLogging.
//   - Environments: "dev" usa consola con colores, "prod" usa JSON.
//
// # Uso
//
// Inicialización (una vez en main.go):
//
//	logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
//	defer logger.Sync()
//
// En controllers/services:
//
//	log := logger.FromWithFields(ctx, logger.Layer("service"), logger.Op("Create"))
//	log.Info("record created", logger.RecordID(rec.ID()))
package logger
