// Package middlewares contiene los decoradores HTTP comunes a todas las rutas.
package middlewares

import "net/http"

// Middleware es un decorador de http.Handler.
// Tiene la misma firma que espera chi.Router.Use, así que sirve en ambos lados.
type Middleware func(http.Handler) http.Handler

// Chain aplica middlewares en orden de izquierda a derecha.
// Chain(h, A, B, C) ejecuta: A -> B -> C -> h
// A intercepta primero el request y ve último la respuesta.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	// Se envuelve de atrás hacia adelante para que mws[0] quede afuera.
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// ChainFunc es Chain para un http.HandlerFunc (los métodos de los controllers).
func ChainFunc(hf http.HandlerFunc, mws ...Middleware) http.Handler {
	return Chain(hf, mws...)
}
