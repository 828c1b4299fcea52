// Package repository define las interfaces de repositorio de dominio.
//
// Estas interfaces representan contratos de negocio, independientes del
// almacenamiento subyacente. La única implementación actual vive en
// internal/store/memory.
//
//	┌─────────────────────────────────────────────────────┐
//	│           Services / Controllers                    │
//	└─────────────────────────────────────────────────────┘
//	                        │
//	                        ▼
//	┌─────────────────────────────────────────────────────┐
//	│        domain/repository (interfaces)               │
//	│               RecordRepository                      │
//	└─────────────────────────────────────────────────────┘
//	                        │
//	                        ▼
//	┌─────────────────────────────────────────────────────┐
//	│               store/memory                          │
//	└─────────────────────────────────────────────────────┘
//
// Convenciones:
//   - Context siempre es el primer parámetro
//   - La ausencia (not found) se señala con un bool, no con error
//   - Errores de dominio están en errors.go
package repository
