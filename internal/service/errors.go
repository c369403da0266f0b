package service

import "errors"

// Sentinel errors the handlers translate into HTTP outcomes. Anything else
// bubbling out of a service is a server-side fault (500).
var (
	// ErrDatosInvalidos: missing or malformed input. User-correctable.
	ErrDatosInvalidos = errors.New("datos inválidos")

	// ErrSinMenusConfigurados: valid input but no assignment matched any of
	// the requested days. User-correctable (configure assignments first),
	// not a system fault.
	ErrSinMenusConfigurados = errors.New("no se encontraron menús configurados para los días seleccionados")
)
