package dto

// ConfiguracionDia assigns one menu to one weekday.
type ConfiguracionDia struct {
	MenuID    uint   `json:"menu_id"    validate:"required"`
	DiaSemana string `json:"dia_semana" validate:"required"`
}

// GuardarAsignacionesRequest replaces a client's whole weekly configuration.
// The save is a transactional full replace, not a merge.
type GuardarAsignacionesRequest struct {
	ClienteID       uint               `json:"cliente_id"      validate:"required"`
	Configuraciones []ConfiguracionDia `json:"configuraciones" validate:"required,min=1,dive"`
}

// AsignacionResponse is one configured (día → menú) entry for a client.
type AsignacionResponse struct {
	ID        uint   `json:"id"`
	ClienteID uint   `json:"cliente_id"`
	MenuID    uint   `json:"menu_id"`
	MenuName  string `json:"menu_nombre"`
	DiaSemana string `json:"dia_semana"`
}
