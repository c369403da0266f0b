package model

// Valid weekday labels for menu assignments. The localized strings are part
// of the wire format: clients send and receive these exact values.
const (
	DiaLunes     = "Lunes"
	DiaMartes    = "Martes"
	DiaMiercoles = "Miércoles"
	DiaJueves    = "Jueves"
	DiaViernes   = "Viernes"
	DiaSabado    = "Sábado"
	DiaDomingo   = "Domingo"
)

// DiasSemana lists the seven valid labels in calendar order.
var DiasSemana = []string{
	DiaLunes, DiaMartes, DiaMiercoles, DiaJueves, DiaViernes, DiaSabado, DiaDomingo,
}

// DiaSemanaValido reports whether d is one of the seven recognized labels.
func DiaSemanaValido(d string) bool {
	for _, dia := range DiasSemana {
		if d == dia {
			return true
		}
	}
	return false
}

// AsignacionMenu ties a (cliente, día) pair to a menu. At most one menu per
// pair — saving a client's configuration is a transactional full replace,
// never a merge.
type AsignacionMenu struct {
	ID        uint   `gorm:"primaryKey"`
	ClienteID uint   `gorm:"not null;uniqueIndex:idx_cliente_dia"`
	MenuID    uint   `gorm:"not null;index"`
	DiaSemana string `gorm:"type:varchar(12);not null;uniqueIndex:idx_cliente_dia"`

	Menu *Menu `gorm:"foreignKey:MenuID"`
}

func (AsignacionMenu) TableName() string { return "asignaciones_menu" }
