package event

const CampoQueue string = "registro_campo_events"

type CampoEvent struct {
	ID         string         `json:"id"`
	EventType  CampoEventType `json:"event_type"`
	Entidad    string         `json:"entidad"`
	EntidadID  string         `json:"entidad_id"`
	Cedula     string         `json:"cedula,omitempty"`
	Additional map[string]any `json:"additional,omitempty"`
}

type CampoEventType string

const (
	PuntoCreado        CampoEventType = "punto_creado"
	PuntoActualizado   CampoEventType = "punto_actualizado"
	PuntoEliminado     CampoEventType = "punto_eliminado"
	TrayectoCreado     CampoEventType = "trayecto_creado"
	TrayectoModificado CampoEventType = "trayecto_actualizado"
	IndividuoCreado    CampoEventType = "individuo_creado"
	MuestraCreada      CampoEventType = "muestra_creada"
	SubparcelasSync    CampoEventType = "subparcelas_sincronizadas"
)
