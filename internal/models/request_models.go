package models

// Request and response shapes for the HTTP surface. Field names mirror the
// JSON the mobile client already sends.

type VerifyTokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	IDToken  string `json:"idToken"`
}

type UserData struct {
	UID    string `json:"uid"`
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
}

type LogoutRequest struct {
	UID string `json:"uid"`
}

type TutorialRequest struct {
	Completado bool `json:"completado"`
}

// BrigadistaInfo is the flattened brigadista + brigada view returned by
// GET /api/brigadista/info.
type BrigadistaInfo struct {
	Nombre             string `json:"nombre"`
	Brigada            string `json:"brigada"`
	Rol                string `json:"rol"`
	Cedula             string `json:"cedula"`
	IDConglomerado     string `json:"idConglomerado"`
	TutorialCompletado bool   `json:"tutorial_completado"`
}

// TutorialUpdateResult reports whether the flag write covered the caller or
// the whole brigade.
type TutorialUpdateResult struct {
	Updated string `json:"updated"` // "single" or "brigade"
}

// SubparcelaCoordenada is a subparcela row whose coordinates survived
// numeric coercion.
type SubparcelaCoordenada struct {
	ID             string  `json:"id"`
	Nombre         string  `json:"nombre"`
	IDConglomerado string  `json:"id_conglomerado"`
	Latitud        float64 `json:"latitud"`
	Longitud       float64 `json:"longitud"`
}

type CentroPoblado struct {
	Latitud     float64 `json:"latitud"`
	Longitud    float64 `json:"longitud"`
	Descripcion string  `json:"descripcion"`
	Tipo        string  `json:"tipo"`
}

type EliminarReferenciaRequest struct {
	CedulaBrigadista string `json:"cedula_brigadista"`
}

// PuntoConTrayectos attaches a point's trajectories for the conglomerado
// read path; Trayectos is never null, only possibly empty.
type PuntoConTrayectos struct {
	PuntoReferencia
	Trayectos []Trayecto `json:"trayectos"`
}

type CampamentoCheck struct {
	Existe bool   `json:"existe"`
	ID     string `json:"id,omitempty"`
}

type DatosTrayecto struct {
	IDTrayecto       string   `json:"idTrayecto"`
	MedioTransporte  string   `json:"medioTransporte"`
	Duracion         *float64 `json:"duracion"`
	Distancia        *float64 `json:"distancia"`
	CedulaBrigadista string   `json:"cedula_brigadista"`
}

type TrayectoRequest struct {
	DatosTrayecto DatosTrayecto `json:"datosTrayecto"`
	PuntoID       string        `json:"puntoId"`
}

// CoberturaInput / AfectacionInput are the per-subplot characteristic items
// the client syncs. Porcentaje arrives as text ("30", "30%") and is parsed
// by leading digits, matching the client's existing payloads.
type CoberturaInput struct {
	Tipo       string `json:"tipo"`
	Porcentaje string `json:"porcentaje"`
}

type AfectacionInput struct {
	Tipo      string `json:"tipo"`
	Severidad string `json:"severidad"`
}

type SubparcelaCaracteristicas struct {
	Coberturas   []CoberturaInput  `json:"coberturas"`
	Afectaciones []AfectacionInput `json:"afectaciones"`
}

// SincronizarRequest maps subparcela ID to its pending characteristics.
type SincronizarRequest map[string]SubparcelaCaracteristicas

type SincronizarResult struct {
	Coberturas   []Cobertura  `json:"coberturas"`
	Alteraciones []Alteracion `json:"alteraciones"`
}

type ArbolesSubparcela struct {
	IDSubparcela string  `json:"subparcelaId"`
	Arboles      []Arbol `json:"arboles"`
}

type CaracteristicasSubparcela struct {
	Subparcela   *Subparcela  `json:"subparcela"`
	Coberturas   []Cobertura  `json:"coberturas"`
	Alteraciones []Alteracion `json:"alteraciones"`
}

type GuardarIndividuoRequest struct {
	IDIndividuo         string   `json:"idIndividuo"`
	TamanoIndividuo     *string  `json:"tamanoIndividuo"`
	Condicion           *string  `json:"condicion"`
	Azimut              *float64 `json:"azimut"`
	DistanciaCentro     *float64 `json:"distanciaCentro"`
	Tallo               *string  `json:"tallo"`
	Diametro            *float64 `json:"diametro"`
	AlturaTotal         *float64 `json:"alturaTotal"`
	FormaFuste          *string  `json:"formaFuste"`
	Dano                *string  `json:"dano"`
	Penetracion         *float64 `json:"penetracion"`
	SubparcelaID        string   `json:"subparcelaId"`
	DistanciaHorizontal *float64 `json:"distanciaHorizontal"`
	AnguloVistoBajo     *float64 `json:"anguloVistoBajo"`
	AnguloVistoAlto     *float64 `json:"anguloVistoAlto"`
	CedulaBrigadista    string   `json:"cedula_brigadista"`
}

// GuardarIndividuoResult distinguishes full success from "arbol committed,
// registro failed": the registro insert is best-effort and never rolls the
// arbol back.
type GuardarIndividuoResult struct {
	IDArbol       string `json:"id"`
	RegistroOK    bool   `json:"registro_ok"`
	RegistroError string `json:"registro_error,omitempty"`
}

type MuestraRequest struct {
	IDMuestra          string `json:"idMuestra"`
	NombreComun        string `json:"nombreComun"`
	DeterminacionCampo string `json:"determinacionCampo"`
	Observaciones      string `json:"observaciones"`
	NumeroColeccion    string `json:"numeroColeccion"`
	Arbol              string `json:"arbol"`
}
