package models

// Row types for the remote store. Column names are preserved exactly so the
// service can run against the already-populated schema; the brigadista UID
// column is uppercase and must stay quoted in queries.

type Brigadista struct {
	UID                string `db:"UID" json:"uid"`
	Nombre             string `db:"nombre" json:"nombre"`
	IDBrigada          string `db:"id_brigada" json:"id_brigada"`
	Rol                string `db:"rol" json:"rol"`
	Cedula             string `db:"cedula" json:"cedula"`
	TutorialCompletado bool   `db:"tutorial_completado" json:"tutorial_completado"`
}

type Brigada struct {
	ID             string `db:"id" json:"id"`
	IDConglomerado string `db:"id_conglomerado" json:"id_conglomerado"`
}

// Subparcela coordinates live in text columns and may carry stray units, so
// they stay strings until the coordinate service coerces them.
type Subparcela struct {
	ID             string `db:"id" json:"id"`
	Nombre         string `db:"nombre" json:"nombre"`
	IDConglomerado string `db:"id_conglomerado" json:"id_conglomerado"`
	Latitud        string `db:"latitud" json:"latitud"`
	Longitud       string `db:"longitud" json:"longitud"`
}

type Cobertura struct {
	ID           string `db:"id" json:"id"`
	Nombre       string `db:"nombre" json:"nombre"`
	Porcentaje   int    `db:"porcentaje" json:"porcentaje"`
	IDSubparcela string `db:"id_subparcela" json:"id_subparcela"`
}

type Alteracion struct {
	ID           string `db:"id" json:"id"`
	Nombre       string `db:"nombre" json:"nombre"`
	Severidad    string `db:"severidad" json:"severidad"`
	IDSubparcela string `db:"id_subparcela" json:"id_subparcela"`
}

type Arbol struct {
	ID                 string   `db:"id" json:"id"`
	TamanoIndividuo    *string  `db:"tamaño_individuo" json:"tamaño_individuo"`
	Condicion          *string  `db:"condicion" json:"condicion"`
	Azimut             *float64 `db:"azimut" json:"azimut"`
	DistanciaDelCentro *float64 `db:"distancia_del_centro" json:"distancia_del_centro"`
	Tallo              *string  `db:"tallo" json:"tallo"`
	Diametro           *float64 `db:"diametro" json:"diametro"`
	AlturaTotal        *float64 `db:"altura_total" json:"altura_total"`
	FormaFuste         *string  `db:"forma_fuste" json:"forma_fuste"`
	Dano               *string  `db:"daño" json:"daño"`
	Penetracion        *float64 `db:"penetracion" json:"penetracion"`
	IDSubparcela       string   `db:"id_subparcela" json:"id_subparcela"`
}

type Registro struct {
	ID                  string   `db:"id" json:"id"`
	DistanciaHorizontal *float64 `db:"distancia_horizontal" json:"distancia_horizontal"`
	AnguloVistaAbajo    *float64 `db:"angulo_vista_abajo" json:"angulo_vista_abajo"`
	AnguloVistaArriba   *float64 `db:"angulo_vista_arriba" json:"angulo_vista_arriba"`
	CedulaBrigadista    *string  `db:"cedula_brigadista" json:"cedula_brigadista"`
	IDArbol             string   `db:"id_arbol" json:"id_arbol"`
}

type Muestra struct {
	ID            string `db:"id" json:"id"`
	NombreComun   string `db:"nombre_comun" json:"nombre_comun"`
	Determinacion string `db:"determinacion" json:"determinacion"`
	Observaciones string `db:"observaciones" json:"observaciones"`
	NumColeccion  string `db:"num_coleccion" json:"num_coleccion"`
	IDArbol       string `db:"id_arbol" json:"id_arbol"`
}

type PuntoReferencia struct {
	ID               string   `db:"id" json:"id"`
	Latitud          float64  `db:"latitud" json:"latitud"`
	Longitud         float64  `db:"longitud" json:"longitud"`
	Descripcion      string   `db:"descripcion" json:"descripcion"`
	Error            *float64 `db:"error" json:"error"`
	CedulaBrigadista string   `db:"cedula_brigadista" json:"cedula_brigadista"`
	Tipo             string   `db:"tipo" json:"tipo"`
}

type Trayecto struct {
	ID                string   `db:"id" json:"id"`
	MedioTransporte   string   `db:"medio_transporte" json:"medio_transporte"`
	Duracion          *float64 `db:"duracion" json:"duracion"`
	Distancia         *float64 `db:"distancia" json:"distancia"`
	IDPuntoReferencia string   `db:"id_punto_referencia" json:"id_punto_referencia"`
}

// Point types stored in punto_referencia.tipo.
const (
	TipoReferencia    = "Referencia"
	TipoCentroPoblado = "Centro Poblado"
	TipoCampamento    = "Campamento"
)

// RolJefeBrigada is the only role allowed to broadcast the tutorial flag.
const RolJefeBrigada = "Jefe de Brigada"
