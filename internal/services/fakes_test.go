package services

import (
	"brigada-service/internal/models"
)

// ============================================================================
// IN-MEMORY REPOSITORY FAKES
// ============================================================================

type fakeBrigadistaRepo struct {
	brigadistas             map[string]*models.Brigadista
	brigadas                map[string]*models.Brigada
	brigadasPorConglomerado map[string][]string
	cedulasPorBrigada       map[string][]string
	err                     error

	singleUpdates  []string
	brigadaUpdates []string
}

func (f *fakeBrigadistaRepo) GetByUID(uid string) (*models.Brigadista, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.brigadistas[uid], nil
}

func (f *fakeBrigadistaRepo) GetNombreByUID(uid string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if b := f.brigadistas[uid]; b != nil {
		return b.Nombre, nil
	}
	return "", nil
}

func (f *fakeBrigadistaRepo) GetBrigada(id string) (*models.Brigada, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.brigadas[id], nil
}

func (f *fakeBrigadistaRepo) ListBrigadaIDsByConglomerado(idConglomerado string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.brigadasPorConglomerado[idConglomerado], nil
}

func (f *fakeBrigadistaRepo) ListCedulasByBrigada(idBrigada string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.cedulasPorBrigada[idBrigada], nil
}

func (f *fakeBrigadistaRepo) ListCedulasByBrigadas(brigadaIDs []string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	cedulas := []string{}
	for _, id := range brigadaIDs {
		cedulas = append(cedulas, f.cedulasPorBrigada[id]...)
	}
	return cedulas, nil
}

func (f *fakeBrigadistaRepo) UpdateTutorialByUID(uid string, completado bool) error {
	if f.err != nil {
		return f.err
	}
	f.singleUpdates = append(f.singleUpdates, uid)
	return nil
}

func (f *fakeBrigadistaRepo) UpdateTutorialByBrigada(idBrigada string, completado bool) error {
	if f.err != nil {
		return f.err
	}
	f.brigadaUpdates = append(f.brigadaUpdates, idBrigada)
	return nil
}

type fakeReferenciaRepo struct {
	puntos  []models.PuntoReferencia
	lastID  string
	err     error
	deleted []string
	updated []models.PuntoReferencia
}

func (f *fakeReferenciaRepo) LastID() (string, error) {
	return f.lastID, f.err
}

func (f *fakeReferenciaRepo) Insert(p *models.PuntoReferencia) error {
	if f.err != nil {
		return f.err
	}
	f.puntos = append(f.puntos, *p)
	return nil
}

func (f *fakeReferenciaRepo) GetByID(id string) (*models.PuntoReferencia, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.puntos {
		if f.puntos[i].ID == id {
			return &f.puntos[i], nil
		}
	}
	return nil, nil
}

func (f *fakeReferenciaRepo) GetOwner(id string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	for i := range f.puntos {
		if f.puntos[i].ID == id {
			return f.puntos[i].CedulaBrigadista, true, nil
		}
	}
	return "", false, nil
}

func (f *fakeReferenciaRepo) Update(p *models.PuntoReferencia) error {
	if f.err != nil {
		return f.err
	}
	f.updated = append(f.updated, *p)
	return nil
}

func (f *fakeReferenciaRepo) Delete(id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeReferenciaRepo) ListByCedulasExcludingTipo(cedulas []string, tipo string) ([]models.PuntoReferencia, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.PuntoReferencia{}
	for _, p := range f.puntos {
		if p.Tipo != tipo && contains(cedulas, p.CedulaBrigadista) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeReferenciaRepo) ListByCedulasAndTipo(cedulas []string, tipo string) ([]models.PuntoReferencia, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.PuntoReferencia{}
	for _, p := range f.puntos {
		if p.Tipo == tipo && contains(cedulas, p.CedulaBrigadista) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeReferenciaRepo) CountByCedulaAndTipo(cedula, tipo string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	count := 0
	for _, p := range f.puntos {
		if p.CedulaBrigadista == cedula && p.Tipo == tipo {
			count++
		}
	}
	return count, nil
}

type fakeTrayectoRepo struct {
	trayectos  []models.Trayecto
	lastID     string
	err        error
	updatedRef string
}

func (f *fakeTrayectoRepo) LastID() (string, error) {
	return f.lastID, f.err
}

func (f *fakeTrayectoRepo) Insert(t *models.Trayecto) error {
	if f.err != nil {
		return f.err
	}
	f.trayectos = append(f.trayectos, *t)
	return nil
}

func (f *fakeTrayectoRepo) UpdateByReferencia(t *models.Trayecto, idReferencia string) error {
	if f.err != nil {
		return f.err
	}
	f.updatedRef = idReferencia
	return nil
}

func (f *fakeTrayectoRepo) GetByID(id string) (*models.Trayecto, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.trayectos {
		if f.trayectos[i].ID == id {
			return &f.trayectos[i], nil
		}
	}
	return nil, nil
}

func (f *fakeTrayectoRepo) ListByPuntoIDs(puntoIDs []string) ([]models.Trayecto, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Trayecto{}
	for _, t := range f.trayectos {
		if contains(puntoIDs, t.IDPuntoReferencia) {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeSubparcelaRepo struct {
	subparcelas    []models.Subparcela
	coberturas     []models.Cobertura
	alteraciones   []models.Alteracion
	lastCobertura  string
	lastAlteracion string
	err            error
}

func (f *fakeSubparcelaRepo) ListByConglomerado(idConglomerado string) ([]models.Subparcela, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Subparcela{}
	for _, sp := range f.subparcelas {
		if sp.IDConglomerado == idConglomerado {
			out = append(out, sp)
		}
	}
	return out, nil
}

func (f *fakeSubparcelaRepo) GetByNombreAndConglomerado(nombre, idConglomerado string) (*models.Subparcela, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.subparcelas {
		if f.subparcelas[i].Nombre == nombre && f.subparcelas[i].IDConglomerado == idConglomerado {
			return &f.subparcelas[i], nil
		}
	}
	return nil, nil
}

func (f *fakeSubparcelaRepo) ListIDsByConglomerado(idConglomerado string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	ids := []string{}
	for _, sp := range f.subparcelas {
		if sp.IDConglomerado == idConglomerado {
			ids = append(ids, sp.ID)
		}
	}
	return ids, nil
}

func (f *fakeSubparcelaRepo) LastCoberturaID() (string, error) {
	if len(f.coberturas) > 0 {
		return f.coberturas[len(f.coberturas)-1].ID, nil
	}
	return f.lastCobertura, nil
}

func (f *fakeSubparcelaRepo) LastAlteracionID() (string, error) {
	if len(f.alteraciones) > 0 {
		return f.alteraciones[len(f.alteraciones)-1].ID, nil
	}
	return f.lastAlteracion, nil
}

func (f *fakeSubparcelaRepo) InsertCoberturas(coberturas []models.Cobertura) error {
	if f.err != nil {
		return f.err
	}
	f.coberturas = append(f.coberturas, coberturas...)
	return nil
}

func (f *fakeSubparcelaRepo) InsertAlteraciones(alteraciones []models.Alteracion) error {
	if f.err != nil {
		return f.err
	}
	f.alteraciones = append(f.alteraciones, alteraciones...)
	return nil
}

func (f *fakeSubparcelaRepo) ListCoberturasBySubparcela(idSubparcela string) ([]models.Cobertura, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Cobertura{}
	for _, c := range f.coberturas {
		if c.IDSubparcela == idSubparcela {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeSubparcelaRepo) ListAlteracionesBySubparcela(idSubparcela string) ([]models.Alteracion, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Alteracion{}
	for _, a := range f.alteraciones {
		if a.IDSubparcela == idSubparcela {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeIndividuoRepo struct {
	arboles           []models.Arbol
	registros         []models.Registro
	lastArbolID       string
	lastRegistroID    string
	insertArbolErr    error
	insertRegistroErr error
}

func (f *fakeIndividuoRepo) LastArbolID() (string, error) {
	return f.lastArbolID, nil
}

func (f *fakeIndividuoRepo) LastRegistroID() (string, error) {
	return f.lastRegistroID, nil
}

func (f *fakeIndividuoRepo) InsertArbol(a *models.Arbol) error {
	if f.insertArbolErr != nil {
		return f.insertArbolErr
	}
	f.arboles = append(f.arboles, *a)
	return nil
}

func (f *fakeIndividuoRepo) InsertRegistro(reg *models.Registro) error {
	if f.insertRegistroErr != nil {
		return f.insertRegistroErr
	}
	f.registros = append(f.registros, *reg)
	return nil
}

func (f *fakeIndividuoRepo) ListBySubparcelas(subparcelaIDs []string) ([]models.Arbol, error) {
	out := []models.Arbol{}
	for _, a := range f.arboles {
		if contains(subparcelaIDs, a.IDSubparcela) {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeMuestraRepo struct {
	muestras []models.Muestra
	lastID   string
	err      error
}

func (f *fakeMuestraRepo) LastID() (string, error) {
	return f.lastID, f.err
}

func (f *fakeMuestraRepo) Insert(m *models.Muestra) error {
	if f.err != nil {
		return f.err
	}
	f.muestras = append(f.muestras, *m)
	return nil
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
