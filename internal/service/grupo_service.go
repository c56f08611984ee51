package service

import (
	"context"
	"errors"

	"mykonos/internal/dto"
	"mykonos/internal/model"
	"mykonos/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// GrupoService exposes the category tree. Traversals run over the full
// adjacency list in memory with an explicit visited set — nothing in the
// schema prevents a corrupted parent_group_id chain from forming a cycle, and
// an unguarded expansion over one would never terminate.
type GrupoService interface {
	Listar(ctx context.Context) ([]dto.GrupoResponse, error)
	Raices(ctx context.Context) ([]dto.GrupoResponse, error)
	Jerarquia(ctx context.Context) ([]*dto.GrupoConHijos, error)
	ObtenerPorID(ctx context.Context, id int) (*dto.GrupoResponse, error)

	// ExpandirGrupo resolves a category name to the ids of every node with
	// that name plus all transitive descendants. An unknown name yields an
	// empty slice, not an error.
	ExpandirGrupo(ctx context.Context, nombre string) ([]int, error)
}

type grupoService struct {
	repo repository.GrupoRepository
}

func NewGrupoService(repo repository.GrupoRepository) GrupoService {
	return &grupoService{repo: repo}
}

func (s *grupoService) Listar(ctx context.Context) ([]dto.GrupoResponse, error) {
	grupos, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toGrupoResponses(grupos), nil
}

func (s *grupoService) Raices(ctx context.Context) ([]dto.GrupoResponse, error) {
	grupos, err := s.repo.ListRoots(ctx)
	if err != nil {
		return nil, err
	}
	return toGrupoResponses(grupos), nil
}

func (s *grupoService) ObtenerPorID(ctx context.Context, id int) (*dto.GrupoResponse, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	resp := toGrupoResponse(*g)
	return &resp, nil
}

// Jerarquia nests every group under its parent. Roots are nodes with a NULL
// parent or an explicit root mark; children of unknown parents are dropped.
func (s *grupoService) Jerarquia(ctx context.Context) ([]*dto.GrupoConHijos, error) {
	grupos, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	nodos := make(map[int]*dto.GrupoConHijos, len(grupos))
	for _, g := range grupos {
		nodos[g.ID] = &dto.GrupoConHijos{
			GrupoResponse: toGrupoResponse(g),
			Children:      []*dto.GrupoConHijos{},
		}
	}

	var raices []*dto.GrupoConHijos
	for _, g := range grupos {
		nodo := nodos[g.ID]
		if g.EsRaiz() {
			raices = append(raices, nodo)
			continue
		}
		if padre, ok := nodos[*g.ParentGroupID]; ok {
			padre.Children = append(padre.Children, nodo)
		}
	}
	return raices, nil
}

func (s *grupoService) ExpandirGrupo(ctx context.Context, nombre string) ([]int, error) {
	grupos, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	hijos := make(map[int][]int, len(grupos))
	var semillas []int
	for _, g := range grupos {
		if g.ParentGroupID != nil {
			hijos[*g.ParentGroupID] = append(hijos[*g.ParentGroupID], g.ID)
		}
		if g.GroupName == nombre {
			semillas = append(semillas, g.ID)
		}
	}
	if len(semillas) == 0 {
		return nil, nil
	}

	// Iterative closure with a visited set: a cyclic parent chain degrades to
	// a logged anomaly instead of a hang.
	visitados := make(map[int]bool)
	cola := append([]int(nil), semillas...)
	var ids []int
	for len(cola) > 0 {
		id := cola[0]
		cola = cola[1:]
		if visitados[id] {
			log.Warn().Int("group_id", id).Msg("ciclo detectado en arbol de grupos")
			continue
		}
		visitados[id] = true
		ids = append(ids, id)
		cola = append(cola, hijos[id]...)
	}
	return ids, nil
}

func toGrupoResponse(g model.Grupo) dto.GrupoResponse {
	return dto.GrupoResponse{
		ID:            g.ID,
		GroupName:     g.GroupName,
		ParentGroupID: g.ParentGroupID,
		MarkedAsRoot:  g.MarkedAsRoot,
	}
}

func toGrupoResponses(grupos []model.Grupo) []dto.GrupoResponse {
	out := make([]dto.GrupoResponse, 0, len(grupos))
	for _, g := range grupos {
		out = append(out, toGrupoResponse(g))
	}
	return out
}
