package dto

type GrupoResponse struct {
	ID            int    `json:"id"`
	GroupName     string `json:"group_name"`
	ParentGroupID *int   `json:"parent_group_id"`
	MarkedAsRoot  bool   `json:"marked_as_root"`
}

// GrupoConHijos nests children for the hierarchy endpoint.
type GrupoConHijos struct {
	GrupoResponse
	Children []*GrupoConHijos `json:"children"`
}
