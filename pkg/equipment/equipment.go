package equipment

import "strings"

// Equipment is an inventory record as served by the upstream API. Field names
// follow the upstream's (Spanish) wire contract; this type is the only place
// they appear.
type Equipment struct {
	ID              int        `json:"id"`
	SerialNumber    string     `json:"nro_serie"`
	Brand           string     `json:"marca"`
	Model           string     `json:"modelo"`
	PurchaseDate    string     `json:"fecha_compra"`
	AssociatedRUT   string     `json:"rut_asociado"`
	WarrantyEndDate string     `json:"warranty_end_date"`
	Type            *TypeRef   `json:"id_tipo_equipo"`
	Status          *StatusRef `json:"id_estado"`
	Responsible     *UserRef   `json:"id_usuario_responsable"`
	Branch          *BranchRef `json:"id_sucursal"`
}

type TypeRef struct {
	Name string `json:"nombre_tipo"`
}

type StatusRef struct {
	Name string `json:"nombre_estado"`
}

type UserRef struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type BranchRef struct {
	Name string `json:"nombre"`
}

// Label is the human-readable identity used in titles and audit details.
func (e Equipment) Label() string {
	return strings.TrimSpace(e.Brand + " " + e.Model)
}

// StatusClass buckets the free-form upstream status name into the three
// display bands the inventory table paints.
func (e Equipment) StatusClass() string {
	if e.Status == nil || e.Status.Name == "" {
		return ""
	}
	name := strings.ToLower(e.Status.Name)
	switch {
	case strings.Contains(name, "activo") || strings.Contains(name, "disponible"):
		return "active"
	case strings.Contains(name, "mantenci") || strings.Contains(name, "reparaci"):
		return "warning"
	case strings.Contains(name, "baja") || strings.Contains(name, "inactivo") || strings.Contains(name, "malo"):
		return "danger"
	default:
		return ""
	}
}

// WritePayload is the shape the upstream expects on create and update; nested
// references are written by ID.
type WritePayload struct {
	SerialNumber    string `json:"nro_serie"`
	Brand           string `json:"marca"`
	Model           string `json:"modelo"`
	PurchaseDate    string `json:"fecha_compra,omitempty"`
	AssociatedRUT   string `json:"rut_asociado,omitempty"`
	WarrantyEndDate string `json:"warranty_end_date,omitempty"`
	TypeID          *int   `json:"id_tipo_equipo,omitempty"`
	StatusID        *int   `json:"id_estado,omitempty"`
	ResponsibleID   *int   `json:"usuario_id,omitempty"`
}
