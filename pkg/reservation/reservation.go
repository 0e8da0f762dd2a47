package reservation

// Reservation is an equipment booking as served by the upstream API. Read
// responses nest the equipment and requesting user; writes go by ID.
type Reservation struct {
	ID        int          `json:"id"`
	StartDate string       `json:"fecha_inicio"`
	EndDate   string       `json:"fecha_fin"`
	Reason    string       `json:"motivo"`
	Equipment EquipmentRef `json:"equipo_data"`
	Requester UserRef      `json:"usuario_data"`
}

type EquipmentRef struct {
	ID           int    `json:"id"`
	Brand        string `json:"marca"`
	Model        string `json:"modelo"`
	SerialNumber string `json:"nro_serie"`
}

type UserRef struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type WritePayload struct {
	StartDate   string `json:"fecha_inicio"`
	EndDate     string `json:"fecha_fin"`
	Reason      string `json:"motivo,omitempty"`
	EquipmentID int    `json:"equipo_id"`
	// RequesterID is optional; the upstream defaults it to the token's user.
	RequesterID *int `json:"usuario_id,omitempty"`
}
