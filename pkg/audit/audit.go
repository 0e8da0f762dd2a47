package audit

// Entry is one audit log record: who did what to which model.
type Entry struct {
	ID     int    `json:"id"`
	User   *User  `json:"usuario"`
	Action string `json:"accion"`
	Model  string `json:"modelo_afectado"`
	Detail string `json:"detalle"`
	Date   string `json:"fecha"`
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}
