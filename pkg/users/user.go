package users

// User is an account as served by the upstream management endpoint. The
// upstream renames several standard fields (nombres/apellidos for names, rol
// for the staff flag, estado for active); those names stop here.
type User struct {
	ID        int     `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName string  `json:"nombres"`
	LastName  string  `json:"apellidos"`
	Admin     bool    `json:"rol"`
	Active    bool    `json:"estado"`
	LastLogin string  `json:"ultimo_acceso"`
	Profile   Profile `json:"perfil"`
}

type Profile struct {
	RUT        string `json:"rut"`
	Area       string `json:"area"`
	Occupation string `json:"ocupacion"`
	PhotoURL   string `json:"foto"`
}

// WritePayload is the management form's write shape; the password is
// write-only upstream and never echoed back.
type WritePayload struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName string  `json:"nombres"`
	LastName  string  `json:"apellidos"`
	Password  string  `json:"password,omitempty"`
	Admin     bool    `json:"rol"`
	Active    bool    `json:"estado"`
	Profile   Profile `json:"perfil"`
}
