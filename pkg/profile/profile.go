package profile

// Profile is the current user's own account view (the /perfil/ endpoint).
type Profile struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName string  `json:"nombres"`
	LastName  string  `json:"apellidos"`
	Details   Details `json:"perfil"`
}

type Details struct {
	RUT        string `json:"rut"`
	Area       string `json:"area"`
	Occupation string `json:"ocupacion"`
	PhotoURL   string `json:"foto"`
}
