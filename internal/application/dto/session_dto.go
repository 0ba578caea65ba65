package dto

// SignInRequest inicio de sesión del cliente. No lleva contraseña.
type SignInRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage"`
}

// UserResponse usuario con sesión.
type UserResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// SessionResponse estado de la sesión; User es nil sin sesión.
type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
}

// AdminLoginRequest contraseña del panel.
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// AdminLoginResponse token Bearer para las rutas /api/admin.
type AdminLoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"` // segundos
}
