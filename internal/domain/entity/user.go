package entity

// User cliente con sesión iniciada. Existe como máximo uno por proceso.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage,omitempty"`
}
