package dto

// RegisterRequest entrada para registro (password en texto, se hashea en el use case).
// Teléfono: solo dígitos, entre 7 y 15. Avatar y username son opcionales.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Surname  string `json:"surname" validate:"required,max=100"`
	Phone    string `json:"phone" validate:"omitempty,digits,min=7,max=15"`
	Email    string `json:"email" validate:"required,email,max=150"`
	Address  string `json:"address" validate:"omitempty,max=500"`
	Username string `json:"username" validate:"omitempty,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Avatar   string `json:"avatar" validate:"omitempty,oneof='Avatar 1' 'Avatar 2' 'Avatar 3' 'Avatar 4'"`
	Role     string `json:"role" validate:"required,oneof=ADMINISTRATOR CUSTOMER"`
}

// RegisterResponse salida del registro; no emite token.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// LoginRequest entrada para iniciar sesión. El password no restringe longitud:
// cualquier contraseña que no coincida responde credenciales inválidas, sin
// distinguir entre corta, incorrecta o cuenta inexistente.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required"`
}

// UserResponse proyección pública de un usuario autenticado (sin hash).
// Name es el nombre para mostrar: nombre + apellido.
type UserResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"`
	Email  string `json:"email"`
}

// LoginResponse token de sesión más la proyección pública del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserDetailResponse salida completa de un usuario para el CRUD (sin hash).
type UserDetailResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email"`
	Address  string `json:"address,omitempty"`
	Username string `json:"username,omitempty"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role"`
}

// UpdateUserRequest actualización parcial: los campos vacíos conservan el valor previo.
// Si llega Password se re-hashea; si no, el hash existente se mantiene.
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"omitempty,max=100"`
	Surname  string `json:"surname" validate:"omitempty,max=100"`
	Phone    string `json:"phone" validate:"omitempty,digits,min=7,max=15"`
	Email    string `json:"email" validate:"omitempty,email,max=150"`
	Address  string `json:"address" validate:"omitempty,max=500"`
	Username string `json:"username" validate:"omitempty,max=50"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Avatar   string `json:"avatar" validate:"omitempty,oneof='Avatar 1' 'Avatar 2' 'Avatar 3' 'Avatar 4'"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMINISTRATOR CUSTOMER"`
}
