package model

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

type User struct {
	BaseModel
	Email        string  `db:"email" json:"email"`
	Password     string  `db:"password" json:"-"` // bcrypt hash, never serialized
	FullName     string  `db:"full_name" json:"full_name"`
	Role         string  `db:"role" json:"role"`
	RefreshToken *string `db:"refresh_token" json:"-"` // Nullable
}
