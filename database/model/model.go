package model

// Role is the closed set of principal roles. Anonymous visitors are
// "publico"; it is the implicit role of a request with no session.
type Role string

const (
	RolePublic     Role = "publico"
	RoleRegistered Role = "registrado"
	RoleAdmin      Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePublic, RoleRegistered, RoleAdmin:
		return true
	}
	return false
}

// User is a registered account. Password holds the bcrypt hash, never the
// raw credential.
type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" form:"nombre" gorm:"not null"`
	Email    string `json:"email" form:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" form:"password" gorm:"not null"`
	Role     Role   `json:"role" form:"rol" gorm:"not null;default:registrado"`
}

// Visibility of a course towards anonymous visitors.
const (
	VisibilityPublic  = "publico"
	VisibilityPrivate = "privado"
)

type Course struct {
	Id          int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Title       string `json:"titulo" form:"titulo" gorm:"not null"`
	Description string `json:"descripcion" form:"descripcion"`
	Category    string `json:"categoria" form:"categoria"`
	Visibility  string `json:"visibilidad" form:"visibilidad" gorm:"not null;default:publico"`
}

// Enrollment links a registered user to a course. The composite unique
// index closes the duplicate-enrollment race under concurrent requests.
type Enrollment struct {
	Id       int `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId   int `json:"id_usuario" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	CourseId int `json:"id_curso" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
}
