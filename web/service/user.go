package service

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/thot-edu/campus/database"
	"github.com/thot-edu/campus/database/model"
	"github.com/thot-edu/campus/logger"
	"github.com/thot-edu/campus/util/crypto"
)

// ErrInvalidCredentials covers every authentication failure: unknown
// email, wrong password and lookup errors alike. Callers must not be able
// to tell the causes apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// FieldError is a single registration validation failure. Key is a locale
// message key, resolved at render time.
type FieldError struct {
	Field string
	Key   string
}

// ValidationErrors is the full set of field failures for one submission.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	return "validation failed"
}

// RegisterForm is the registration submission. Role is optional and
// defaults to registrado.
type RegisterForm struct {
	Name     string `form:"nombre" validate:"required,min=3"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=4"`
	Role     string `form:"rol" validate:"omitempty,oneof=publico registrado admin"`
}

var validate = validator.New()

type UserService struct{}

// Authenticate verifies the credentials and returns the matching user.
// It is independent of the transport layer; session establishment is the
// caller's concern.
func (s *UserService) Authenticate(email string, password string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", email).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil, ErrInvalidCredentials
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Register validates the form and creates the user row. On validation
// failure it returns ValidationErrors and leaves the database untouched.
// The new user is not logged in.
func (s *UserService) Register(form RegisterForm) (*model.User, error) {
	if errs := validateRegisterForm(form); len(errs) > 0 {
		return nil, errs
	}

	hash, err := crypto.HashPasswordAsBcrypt(form.Password)
	if err != nil {
		return nil, err
	}

	role := model.Role(form.Role)
	if form.Role == "" {
		role = model.RoleRegistered
	}

	user := &model.User{
		Name:     form.Name,
		Email:    form.Email,
		Password: hash,
		Role:     role,
	}
	if err := database.GetDB().Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser returns a user by id.
func (s *UserService) GetUser(id int) (*model.User, error) {
	db := database.GetDB()
	user := &model.User{}
	if err := db.First(user, id).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateAdmin creates or updates the administrator account with the given
// email. Used by the admin CLI command.
func (s *UserService) UpdateAdmin(name string, email string, password string) error {
	if email == "" {
		return errors.New("email can not be empty")
	} else if password == "" {
		return errors.New("password can not be empty")
	}
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}

	db := database.GetDB()
	user := &model.User{}
	err = db.Model(model.User{}).Where("email = ?", email).First(user).Error
	if database.IsNotFound(err) {
		user = &model.User{
			Name:     name,
			Email:    email,
			Password: hash,
			Role:     model.RoleAdmin,
		}
		return db.Create(user).Error
	} else if err != nil {
		return err
	}

	if name != "" {
		user.Name = name
	}
	user.Password = hash
	user.Role = model.RoleAdmin
	return db.Save(user).Error
}

func validateRegisterForm(form RegisterForm) ValidationErrors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ValidationErrors{{Field: "form", Key: "alerts.genericErrorMessage"}}
	}

	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "Name":
			out = append(out, FieldError{Field: "nombre", Key: "pages.register.errors.name"})
		case "Email":
			out = append(out, FieldError{Field: "email", Key: "pages.register.errors.email"})
		case "Password":
			out = append(out, FieldError{Field: "password", Key: "pages.register.errors.password"})
		case "Role":
			out = append(out, FieldError{Field: "rol", Key: "pages.register.errors.role"})
		}
	}
	return out
}
