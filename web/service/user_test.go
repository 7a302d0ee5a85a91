package service

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thot-edu/campus/database"
	"github.com/thot-edu/campus/database/model"
)

func setup(t *testing.T) {
	dbPath := "test.db"
	os.Remove(dbPath)
	if err := database.InitDB(dbPath); err != nil {
		t.Fatal(err)
	}
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

func countUsers(t *testing.T, email string) int64 {
	var count int64
	err := database.GetDB().Model(model.User{}).Where("email = ?", email).Count(&count).Error
	assert.NoError(t, err)
	return count
}

func TestRegisterValidation(t *testing.T) {
	setup(t)
	defer teardown()

	service := UserService{}

	cases := []struct {
		name string
		form RegisterForm
	}{
		{"short name", RegisterForm{Name: "Bo", Email: "bob@x.com", Password: "1234"}},
		{"bad email", RegisterForm{Name: "Bob", Email: "bob-at-x.com", Password: "1234"}},
		{"short password", RegisterForm{Name: "Bob", Email: "bob@x.com", Password: "123"}},
		{"unknown role", RegisterForm{Name: "Bob", Email: "bob@x.com", Password: "1234", Role: "root"}},
	}

	for _, tc := range cases {
		_, err := service.Register(tc.form)
		var verrs ValidationErrors
		assert.ErrorAs(t, err, &verrs, tc.name)
		assert.NotEmpty(t, verrs, tc.name)
	}

	// no rows were created for any rejected submission
	assert.EqualValues(t, 0, countUsers(t, "bob@x.com"))
}

func TestRegisterDefaultsRole(t *testing.T) {
	setup(t)
	defer teardown()

	service := UserService{}

	user, err := service.Register(RegisterForm{Name: "Bob", Email: "bob@x.com", Password: "1234"})
	assert.NoError(t, err)
	assert.Equal(t, model.RoleRegistered, user.Role)
	assert.NotEqual(t, "1234", user.Password)
	assert.EqualValues(t, 1, countUsers(t, "bob@x.com"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setup(t)
	defer teardown()

	service := UserService{}

	_, err := service.Register(RegisterForm{Name: "Bob", Email: "bob@x.com", Password: "1234"})
	assert.NoError(t, err)

	_, err = service.Register(RegisterForm{Name: "Bobby", Email: "bob@x.com", Password: "5678"})
	assert.Error(t, err)
	assert.EqualValues(t, 1, countUsers(t, "bob@x.com"))
}

func TestAuthenticate(t *testing.T) {
	setup(t)
	defer teardown()

	service := UserService{}

	_, err := service.Register(RegisterForm{Name: "Bob", Email: "bob@x.com", Password: "1234"})
	assert.NoError(t, err)

	user, err := service.Authenticate("bob@x.com", "1234")
	assert.NoError(t, err)
	assert.Equal(t, "bob@x.com", user.Email)
	assert.Equal(t, model.RoleRegistered, user.Role)
}

func TestAuthenticateFailuresIndistinguishable(t *testing.T) {
	setup(t)
	defer teardown()

	service := UserService{}

	_, err := service.Register(RegisterForm{Name: "Bob", Email: "bob@x.com", Password: "1234"})
	assert.NoError(t, err)

	_, errUnknown := service.Authenticate("nobody@x.com", "1234")
	_, errWrongPass := service.Authenticate("bob@x.com", "wrong")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPass)
}

func TestUpdateAdmin(t *testing.T) {
	setup(t)
	defer teardown()

	service := UserService{}

	err := service.UpdateAdmin("Root", "root@x.com", "changeme")
	assert.NoError(t, err)

	user, err := service.Authenticate("root@x.com", "changeme")
	assert.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.Role)

	// second call updates the password in place
	err = service.UpdateAdmin("", "root@x.com", "changedagain")
	assert.NoError(t, err)

	_, err = service.Authenticate("root@x.com", "changeme")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	user, err = service.Authenticate("root@x.com", "changedagain")
	assert.NoError(t, err)
	assert.Equal(t, "Root", user.Name)
	assert.EqualValues(t, 1, countUsers(t, "root@x.com"))
}
