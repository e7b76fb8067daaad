package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"classmanager_backend/internals/constants"
	database "classmanager_backend/internals/databases"
	authDTO "classmanager_backend/internals/features/users/auth/dto"
	authHelper "classmanager_backend/internals/features/users/auth/helper"
	studentModel "classmanager_backend/internals/features/users/students/model"
	studentRepo "classmanager_backend/internals/features/users/students/repository"
	userModel "classmanager_backend/internals/features/users/user/model"
	helper "classmanager_backend/internals/helpers"
)

func newTestService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	authHelper.BcryptCost = bcrypt.MinCost

	db, err := database.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewAuthService(db, helper.NewTokenIssuer("test-secret", time.Hour), log), db
}

func registerReq(username, email, fullName, role string) authDTO.RegisterRequest {
	return authDTO.RegisterRequest{
		Username: username,
		Password: "pw123456",
		Email:    email,
		FullName: fullName,
		Role:     role,
	}
}

func TestRegisterTeacherAndLogin(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, registerReq("t1", "t1@example.com", "Tina Teacher", "teacher"))
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, constants.RoleTeacher, res.User.Role)

	caller, err := svc.Tokens.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, caller.UserID)
	assert.Equal(t, "t1", caller.UserName)

	// teacher tidak punya baris students
	var n int64
	require.NoError(t, db.Model(&studentModel.StudentModel{}).Count(&n).Error)
	assert.Zero(t, n)

	login, err := svc.Authenticate(ctx, authDTO.LoginRequest{Username: "t1", Password: "pw123456"})
	require.NoError(t, err)
	assert.Equal(t, res.User, login.User)
	assert.NotEmpty(t, login.Token)
}

func TestRegisterStudentCreatesStudentRow(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, registerReq("s2", "s2@example.com", "Ana  Maria Lopez", "student"))
	require.NoError(t, err)

	s, err := studentRepo.FindStudentByUserID(ctx, db, res.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", s.FirstName)
	assert.Equal(t, "Maria Lopez", s.LastName)
	assert.Equal(t, "s2@example.com", s.Email)
}

func TestRegisterDuplicateIdentity(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("t1", "t1@example.com", "Tina Teacher", "teacher"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerReq("t1", "other@example.com", "Other", "student"))
	require.Error(t, err)
	assert.True(t, helper.IsKind(err, helper.KindDuplicateIdentity))
	assert.Contains(t, err.Error(), "Username already exists")

	_, err = svc.Register(ctx, registerReq("t2", "t1@example.com", "Other", "teacher"))
	require.Error(t, err)
	assert.True(t, helper.IsKind(err, helper.KindDuplicateIdentity))
	assert.Contains(t, err.Error(), "Email already exists")

	// yang pertama tetap bisa login
	_, err = svc.Authenticate(ctx, authDTO.LoginRequest{Username: "t1", Password: "pw123456"})
	assert.NoError(t, err)
}

func TestRegisterFailedStudentLeavesNothing(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("s1", "s1@example.com", "Sam Student", "student"))
	require.NoError(t, err)

	// email sama -> gagal, tidak boleh ada user/student setengah jadi
	_, err = svc.Register(ctx, registerReq("s9", "s1@example.com", "Sam Again", "student"))
	require.Error(t, err)

	var users, students int64
	require.NoError(t, db.Model(&userModel.UserModel{}).Count(&users).Error)
	require.NoError(t, db.Model(&studentModel.StudentModel{}).Count(&students).Error)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(1), students)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("t1", "t1@example.com", "Tina", "admin"))
	assert.True(t, helper.IsKind(err, helper.KindInvalidRole))

	_, err = svc.Register(ctx, registerReq("t1", "not-an-email", "Tina", "teacher"))
	assert.True(t, helper.IsKind(err, helper.KindValidation))

	_, err = svc.Register(ctx, registerReq("", "t1@example.com", "Tina", "teacher"))
	assert.True(t, helper.IsKind(err, helper.KindValidation))

	short := registerReq("t1", "t1@example.com", "Tina", "teacher")
	short.Password = "123"
	_, err = svc.Register(ctx, short)
	assert.True(t, helper.IsKind(err, helper.KindValidation))
}

func TestAuthenticateInvalidCredentials(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("t1", "t1@example.com", "Tina Teacher", "teacher"))
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, authDTO.LoginRequest{Username: "t1", Password: "wrong-password"})
	assert.True(t, helper.IsKind(err, helper.KindInvalidCredentials))

	_, err = svc.Authenticate(ctx, authDTO.LoginRequest{Username: "ghost", Password: "pw123456"})
	assert.True(t, helper.IsKind(err, helper.KindInvalidCredentials))

	_, err = svc.Authenticate(ctx, authDTO.LoginRequest{Username: "t1"})
	assert.True(t, helper.IsKind(err, helper.KindValidation))
}

func TestUpdateProfileSyncsStudentEmail(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, registerReq("s1", "s1@example.com", "Sam Student", "student"))
	require.NoError(t, err)
	_, err = svc.Register(ctx, registerReq("s2", "s2@example.com", "Ana Lopez", "student"))
	require.NoError(t, err)

	email := "sam@example.com"
	user, err := svc.UpdateProfile(ctx, res.User.ID, authDTO.UpdateProfileRequest{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, email, user.Email)
	assert.Equal(t, constants.RoleStudent, user.Role)

	s, err := studentRepo.FindStudentByUserID(ctx, db, res.User.ID)
	require.NoError(t, err)
	assert.Equal(t, email, s.Email)

	taken := "s2@example.com"
	_, err = svc.UpdateProfile(ctx, res.User.ID, authDTO.UpdateProfileRequest{Email: &taken})
	assert.True(t, helper.IsKind(err, helper.KindDuplicateIdentity))

	_, err = svc.UpdateProfile(ctx, res.User.ID, authDTO.UpdateProfileRequest{})
	assert.True(t, helper.IsKind(err, helper.KindValidation))

	_, err = svc.Me(ctx, 9999)
	assert.True(t, helper.IsKind(err, helper.KindNotFound))
}

func TestChangePassword(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, registerReq("t1", "t1@example.com", "Tina Teacher", "teacher"))
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, res.User.ID, authDTO.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "newpass123"})
	assert.True(t, helper.IsKind(err, helper.KindInvalidCredentials))

	require.NoError(t, svc.ChangePassword(ctx, res.User.ID, authDTO.ChangePasswordRequest{CurrentPassword: "pw123456", NewPassword: "newpass123"}))

	_, err = svc.Authenticate(ctx, authDTO.LoginRequest{Username: "t1", Password: "pw123456"})
	assert.True(t, helper.IsKind(err, helper.KindInvalidCredentials))
	_, err = svc.Authenticate(ctx, authDTO.LoginRequest{Username: "t1", Password: "newpass123"})
	assert.NoError(t, err)
}

func TestDeleteAccountCascadesStudent(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, registerReq("s1", "s1@example.com", "Sam Student", "student"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(ctx, res.User.ID))

	var n int64
	require.NoError(t, db.Model(&studentModel.StudentModel{}).Count(&n).Error)
	assert.Zero(t, n)

	err = svc.DeleteAccount(ctx, res.User.ID)
	assert.True(t, helper.IsKind(err, helper.KindNotFound))
}

func TestRegisterShortUsernamesAccepted(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"t", "t1", "s2"} {
		res, err := svc.Register(ctx, registerReq(name, name+"@example.com", "Short Name", "teacher"))
		require.NoError(t, err, name)
		assert.Equal(t, name, res.User.Username)
	}

	long := registerReq(strings.Repeat("u", 51), "long@example.com", "Long Name", "teacher")
	_, err := svc.Register(ctx, long)
	assert.True(t, helper.IsKind(err, helper.KindValidation))
}

func TestPasswordByteLimit(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	// 40 karakter tapi 80 byte
	wide := registerReq("t1", "t1@example.com", "Tina Teacher", "teacher")
	wide.Password = strings.Repeat("é", 40)
	_, err := svc.Register(ctx, wide)
	require.Error(t, err)
	assert.True(t, helper.IsKind(err, helper.KindValidation))

	var n int64
	require.NoError(t, db.Model(&userModel.UserModel{}).Count(&n).Error)
	assert.Zero(t, n)

	edge := registerReq("t1", "t1@example.com", "Tina Teacher", "teacher")
	edge.Password = strings.Repeat("a", 72)
	res, err := svc.Register(ctx, edge)
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, res.User.ID, authDTO.ChangePasswordRequest{
		CurrentPassword: edge.Password,
		NewPassword:     strings.Repeat("é", 40),
	})
	assert.True(t, helper.IsKind(err, helper.KindValidation))
}

func TestUpdateProfileSyncsStudentName(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, registerReq("s1", "s1@example.com", "Sam Student", "student"))
	require.NoError(t, err)

	name := "Samuel  de la Cruz"
	user, err := svc.UpdateProfile(ctx, res.User.ID, authDTO.UpdateProfileRequest{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, name, user.FullName)

	s, err := studentRepo.FindStudentByUserID(ctx, db, res.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Samuel", s.FirstName)
	assert.Equal(t, "de la Cruz", s.LastName)
	assert.Equal(t, "s1@example.com", s.Email)

	blank := "   "
	_, err = svc.UpdateProfile(ctx, res.User.ID, authDTO.UpdateProfileRequest{FullName: &blank})
	assert.True(t, helper.IsKind(err, helper.KindValidation))
	_, err = svc.UpdateProfile(ctx, res.User.ID, authDTO.UpdateProfileRequest{Email: &blank})
	assert.True(t, helper.IsKind(err, helper.KindValidation))

	single := "Sam"
	_, err = svc.UpdateProfile(ctx, res.User.ID, authDTO.UpdateProfileRequest{FullName: &single})
	require.NoError(t, err)
	s, err = studentRepo.FindStudentByUserID(ctx, db, res.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sam", s.FirstName)
	assert.Empty(t, s.LastName)
}
