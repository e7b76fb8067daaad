package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"classmanager_backend/internals/constants"
	authDTO "classmanager_backend/internals/features/users/auth/dto"
	authHelper "classmanager_backend/internals/features/users/auth/helper"
	authRepo "classmanager_backend/internals/features/users/auth/repository"
	studentModel "classmanager_backend/internals/features/users/students/model"
	studentRepo "classmanager_backend/internals/features/users/students/repository"
	userModel "classmanager_backend/internals/features/users/user/model"
	helper "classmanager_backend/internals/helpers"
	"classmanager_backend/internals/middlewares/metrics"
)

var validate = validator.New()

const msgPasswordTooLong = "Password must be at most 72 bytes"

type AuthService struct {
	DB     *gorm.DB
	Tokens *helper.TokenIssuer
	Log    *logrus.Logger
}

func NewAuthService(db *gorm.DB, tokens *helper.TokenIssuer, log *logrus.Logger) *AuthService {
	return &AuthService{DB: db, Tokens: tokens, Log: log}
}

/* ==========================
   REGISTER
========================== */

// Register membuat user (dan baris students untuk role student) dalam satu transaksi,
// lalu langsung menerbitkan token untuk auto-login.
func (s *AuthService) Register(ctx context.Context, in authDTO.RegisterRequest) (*authDTO.AuthResult, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.FullName = strings.TrimSpace(in.FullName)

	if err := validate.Struct(in); err != nil {
		return nil, helper.ValidationAppError(err)
	}
	role, err := constants.ParseRole(in.Role)
	if err != nil {
		return nil, helper.ErrInvalidRole("Role must be either teacher or student")
	}
	if authHelper.PasswordTooLong(in.Password) {
		return nil, helper.ErrValidation(msgPasswordTooLong)
	}

	hash, err := authHelper.HashPassword(in.Password)
	if err != nil {
		return nil, helper.ErrInternal("hash password", err)
	}

	user := userModel.UserModel{
		UserName: in.Username,
		Password: hash,
		Email:    in.Email,
		FullName: in.FullName,
		Role:     role,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := authRepo.IsUsernameTaken(ctx, tx, user.UserName)
		if err != nil {
			return helper.ErrInternal("check username", err)
		}
		if taken {
			return helper.ErrDuplicateIdentity("Username already exists")
		}
		taken, err = authRepo.IsEmailTaken(ctx, tx, user.Email, 0)
		if err != nil {
			return helper.ErrInternal("check email", err)
		}
		if taken {
			return helper.ErrDuplicateIdentity("Email already exists")
		}

		if err := authRepo.CreateUser(ctx, tx, &user); err != nil {
			if helper.IsDuplicateKey(err) {
				return helper.ErrDuplicateIdentity("Username or email already exists")
			}
			return helper.ErrInternal("create user", err)
		}

		switch role {
		case constants.RoleStudent:
			first, last := authHelper.SplitFullName(user.FullName)
			uid := user.ID
			if err := studentRepo.CreateStudent(ctx, tx, &studentModel.StudentModel{
				FirstName: first,
				LastName:  last,
				Email:     user.Email,
				UserID:    &uid,
			}); err != nil {
				return helper.ErrInternal("create student", err)
			}
		case constants.RoleTeacher:
			// teacher tidak punya baris turunan
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(role.String()).Inc()
	s.Log.WithFields(logrus.Fields{"user_id": user.ID, "role": role}).Info("user registered")
	return s.issue(&user)
}

/* ==========================
   LOGIN (username + password)
========================== */

func (s *AuthService) Authenticate(ctx context.Context, in authDTO.LoginRequest) (*authDTO.AuthResult, error) {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.Password == "" {
		return nil, helper.ErrValidation("Username and password are required")
	}

	user, err := authRepo.FindUserByUsername(ctx, s.DB, in.Username)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, helper.ErrInvalidCredentials()
		}
		return nil, helper.ErrInternal("find user", err)
	}
	if err := authHelper.CheckPasswordHash(user.Password, in.Password); err != nil {
		return nil, helper.ErrInvalidCredentials()
	}
	return s.issue(user)
}

/* ==========================
   ME
========================== */

func (s *AuthService) Me(ctx context.Context, userID uint) (*authDTO.PublicUser, error) {
	user, err := authRepo.FindUserByID(ctx, s.DB, userID)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, helper.ErrNotFound("User not found")
		}
		return nil, helper.ErrInternal("find user", err)
	}
	pub := authDTO.NewPublicUser(user)
	return &pub, nil
}

// UpdateProfile mengubah email dan/atau full name. Kolom lain tidak pernah disentuh.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uint, in authDTO.UpdateProfileRequest) (*authDTO.PublicUser, error) {
	if in.Email != nil {
		e := strings.TrimSpace(*in.Email)
		in.Email = &e
	}
	if in.FullName != nil {
		n := strings.TrimSpace(*in.FullName)
		in.FullName = &n
	}
	if err := validate.Struct(in); err != nil {
		return nil, helper.ValidationAppError(err)
	}
	if in.Email == nil && in.FullName == nil {
		return nil, helper.ErrValidation("Nothing to update")
	}
	if (in.Email != nil && *in.Email == "") || (in.FullName != nil && *in.FullName == "") {
		return nil, helper.ErrValidation("Email and full name cannot be empty")
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := authRepo.FindUserByID(ctx, tx, userID)
		if err != nil {
			if helper.IsNotFound(err) {
				return helper.ErrNotFound("User not found")
			}
			return helper.ErrInternal("find user", err)
		}

		if in.Email != nil {
			taken, err := authRepo.IsEmailTaken(ctx, tx, *in.Email, userID)
			if err != nil {
				return helper.ErrInternal("check email", err)
			}
			if taken {
				return helper.ErrDuplicateIdentity("Email already exists")
			}
		}

		if _, err := authRepo.UpdateUserColumns(ctx, tx, userID, in.Email, in.FullName); err != nil {
			if helper.IsDuplicateKey(err) {
				return helper.ErrDuplicateIdentity("Email already exists")
			}
			return helper.ErrInternal("update user", err)
		}

		if user.Role != constants.RoleStudent {
			return nil
		}
		if in.Email != nil {
			if err := studentRepo.UpdateStudentEmailByUserID(ctx, tx, userID, *in.Email); err != nil {
				return helper.ErrInternal("sync student email", err)
			}
		}
		if in.FullName != nil {
			first, last := authHelper.SplitFullName(*in.FullName)
			if err := studentRepo.UpdateStudentNameByUserID(ctx, tx, userID, first, last); err != nil {
				return helper.ErrInternal("sync student name", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Me(ctx, userID)
}

/* ==========================
   ISSUE TOKEN
========================== */

func (s *AuthService) issue(user *userModel.UserModel) (*authDTO.AuthResult, error) {
	token, err := s.Tokens.Issue(helper.Caller{
		UserID:   user.ID,
		UserName: user.UserName,
		Role:     user.Role,
	})
	if err != nil {
		return nil, helper.ErrInternal("sign token", err)
	}
	return &authDTO.AuthResult{User: authDTO.NewPublicUser(user), Token: token}, nil
}

// DeleteAccount menghapus user; baris students & class_enrollments ikut terhapus via FK cascade.
func (s *AuthService) DeleteAccount(ctx context.Context, userID uint) error {
	removed, err := authRepo.DeleteUser(ctx, s.DB, userID)
	if err != nil {
		return helper.ErrInternal("delete user", err)
	}
	if !removed {
		return helper.ErrNotFound("User not found")
	}
	s.Log.WithField("user_id", userID).Info("user deleted")
	return nil
}
