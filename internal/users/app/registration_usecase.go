package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"usermgmt/internal/users/domain/entities"
	"usermgmt/internal/users/domain/services"
	"usermgmt/internal/users/ports/api"
	"usermgmt/internal/users/ports/repositories"
	svc "usermgmt/internal/users/ports/services"
	"usermgmt/pkg/logger"

	"go.uber.org/zap"
)

const (
	methodRegister = "Register"

	msgStartRegistration = "starting user registration"
	msgInvalidUsername   = "invalid username provided"
	msgInvalidEmail      = "invalid email format"
	msgInvalidPassword   = "invalid password"
	msgUsernameExists    = "user with this username already exists"
	msgEmailExists       = "user with this email already exists"
	msgDuplicateOnInsert = "duplicate user detected on insert"
	msgUserRegistered    = "user registered successfully"

	msgErrCheckExistingUser = "failed to check existing user"
	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"

	errCtxValidatingUsername = "validating username"
	errCtxValidatingEmail    = "validating email"
	errCtxValidatingPassword = "validating password"
	errCtxCheckingUsername   = "checking existing username"
	errCtxCheckingEmail      = "checking existing email"
	errCtxUsernameRegistered = "username already registered"
	errCtxEmailRegistered    = "email already registered"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
)

// RegistrationUseCaseImpl реализует интерфейс RegistrationUseCase.
type RegistrationUseCaseImpl struct {
	units       repositories.UserUnitOfWork
	passwordSvc svc.PasswordService
}

// NewRegistrationUseCase создает новый экземпляр сервиса регистрации.
func NewRegistrationUseCase(
	units repositories.UserUnitOfWork,
	passwordSvc svc.PasswordService,
) api.RegistrationUseCase {
	return &RegistrationUseCaseImpl{
		units:       units,
		passwordSvc: passwordSvc,
	}
}

// Register создает нового пользователя с предоставленными учетными данными.
// Проверки выполняются в фиксированном порядке username -> email -> password;
// предварительная проверка уникальности и вставка идут в одной транзакции.
func (u *RegistrationUseCaseImpl) Register(ctx context.Context, username, email, password string) (*services.UserView, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("username", username))
	log.Debug(ctx, msgStartRegistration)

	if err := validateUsername(username); err != nil {
		log.Debug(ctx, msgInvalidUsername, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUsername, err)
	}
	if err := validateEmail(email); err != nil {
		log.Debug(ctx, msgInvalidEmail, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingEmail, err)
	}
	if err := validatePassword(password); err != nil {
		log.Debug(ctx, msgInvalidPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingPassword, err)
	}

	var view *services.UserView

	err := u.units.Do(ctx, func(ctx context.Context, users repositories.UserRepository) error {
		// Предварительная проверка дает дружелюбную ошибку на частом пути;
		// источником истины остается уникальное ограничение БД.
		existing, err := users.FindByUsername(ctx, username)
		if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
			log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
			return fmt.Errorf("%s: %w", errCtxCheckingUsername, err)
		}
		if existing != nil {
			log.Debug(ctx, msgUsernameExists)
			return fmt.Errorf("%s: %w", errCtxUsernameRegistered, services.ErrUsernameTaken)
		}

		existing, err = users.FindByEmail(ctx, email)
		if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
			log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
			return fmt.Errorf("%s: %w", errCtxCheckingEmail, err)
		}
		if existing != nil {
			log.Debug(ctx, msgEmailExists)
			return fmt.Errorf("%s: %w", errCtxEmailRegistered, services.ErrEmailTaken)
		}

		hashedPassword, err := u.passwordSvc.Hash(ctx, password)
		if err != nil {
			log.Error(ctx, msgErrHashPassword, zap.Error(err))
			return fmt.Errorf("%s: %w", errCtxHashingPassword, err)
		}

		createdUser, err := users.Create(ctx, &entities.User{
			Username:     username,
			Email:        email,
			PasswordHash: hashedPassword,
		})
		if err != nil {
			if isDuplicate(err) {
				// Гонка между предварительной проверкой и вставкой.
				log.Debug(ctx, msgDuplicateOnInsert, zap.Error(err))
				return err
			}
			log.Error(ctx, msgErrCreateUser, zap.Error(err))
			return fmt.Errorf("%s: %w", errCtxCreatingUser, err)
		}

		view = &services.UserView{
			ID:        createdUser.ID,
			Username:  createdUser.Username,
			Email:     createdUser.Email,
			CreatedAt: createdUser.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(ctx, msgUserRegistered, zap.Int64("userID", view.ID))
	return view, nil
}

// isDuplicate сообщает, является ли ошибка дубликатом пользователя.
func isDuplicate(err error) bool {
	return errors.Is(err, services.ErrUsernameTaken) ||
		errors.Is(err, services.ErrEmailTaken) ||
		errors.Is(err, services.ErrDuplicateUser)
}

// Валидация имени пользователя.
func validateUsername(username string) error {
	if username == "" {
		return entities.ErrEmptyUsername
	}

	length := utf8.RuneCountInString(username)
	if length < entities.MinUsernameLength {
		return entities.ErrUsernameTooShort
	}
	if length > entities.MaxUsernameLength {
		return entities.ErrUsernameTooLong
	}

	return nil
}

// Валидация email.
func validateEmail(email string) error {
	if email == "" {
		return entities.ErrInvalidEmail
	}

	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return entities.ErrInvalidEmail
	}

	return nil
}

// Валидация пароля.
func validatePassword(password string) error {
	length := utf8.RuneCountInString(password)
	if length < services.MinPasswordLength {
		return entities.ErrPasswordTooShort
	}
	if length > services.MaxPasswordLength {
		return entities.ErrPasswordTooLong
	}

	return nil
}

// GetValidateUsernameFunc экспортирует функцию validateUsername для тестирования.
func GetValidateUsernameFunc() func(string) error {
	return validateUsername
}

// GetValidateEmailFunc экспортирует функцию validateEmail для тестирования.
func GetValidateEmailFunc() func(string) error {
	return validateEmail
}

// GetValidatePasswordFunc экспортирует функцию validatePassword для тестирования.
func GetValidatePasswordFunc() func(string) error {
	return validatePassword
}
