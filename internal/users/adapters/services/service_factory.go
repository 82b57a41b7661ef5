package services

import (
	svc "usermgmt/internal/users/ports/services"
)

// ServiceFactory создает все сервисы, необходимые для регистрации.
type ServiceFactory struct {
	passwordService svc.PasswordService
}

// NewServiceFactory создает новую фабрику сервисов.
func NewServiceFactory(bcryptCost int) *ServiceFactory {
	return &ServiceFactory{
		passwordService: NewBcrypt(bcryptCost),
	}
}

// PasswordService возвращает сервис для работы с паролями.
func (f *ServiceFactory) PasswordService() svc.PasswordService {
	return f.passwordService
}
