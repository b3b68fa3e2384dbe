package handler

import (
	"taacheck/internal/usecase"
)

var (
	authHandler           *AuthHandler
	sessionHandler        *SessionHandler
	userHandler           *UserHandler
	postHandler           *PostHandler
	serviceRequestHandler *ServiceRequestHandler
	providerHandler       *ProviderHandler
	notificationHandler   *NotificationHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	sessionUseCase *usecase.SessionUseCase,
	userUseCase *usecase.UserUseCase,
	postUseCase *usecase.PostUseCase,
	serviceRequestUseCase *usecase.ServiceRequestUseCase,
	providerUseCase *usecase.ProviderUseCase,
	acceptanceUseCase *usecase.AcceptanceUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	sessionHandler = NewSessionHandler(sessionUseCase)
	userHandler = NewUserHandler(userUseCase)
	postHandler = NewPostHandler(postUseCase)
	serviceRequestHandler = NewServiceRequestHandler(serviceRequestUseCase)
	providerHandler = NewProviderHandler(providerUseCase, acceptanceUseCase)
	notificationHandler = NewNotificationHandler(acceptanceUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetSessionHandler() *SessionHandler {
	return sessionHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetPostHandler() *PostHandler {
	return postHandler
}

func GetServiceRequestHandler() *ServiceRequestHandler {
	return serviceRequestHandler
}

func GetProviderHandler() *ProviderHandler {
	return providerHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}
