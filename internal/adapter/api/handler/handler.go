package handler

import (
	"subleasehub/internal/usecase"
)

var (
	authHandler      *AuthHandler
	userHandler      *UserHandler
	listingHandler   *ListingHandler
	agreementHandler *AgreementHandler
	contractHandler  *ContractHandler
	messageHandler   *MessageHandler
	fileHandler      *FileHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	listingUseCase *usecase.ListingUseCase,
	agreementUseCase *usecase.AgreementUseCase,
	contractUseCase *usecase.ContractUseCase,
	messageUseCase *usecase.MessageUseCase,
	fileUseCase *usecase.FileUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	listingHandler = NewListingHandler(listingUseCase)
	agreementHandler = NewAgreementHandler(agreementUseCase)
	contractHandler = NewContractHandler(contractUseCase)
	messageHandler = NewMessageHandler(messageUseCase)
	fileHandler = NewFileHandler(fileUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetAgreementHandler() *AgreementHandler {
	return agreementHandler
}

func GetContractHandler() *ContractHandler {
	return contractHandler
}

func GetMessageHandler() *MessageHandler {
	return messageHandler
}

func GetFileHandler() *FileHandler {
	return fileHandler
}
