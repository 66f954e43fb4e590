package services

import (
	"errors"

	"github.com/idalopban/NutriKallpa-sub005/config"
	"github.com/idalopban/NutriKallpa-sub005/models"
	"github.com/idalopban/NutriKallpa-sub005/utils"
)

func RegisterUser(email, password, firstName, lastName, licenseNumber string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:         email,
		Password:      hashedPassword,
		FirstName:     firstName,
		LastName:      lastName,
		LicenseNumber: licenseNumber,
		Disabled:      false,
	}

	result := config.DB.Create(&user)
	return result.Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.Email)
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
