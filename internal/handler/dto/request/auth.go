package request

import (
	"beautypro/internal/domain/user"
	"beautypro/internal/usecase"
)

type RegisterRequest struct {
	Phone    string `json:"phone_number" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
}

func (r *RegisterRequest) ToCommand() usecase.RegisterCommand {
	return usecase.RegisterCommand{
		Phone:    r.Phone,
		Password: r.Password,
		FullName: r.FullName,
	}
}

type LoginRequest struct {
	Phone    string `json:"phone_number" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	phone, err := user.NewPhone(r.Phone)
	if err != nil {
		return user.Credentials{}, err
	}
	return user.NewCredentials(phone, r.Password), nil
}
