package request

type Register struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,password"`
}

type ConfirmEmail struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"verificationCode" binding:"required,len=6"`
}

type Login struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPassword struct {
	Email string `json:"email" binding:"required,email"`
}

type ConfirmPassword struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,password"`
	Code     string `json:"verificationCode" binding:"required,len=6"`
}
