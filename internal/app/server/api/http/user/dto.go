package user

type registerInput struct {
	Body registerRequest
}

type registerRequest struct {
	Email           string `json:"email" doc:"Email пользователя"`
	Password        string `json:"password" doc:"Пароль"`
	ConfirmPassword string `json:"confirmPassword" doc:"Повтор пароля"`
}

type loginInput struct {
	Body loginRequest
}

type loginRequest struct {
	Email    string `json:"email" doc:"Email пользователя"`
	Password string `json:"password" doc:"Пароль"`
}

type userOutput struct {
	Body userResponse
}

type userResponse struct {
	Email   string `json:"email,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type currentUserOutput struct {
	Body currentUserResponse
}

type currentUserResponse struct {
	LoggedIn bool   `json:"loggedIn"`
	Email    string `json:"email,omitempty"`
}
