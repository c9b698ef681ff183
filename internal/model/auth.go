package model

type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
