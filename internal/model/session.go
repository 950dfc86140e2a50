package model

// Session is the authenticated user data carried in the JWT.
type Session struct {
	ID    uint
	Name  string
	Email string
	Role  int
	Uuid  string
	Exp   float64
}
