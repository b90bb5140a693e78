package model

// User is the single opaque user record. There is no authentication;
// the record exists so expenses and budgets carry an owner id.
type User struct {
	ID    string
	Email string
}
