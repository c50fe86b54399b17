package entity

import "strings"

type Role string

const (
	RoleApprentice   Role = "Apprentice"
	RoleScorer       Role = "Scorer"
	RoleOperator     Role = "Program Operator"
	RoleOrchestrator Role = "Program Orchestrator"
)

// ValidRole reports whether s names one of the program roles.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleApprentice, RoleScorer, RoleOperator, RoleOrchestrator:
		return true
	}
	return false
}

type User struct {
	ID           int    `yaml:"id" json:"id"`
	Name         string `yaml:"name" json:"name"`
	Email        string `yaml:"email" json:"email"`
	Role         Role   `yaml:"role" json:"role"`
	Avatar       string `yaml:"avatar" json:"avatar"`
	PasswordHash string `yaml:"password" json:"-"`
}

// EmailEquals compares emails case-insensitively. Login, the access-request
// duplicate check and provisioning all go through the same comparison.
func (u User) EmailEquals(email string) bool {
	return strings.EqualFold(u.Email, email)
}
