package services

import (
	"errors"

	"celustock/internal/domain"
	"celustock/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

var ErrBadCreds = errors.New("invalid email or password")

type AuthService struct {
	Operators *repos.OperatorRepo
}

func (s *AuthService) Login(sid, email, password string) (*domain.Operator, error) {
	o, err := s.Operators.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(o.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Operators.BindSession(sid, o.ID); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Operators.UnbindSession(sid)
}

func (s *AuthService) Current(sid string) (*domain.Operator, error) {
	return s.Operators.SessionOperator(sid)
}
