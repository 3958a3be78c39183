package usecase

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("player not found")
	ErrAmbiguousName = errors.New("ambiguous player name")
	ErrEmptyResult   = errors.New("no available players match")
	ErrSlotFull      = errors.New("roster slot is full")
	ErrDataProvider  = errors.New("stats provider unavailable")
)
