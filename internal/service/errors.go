package service

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrTaskCompletedToday      = errors.New("task already completed today")
	ErrMissionCompletedThisWeek = errors.New("mission already completed this week")
)
