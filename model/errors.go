package model

import (
	"fmt"
	"golang.org/x/xerrors"
)

/*
MissingColumnError is returned when the trial table lacks a required column
*/
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("trial table must contain column `%v`", e.Column)
}

/*
InvalidPolicyError is returned for ignore policy other than include/exclude
*/
type InvalidPolicyError struct {
	Policy string
}

func (e *InvalidPolicyError) Error() string {
	return fmt.Sprintf("ignore policy must be either %q or %q, got %q", Include, Exclude, e.Policy)
}

/*
InvalidCodeError is returned for a response code which collides with the padding sentinel
*/
type InvalidCodeError struct {
	Session string
	Trial   int
	Code    int
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("session %v trial %v has negative response code %d", e.Session, e.Trial, e.Code)
}

// ErrNoTrials is returned when the trial table is empty
var ErrNoTrials = xerrors.New("trial table has no trials")
