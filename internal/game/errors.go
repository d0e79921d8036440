package game

import "errors"

var (
	ErrUnknownSkill  = errors.New("unknown skill")
	ErrUnknownPreset = errors.New("unknown preset")
)
