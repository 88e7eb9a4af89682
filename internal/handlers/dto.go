package handlers

import (
	"fmt"

	"github.com/gorilla/schema"

	"github.com/md-zeon/sweeper/internal/game"
)

// NewGameDTO accepts either a named preset or explicit dimensions; a
// preset wins when both are present.
type NewGameDTO struct {
	Preset    string `schema:"preset"`
	Width     int    `schema:"width"`
	Height    int    `schema:"height"`
	MineCount int    `schema:"mine_count"`
}

func ParseNewGameDTO(src map[string][]string) (NewGameDTO, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var dto NewGameDTO
	err := dec.Decode(&dto, src)
	return dto, err
}

func (dto NewGameDTO) Params() (game.Params, error) {
	if dto.Preset != "" {
		params, ok := game.ParsePreset(dto.Preset)
		if !ok {
			return game.Params{}, fmt.Errorf("unknown preset %q", dto.Preset)
		}
		return params, nil
	}
	params := game.Params{
		Width:     dto.Width,
		Height:    dto.Height,
		MineCount: dto.MineCount,
	}
	return params, params.Validate()
}

type point struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func decodePosition(src map[string][]string) (point, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var p point
	err := dec.Decode(&p, src)
	return p, err
}
