package command

import (
	"fmt"
	"net/url"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper/internal/mines"
)

type newGameQuery struct {
	Width     int  `schema:"width,required"`
	Height    int  `schema:"height,required"`
	MineCount int  `schema:"mine_count,required"`
	Uniform   bool `schema:"uniform"`
}

var decoder = func() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}()

func decodeGameParams(query string) (mines.GameParams, error) {
	values, err := url.ParseQuery(query)
	if err != nil {
		return mines.GameParams{}, fmt.Errorf("%w: %w", ErrBadArguments, err)
	}
	var q newGameQuery
	if err := decoder.Decode(&q, values); err != nil {
		return mines.GameParams{}, fmt.Errorf("%w: %w", ErrBadArguments, err)
	}
	return mines.GameParams{
		Width:     q.Width,
		Height:    q.Height,
		MineCount: q.MineCount,
		Uniform:   q.Uniform,
	}, nil
}
