package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

func TestBuildBeerFilterWhere_SinFiltros(t *testing.T) {
	where, args := buildBeerFilterWhere(repository.BeerFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildBeerFilterWhere_BlancoTrasRecortarNoParticipa(t *testing.T) {
	where, args := buildBeerFilterWhere(repository.BeerFilter{BeerName: "   ", BeerStyle: "\t"})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildBeerFilterWhere_SoloNombre(t *testing.T) {
	where, args := buildBeerFilterWhere(repository.BeerFilter{BeerName: "ipa"})
	assert.Equal(t, " WHERE beer_name ILIKE $1", where)
	assert.Equal(t, []any{"%ipa%"}, args)
}

func TestBuildBeerFilterWhere_SoloEstilo(t *testing.T) {
	where, args := buildBeerFilterWhere(repository.BeerFilter{BeerStyle: "Stout"})
	assert.Equal(t, " WHERE beer_style ILIKE $1", where)
	assert.Equal(t, []any{"%Stout%"}, args)
}

func TestBuildBeerFilterWhere_AmbosFiltrosEnAND(t *testing.T) {
	where, args := buildBeerFilterWhere(repository.BeerFilter{BeerName: " Test ", BeerStyle: "IPA"})
	assert.Equal(t, " WHERE beer_name ILIKE $1 AND beer_style ILIKE $2", where)
	assert.Equal(t, []any{"%Test%", "%IPA%"}, args, "los espacios alrededor se recortan antes de armar el patrón")
}
