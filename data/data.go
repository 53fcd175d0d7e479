package data

import (
	"encoding/json"
	"fmt"
	"os"
)

type BaseStats struct {
	HP  int `json:"hp"`
	Atk int `json:"atk"`
	Def int `json:"def"`
	SpA int `json:"spa"`
	SpD int `json:"spd"`
	Spe int `json:"spe"`
}

type PokemonData struct {
	Name      string
	Types     []string
	BaseStats BaseStats
}

type MoveData struct {
	Name     string
	Type     string
	Power    int
	Category string
}

type RawPokemonData struct {
	Name      string    `json:"name"`
	Types     []string  `json:"types"`
	BaseStats BaseStats `json:"baseStats"`
}

type RawMoveData struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Power    int    `json:"basePower"`
	Category string `json:"category"`
}

// DefaultPower is assumed for moves missing from the move table.
const DefaultPower = 80

var pokemonDB map[string]PokemonData
var moveDB map[string]MoveData

func LoadPokemonData(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var rawData map[string]RawPokemonData
	if err := json.NewDecoder(file).Decode(&rawData); err != nil {
		return fmt.Errorf("error al decodificar %s: %w", path, err)
	}

	pokemonDB = make(map[string]PokemonData, len(rawData))
	for _, p := range rawData {
		pokemonDB[ToID(p.Name)] = PokemonData{
			Name:      p.Name,
			Types:     p.Types,
			BaseStats: p.BaseStats,
		}
	}
	return nil
}

func LoadMoveData(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var rawData map[string]RawMoveData
	if err := json.NewDecoder(file).Decode(&rawData); err != nil {
		return fmt.Errorf("error al decodificar %s: %w", path, err)
	}

	moveDB = make(map[string]MoveData, len(rawData))
	for _, m := range rawData {
		moveDB[ToID(m.Name)] = MoveData{
			Name:     m.Name,
			Type:     m.Type,
			Power:    m.Power,
			Category: m.Category,
		}
	}
	return nil
}

func GetPokemon(name string) (PokemonData, bool) {
	p, ok := pokemonDB[ToID(name)]
	return p, ok
}

func GetPokemonTypes(name string) []string {
	if p, ok := pokemonDB[ToID(name)]; ok {
		return p.Types
	}
	return nil
}

// GetMove looks a move up by name or ID. Unknown moves come back as a
// typeless physical move of DefaultPower along with the error.
func GetMove(name string) (MoveData, error) {
	if m, ok := moveDB[ToID(name)]; ok {
		return m, nil
	}
	return MoveData{Name: name, Power: DefaultPower, Category: "Physical"},
		fmt.Errorf("movimiento no encontrado: %s", name)
}
