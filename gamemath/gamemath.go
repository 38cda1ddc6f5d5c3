package gamemath

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// ClassicModelID is the model_id of the built-in 3x3 table.
const ClassicModelID = "classic_3x3"

//go:embed classic.yaml
var classicYAML []byte

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Symbol is one reel symbol kind.
type Symbol string

// GameMath is the reel/paytable payload for a slot model (schema_version 1).
// Treat it as read-only once returned from Parse or Classic.
type GameMath struct {
	SchemaVersion int         `json:"schema_version" yaml:"schema_version"`
	ModelID       string      `json:"model_id" yaml:"model_id"`
	ModelVersion  string      `json:"model_version" yaml:"model_version"`
	Rows          int         `json:"rows" yaml:"rows"`
	Cols          int         `json:"cols" yaml:"cols"`
	Symbols       []SymbolDef `json:"symbols" yaml:"symbols"`
	Integrity     *Integrity  `json:"integrity,omitempty" yaml:"-"`
}

// SymbolDef is one entry of the symbol table: Count copies go into every
// reel pool; three in a line pay Multiplier times the line bet.
type SymbolDef struct {
	Symbol     Symbol `json:"symbol" yaml:"symbol"`
	Count      int    `json:"count" yaml:"count"`
	Multiplier int64  `json:"multiplier" yaml:"multiplier"`
}

type Integrity struct {
	ContentHash string `json:"content_hash"`
}

var (
	ErrNoSymbols      = errors.New("gamemath: symbol table is empty")
	ErrBadShape       = errors.New("gamemath: rows and cols must be positive")
	ErrPoolTooSmall   = errors.New("gamemath: pool smaller than rows")
	ErrDuplicate      = errors.New("gamemath: duplicate symbol")
	ErrBadSymbolEntry = errors.New("gamemath: invalid symbol entry")
)

// Parse decodes a YAML model, validates it and stamps its content hash.
func Parse(data []byte) (*GameMath, error) {
	var g GameMath
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("decode game math: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	hash, err := g.ContentHash()
	if err != nil {
		return nil, err
	}
	g.Integrity = &Integrity{ContentHash: hash}
	return &g, nil
}

// Classic returns the fixed A/B/C/D table shipped with the binary.
func Classic() *GameMath {
	g, err := Parse(classicYAML)
	if err != nil {
		panic("gamemath: embedded classic table: " + err.Error())
	}
	return g
}

// Validate checks the table can drive a spin.
func (g *GameMath) Validate() error {
	if g == nil || len(g.Symbols) == 0 {
		return ErrNoSymbols
	}
	if g.Rows <= 0 || g.Cols <= 0 {
		return ErrBadShape
	}
	seen := make(map[Symbol]bool, len(g.Symbols))
	for _, s := range g.Symbols {
		if s.Symbol == "" || s.Count <= 0 || s.Multiplier < 0 {
			return fmt.Errorf("%w: %+v", ErrBadSymbolEntry, s)
		}
		if seen[s.Symbol] {
			return fmt.Errorf("%w: %s", ErrDuplicate, s.Symbol)
		}
		seen[s.Symbol] = true
	}
	if g.PoolSize() < g.Rows {
		return ErrPoolTooSmall
	}
	return nil
}

// PoolSize is the number of symbol instances in one reel pool.
func (g *GameMath) PoolSize() int {
	n := 0
	for _, s := range g.Symbols {
		n += s.Count
	}
	return n
}

// Pool returns a fresh reel pool: each symbol repeated Count times, in table order.
func (g *GameMath) Pool() []Symbol {
	pool := make([]Symbol, 0, g.PoolSize())
	for _, s := range g.Symbols {
		for i := 0; i < s.Count; i++ {
			pool = append(pool, s.Symbol)
		}
	}
	return pool
}

// Multiplier returns the line multiplier for sym, 0 for unknown symbols.
func (g *GameMath) Multiplier(sym Symbol) int64 {
	for _, s := range g.Symbols {
		if s.Symbol == sym {
			return s.Multiplier
		}
	}
	return 0
}

// ContentHash is the sha256 of the canonical JSON of the table (integrity excluded).
func (g *GameMath) ContentHash() (string, error) {
	c := *g
	c.Integrity = nil
	data, err := json.Marshal(&c)
	if err != nil {
		return "", fmt.Errorf("encode game math: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
