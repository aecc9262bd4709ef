package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gamebencher/rigcheck/pkg/predict"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Platforms flags which operating systems a game supports.
type Platforms struct {
	Windows bool `json:"windows,omitempty"`
	Mac     bool `json:"mac,omitempty"`
	Linux   bool `json:"linux,omitempty"`
}

// Price is a game's store price in minor currency units (cents).
type Price struct {
	Currency        string `json:"currency"`
	Initial         int    `json:"initial"`
	Final           int    `json:"final"`
	DiscountPercent int    `json:"discount_percent"`
}

// Metacritic is an optional review score with a source link.
type Metacritic struct {
	Score int    `json:"score"`
	URL   string `json:"url"`
}

// Game is one catalog entry, shaped like the build-time games.json dump.
type Game struct {
	AppID           int64                    `json:"appId" db:"app_id"`
	Name            string                   `json:"name" db:"name"`
	NameEN          string                   `json:"nameEn,omitempty" db:"name_en"`
	Slug            string                   `json:"slug" db:"slug"`
	Type            string                   `json:"type" db:"type"`
	IsFree          bool                     `json:"isFree" db:"is_free"`
	HeaderImage     string                   `json:"headerImage" db:"header_image"`
	Developers      []string                 `json:"developers" db:"-"`
	Publishers      []string                 `json:"publishers" db:"-"`
	Genres          []string                 `json:"genres" db:"-"`
	Categories      []string                 `json:"categories" db:"-"`
	ReleaseDate     string                   `json:"releaseDate" db:"release_date"`
	ComingSoon      bool                     `json:"comingSoon" db:"coming_soon"`
	Platforms       Platforms                `json:"platforms" db:"-"`
	Price           *Price                   `json:"price" db:"-"`
	Metacritic      *Metacritic              `json:"metacritic" db:"-"`
	Recommendations int                      `json:"recommendations" db:"recommendations"`
	Requirements    predict.GameRequirements `json:"requirements" db:"-"`

	DevelopersJSON   string `json:"-" db:"developers"`
	PublishersJSON   string `json:"-" db:"publishers"`
	GenresJSON       string `json:"-" db:"genres"`
	CategoriesJSON   string `json:"-" db:"categories"`
	PlatformsJSON    string `json:"-" db:"platforms"`
	PriceJSON        string `json:"-" db:"price"`
	MetacriticJSON   string `json:"-" db:"metacritic"`
	RequirementsJSON string `json:"-" db:"requirements"`
}

// ListOpts controls game listing.
type ListOpts struct {
	Genre    string
	FreeOnly bool
	Limit    int
}

// ErrNotFound is returned when a game slug has no catalog entry.
var ErrNotFound = errors.New("game not found")

// Store is the game catalog persistence interface.
type Store interface {
	UpsertGame(ctx context.Context, g *Game) error
	UpsertGames(ctx context.Context, games []Game) error
	GetGameBySlug(ctx context.Context, slug string) (*Game, error)
	ListGames(ctx context.Context, opts ListOpts) ([]Game, error)
	ListGenres(ctx context.Context) ([]string, error)
	CountGames(ctx context.Context) (int, error)

	Close() error
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sqlx.DB
}

// New opens a SQLite database and runs migrations.
func New(path string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) UpsertGame(ctx context.Context, g *Game) error {
	marshalColumns(g)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO games (app_id, name, name_en, slug, type, is_free, header_image,
			developers, publishers, genres, categories, release_date, coming_soon,
			platforms, price, metacritic, recommendations, requirements)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(app_id) DO UPDATE SET
			name = excluded.name,
			name_en = excluded.name_en,
			slug = excluded.slug,
			is_free = excluded.is_free,
			header_image = excluded.header_image,
			genres = excluded.genres,
			price = excluded.price,
			metacritic = excluded.metacritic,
			recommendations = excluded.recommendations,
			requirements = excluded.requirements
	`, g.AppID, g.Name, g.NameEN, g.Slug, g.Type, g.IsFree, g.HeaderImage,
		g.DevelopersJSON, g.PublishersJSON, g.GenresJSON, g.CategoriesJSON,
		g.ReleaseDate, g.ComingSoon, g.PlatformsJSON, g.PriceJSON,
		g.MetacriticJSON, g.Recommendations, g.RequirementsJSON)
	if err != nil {
		return fmt.Errorf("upsert game %s: %w", g.Slug, err)
	}
	return nil
}

func (s *SQLiteStore) UpsertGames(ctx context.Context, games []Game) error {
	for i := range games {
		if err := s.UpsertGame(ctx, &games[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) GetGameBySlug(ctx context.Context, slug string) (*Game, error) {
	var g Game
	err := s.db.GetContext(ctx, &g, "SELECT * FROM games WHERE slug = ?", slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get game %s: %w", slug, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get game %s: %w", slug, err)
	}
	unmarshalColumns(&g)
	return &g, nil
}

func (s *SQLiteStore) ListGames(ctx context.Context, opts ListOpts) ([]Game, error) {
	query := "SELECT * FROM games WHERE 1=1"
	var args []any

	if opts.Genre != "" {
		// Genres are stored as a JSON array of strings.
		query += " AND genres LIKE ?"
		args = append(args, `%"`+opts.Genre+`"%`)
	}
	if opts.FreeOnly {
		query += " AND is_free = 1"
	}

	query += " ORDER BY recommendations DESC"

	limit := opts.Limit
	if limit <= 0 {
		limit = 100
	}
	query += " LIMIT ?"
	args = append(args, limit)

	var games []Game
	if err := s.db.SelectContext(ctx, &games, query, args...); err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	for i := range games {
		unmarshalColumns(&games[i])
	}
	return games, nil
}

func (s *SQLiteStore) ListGenres(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryxContext(ctx, "SELECT genres FROM games")
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]bool)
	var genres []string
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var gs []string
		json.Unmarshal([]byte(raw), &gs)
		for _, g := range gs {
			if !seen[g] {
				seen[g] = true
				genres = append(genres, g)
			}
		}
	}
	return genres, nil
}

func (s *SQLiteStore) CountGames(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM games"); err != nil {
		return 0, fmt.Errorf("count games: %w", err)
	}
	return n, nil
}

// LoadGamesFile reads a games.json catalog dump.
func LoadGamesFile(path string) ([]Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read games file: %w", err)
	}
	var games []Game
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return games, nil
}

func marshalColumns(g *Game) {
	devs, _ := json.Marshal(g.Developers)
	pubs, _ := json.Marshal(g.Publishers)
	genres, _ := json.Marshal(g.Genres)
	cats, _ := json.Marshal(g.Categories)
	plats, _ := json.Marshal(g.Platforms)
	reqs, _ := json.Marshal(g.Requirements)
	g.DevelopersJSON = string(devs)
	g.PublishersJSON = string(pubs)
	g.GenresJSON = string(genres)
	g.CategoriesJSON = string(cats)
	g.PlatformsJSON = string(plats)
	g.RequirementsJSON = string(reqs)

	g.PriceJSON = "null"
	if g.Price != nil {
		price, _ := json.Marshal(g.Price)
		g.PriceJSON = string(price)
	}
	g.MetacriticJSON = "null"
	if g.Metacritic != nil {
		mc, _ := json.Marshal(g.Metacritic)
		g.MetacriticJSON = string(mc)
	}
}

func unmarshalColumns(g *Game) {
	json.Unmarshal([]byte(g.DevelopersJSON), &g.Developers)
	json.Unmarshal([]byte(g.PublishersJSON), &g.Publishers)
	json.Unmarshal([]byte(g.GenresJSON), &g.Genres)
	json.Unmarshal([]byte(g.CategoriesJSON), &g.Categories)
	json.Unmarshal([]byte(g.PlatformsJSON), &g.Platforms)
	json.Unmarshal([]byte(g.PriceJSON), &g.Price)
	json.Unmarshal([]byte(g.MetacriticJSON), &g.Metacritic)
	json.Unmarshal([]byte(g.RequirementsJSON), &g.Requirements)
}
