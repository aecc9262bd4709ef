package store

const schema = `
CREATE TABLE IF NOT EXISTS games (
    app_id          INTEGER PRIMARY KEY,
    name            TEXT NOT NULL,
    name_en         TEXT NOT NULL DEFAULT '',
    slug            TEXT NOT NULL UNIQUE,
    type            TEXT NOT NULL DEFAULT 'game',
    is_free         BOOLEAN NOT NULL DEFAULT 0,
    header_image    TEXT NOT NULL DEFAULT '',
    developers      TEXT NOT NULL DEFAULT '[]',
    publishers      TEXT NOT NULL DEFAULT '[]',
    genres          TEXT NOT NULL DEFAULT '[]',
    categories      TEXT NOT NULL DEFAULT '[]',
    release_date    TEXT NOT NULL DEFAULT '',
    coming_soon     BOOLEAN NOT NULL DEFAULT 0,
    platforms       TEXT NOT NULL DEFAULT '{}',
    price           TEXT NOT NULL DEFAULT 'null',
    metacritic      TEXT NOT NULL DEFAULT 'null',
    recommendations INTEGER NOT NULL DEFAULT 0,
    requirements    TEXT NOT NULL DEFAULT '{}'
);

CREATE INDEX IF NOT EXISTS idx_games_slug ON games(slug);
CREATE INDEX IF NOT EXISTS idx_games_recommendations ON games(recommendations);
CREATE INDEX IF NOT EXISTS idx_games_is_free ON games(is_free);
`
