package migrations

import "gorm.io/gorm"

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_01_03_000000_create_profiles_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS profiles (
						user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
						display_name VARCHAR(255) NOT NULL,
						avatar_url VARCHAR(512) NULL,
						default_venue_id UUID NULL,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
					);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS profiles CASCADE").Error
			},
		},
		{
			Name: "2025_01_04_000000_create_venues_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS venues (
						id UUID PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						latitude DOUBLE PRECISION NOT NULL,
						longitude DOUBLE PRECISION NOT NULL,
						address VARCHAR(512),
						created_by UUID NOT NULL,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_venues_created_by ON venues(created_by);
					CREATE INDEX IF NOT EXISTS idx_venues_deleted_at ON venues(deleted_at);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS venues CASCADE").Error
			},
		},
		{
			Name: "2025_01_05_000000_create_matches_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS matches (
						id UUID PRIMARY KEY,
						venue_id UUID NOT NULL REFERENCES venues(id),
						created_by UUID NOT NULL,
						team1_player_a UUID NOT NULL,
						team1_player_b UUID NOT NULL,
						team2_player_a UUID NOT NULL,
						team2_player_b UUID NOT NULL,
						scores JSONB NOT NULL,
						status VARCHAR(20) NOT NULL DEFAULT 'pending',
						played_at TIMESTAMP NOT NULL,
						confirmed_at TIMESTAMP NULL,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_matches_venue_id ON matches(venue_id);
					CREATE INDEX IF NOT EXISTS idx_matches_status ON matches(status);
					CREATE INDEX IF NOT EXISTS idx_matches_played_at ON matches(played_at);
					CREATE INDEX IF NOT EXISTS idx_matches_deleted_at ON matches(deleted_at);
					CREATE INDEX IF NOT EXISTS idx_matches_team1_player_a ON matches(team1_player_a);
					CREATE INDEX IF NOT EXISTS idx_matches_team1_player_b ON matches(team1_player_b);
					CREATE INDEX IF NOT EXISTS idx_matches_team2_player_a ON matches(team2_player_a);
					CREATE INDEX IF NOT EXISTS idx_matches_team2_player_b ON matches(team2_player_b);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS matches CASCADE").Error
			},
		},
		{
			Name: "2025_01_06_000000_create_player_ratings_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS player_ratings (
						player_id UUID PRIMARY KEY,
						mu DOUBLE PRECISION NOT NULL,
						sigma DOUBLE PRECISION NOT NULL,
						games_played INTEGER NOT NULL DEFAULT 0,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
					);
					CREATE INDEX IF NOT EXISTS idx_player_ratings_mu ON player_ratings(mu DESC);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS player_ratings CASCADE").Error
			},
		},
		{
			Name: "2025_01_07_000000_create_team_ratings_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS team_ratings (
						player_a UUID NOT NULL,
						player_b UUID NOT NULL,
						mu DOUBLE PRECISION NOT NULL,
						sigma DOUBLE PRECISION NOT NULL,
						games_played INTEGER NOT NULL DEFAULT 0,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						PRIMARY KEY (player_a, player_b)
					);
					CREATE INDEX IF NOT EXISTS idx_team_ratings_mu ON team_ratings(mu DESC);
					CREATE INDEX IF NOT EXISTS idx_team_ratings_player_b ON team_ratings(player_b);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS team_ratings CASCADE").Error
			},
		},
		{
			Name: "2025_01_08_000000_create_rating_history_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS rating_history (
						id SERIAL PRIMARY KEY,
						player_id UUID NOT NULL,
						match_id UUID NOT NULL,
						mu_before DOUBLE PRECISION NOT NULL,
						mu_after DOUBLE PRECISION NOT NULL,
						sigma_before DOUBLE PRECISION NOT NULL,
						sigma_after DOUBLE PRECISION NOT NULL,
						won BOOLEAN NOT NULL,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
					);
					CREATE INDEX IF NOT EXISTS idx_rating_history_player_id ON rating_history(player_id);
					CREATE INDEX IF NOT EXISTS idx_rating_history_match_id ON rating_history(match_id);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS rating_history CASCADE").Error
			},
		},
		{
			Name: "2025_01_09_000000_create_guest_players_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS guest_players (
						id UUID PRIMARY KEY,
						owner_id UUID NOT NULL,
						display_name VARCHAR(255) NOT NULL,
						linked_player_id UUID NULL,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_guest_players_owner_id ON guest_players(owner_id);
					CREATE INDEX IF NOT EXISTS idx_guest_players_deleted_at ON guest_players(deleted_at);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS guest_players CASCADE").Error
			},
		},
		{
			Name: "2025_01_10_000000_create_follows_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS follows (
						follower_id UUID NOT NULL,
						followee_id UUID NOT NULL,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						PRIMARY KEY (follower_id, followee_id)
					);
					CREATE INDEX IF NOT EXISTS idx_follows_followee_id ON follows(followee_id);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS follows CASCADE").Error
			},
		},
	}
}
