package settings

import (
	"context"
	"encoding/json"
	"errors"

	"go.etcd.io/bbolt"
)

const (
	settingsBucket = "settings"
	settingsKey    = "panel"
)

// BoltRepository persists the panel settings in a BoltDB file.
type BoltRepository struct {
	db *bbolt.DB
}

// NewBoltRepository creates a BoltDB-backed settings repository.
// It initializes the required bucket if it doesn't exist.
func NewBoltRepository(db *bbolt.DB) (*BoltRepository, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}

	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(settingsBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &BoltRepository{db: db}, nil
}

// settingsDTO is used for JSON serialization.
type settingsDTO struct {
	Protocol      string `json:"protocol"`
	Server        string `json:"server"`
	ConAcexy      bool   `json:"con_acexy"`
	ExportSTRM    bool   `json:"export_strm"`
	DirectSources string `json:"direct_sources"`
	MovieSources  string `json:"movie_sources"`
	WebSources    string `json:"web_sources"`
}

// Load reads the persisted settings, returning defaults when nothing has
// been saved yet.
func (r *BoltRepository) Load(ctx context.Context) (Settings, error) {
	if err := ctx.Err(); err != nil {
		return Settings{}, err
	}

	out := Default()
	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(settingsBucket))
		if bucket == nil {
			return errors.New("settings bucket not found")
		}

		data := bucket.Get([]byte(settingsKey))
		if data == nil {
			return nil
		}

		var dto settingsDTO
		if err := json.Unmarshal(data, &dto); err != nil {
			return err
		}

		out = Settings{
			Protocol:      dto.Protocol,
			Server:        dto.Server,
			ConAcexy:      dto.ConAcexy,
			ExportSTRM:    dto.ExportSTRM,
			DirectSources: dto.DirectSources,
			MovieSources:  dto.MovieSources,
			WebSources:    dto.WebSources,
		}
		return nil
	})
	if err != nil {
		return Settings{}, err
	}

	return out, nil
}

// Save validates and persists the settings. An invalid value is rejected
// and the stored settings are left untouched.
func (r *BoltRepository) Save(ctx context.Context, s Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.Validate(); err != nil {
		return err
	}

	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(settingsBucket))
		if bucket == nil {
			return errors.New("settings bucket not found")
		}

		data, err := json.Marshal(settingsDTO{
			Protocol:      s.Protocol,
			Server:        s.Server,
			ConAcexy:      s.ConAcexy,
			ExportSTRM:    s.ExportSTRM,
			DirectSources: s.DirectSources,
			MovieSources:  s.MovieSources,
			WebSources:    s.WebSources,
		})
		if err != nil {
			return err
		}

		return bucket.Put([]byte(settingsKey), data)
	})
}
