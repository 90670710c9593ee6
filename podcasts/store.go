// Package podcasts manages the user's podcast feed list and turns fetched
// episodes into playlist commands for the player.
package podcasts

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Podcast is one saved feed.
type Podcast struct {
	Title string `yaml:"title" json:"title"`
	URL   string `yaml:"url" json:"url"`
}

// Store persists the podcast list as a YAML file.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStore creates a store at the standard location under the user config
// directory.
func DefaultStore() (*Store, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user config dir: %w", err)
	}
	return NewStore(filepath.Join(configDir, "rradio-console", "podcasts.yml")), nil
}

// Load reads the saved list. A missing file yields an empty list.
func (s *Store) Load() ([]Podcast, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read podcast list: %w", err)
	}

	var podcasts []Podcast
	if err := yaml.Unmarshal(data, &podcasts); err != nil {
		return nil, fmt.Errorf("parse podcast list: %w", err)
	}
	return podcasts, nil
}

// Save writes the list, creating the parent directory as needed.
func (s *Store) Save(podcasts []Podcast) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create podcast list directory: %w", err)
	}

	data, err := yaml.Marshal(podcasts)
	if err != nil {
		return fmt.Errorf("marshal podcast list: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write podcast list: %w", err)
	}
	return nil
}

// Add appends a podcast unless a feed with the same URL is already saved, and
// returns the updated list.
func (s *Store) Add(podcast Podcast) ([]Podcast, error) {
	podcasts, err := s.Load()
	if err != nil {
		return nil, err
	}

	for _, existing := range podcasts {
		if existing.URL == podcast.URL {
			return podcasts, nil
		}
	}

	podcasts = append(podcasts, podcast)
	if err := s.Save(podcasts); err != nil {
		return nil, err
	}
	return podcasts, nil
}

// Remove deletes the podcast with the given URL and returns the updated list.
func (s *Store) Remove(url string) ([]Podcast, error) {
	podcasts, err := s.Load()
	if err != nil {
		return nil, err
	}

	kept := podcasts[:0]
	for _, podcast := range podcasts {
		if podcast.URL != url {
			kept = append(kept, podcast)
		}
	}
	if len(kept) == len(podcasts) {
		return podcasts, nil
	}

	if err := s.Save(kept); err != nil {
		return nil, err
	}
	return kept, nil
}
