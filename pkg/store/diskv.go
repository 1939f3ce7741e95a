// Package store persists rooms and the active-session singleton as
// JSON documents in a diskv-backed key-value store.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/Minhthien4/study-room/pkg/room"
	"github.com/Minhthien4/study-room/pkg/session"
)

// ErrNotFound is returned when a requested room does not exist.
var ErrNotFound = errors.New("store: room not found")

// Persistence is the durable store contract: the room list plus the
// single active-session record. Writes are synchronous and
// last-write-wins; the two keys are not transactional with each other.
type Persistence interface {
	Rooms(ctx context.Context) []*room.Room
	Room(ctx context.Context, id string) (*room.Room, error)
	Store(r *room.Room) error
	Delete(id string) error

	SaveActive(s session.ActiveSession) error
	LoadActive() (session.ActiveSession, error)
	ClearActive() error

	Watch(ctx context.Context) (<-chan Event, error)
}

const (
	roomPrefix = "rooms"
	sessionKey = "session-active"
)

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (*room.Room, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	r := room.Room{}
	if err := json.Unmarshal(val, &r); err != nil {
		return nil, err
	}
	if r.ID == "" {
		r.ID = keyToPathTransform(key).FileName
	}
	return &r, nil
}

func (p *persistence) Rooms(ctx context.Context) []*room.Room {
	all := make([]*room.Room, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if !strings.HasPrefix(key, roomPrefix+"-") {
			continue
		}
		r, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, r)
	}
	sortRooms(all)
	return all
}

func (p *persistence) Room(_ context.Context, id string) (*room.Room, error) {
	r, err := p.read(roomKey(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (p *persistence) Store(r *room.Room) error {
	if r.ID == "" {
		r.ID = room.NewID()
	}
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return p.d.Write(roomKey(r.ID), data)
}

func (p *persistence) Delete(id string) error {
	return p.d.Erase(roomKey(id))
}

func (p *persistence) SaveActive(s session.ActiveSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return p.d.Write(sessionKey, data)
}

func (p *persistence) LoadActive() (session.ActiveSession, error) {
	val, err := p.d.Read(sessionKey)
	if err != nil {
		return session.ActiveSession{}, session.ErrNoActiveSession
	}
	s := session.ActiveSession{}
	if err := json.Unmarshal(val, &s); err != nil {
		return session.ActiveSession{}, fmt.Errorf("store: corrupt session record: %w", err)
	}
	return s, nil
}

func (p *persistence) ClearActive() error {
	err := p.d.Erase(sessionKey)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func sortRooms(rooms []*room.Room) {
	sort.SliceStable(rooms, func(i, j int) bool {
		left := rooms[i]
		right := rooms[j]
		lt := left.Created
		rt := right.Created
		switch {
		case lt.IsZero() && rt.IsZero():
			return left.Name < right.Name
		case lt.IsZero():
			return false
		case rt.IsZero():
			return true
		default:
			if lt.Equal(rt) {
				return left.Name < right.Name
			}
			return lt.Before(rt)
		}
	})
}

func roomKey(id string) string {
	return fmt.Sprintf("%s-%s", roomPrefix, id)
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
