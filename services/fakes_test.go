package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/Dosada05/swiss-tournament/brackets"
	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/repositories"
	"github.com/Dosada05/swiss-tournament/storage"
)

var errConnRefused = errors.New("dial tcp 127.0.0.1:5432: connection refused")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryStore mimics the players and matches tables, including the foreign keys.
type memoryStore struct {
	mu      sync.Mutex
	players []models.Player
	matches []models.Match
	nextPID int
	nextMID int
	failAll error
	calls   int
}

func (s *memoryStore) hasPlayer(id int) bool {
	for _, p := range s.players {
		if p.ID == id {
			return true
		}
	}
	return false
}

type fakePlayerRepo struct{ s *memoryStore }

func (r fakePlayerRepo) Create(ctx context.Context, exec repositories.SQLExecutor, player *models.Player) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.calls++
	if r.s.failAll != nil {
		return r.s.failAll
	}
	r.s.nextPID++
	player.ID = r.s.nextPID
	r.s.players = append(r.s.players, *player)
	return nil
}

func (r fakePlayerRepo) GetAll(ctx context.Context, exec repositories.SQLExecutor) ([]models.Player, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.calls++
	if r.s.failAll != nil {
		return nil, r.s.failAll
	}
	return append([]models.Player(nil), r.s.players...), nil
}

func (r fakePlayerRepo) Count(ctx context.Context, exec repositories.SQLExecutor) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.calls++
	if r.s.failAll != nil {
		return 0, r.s.failAll
	}
	return len(r.s.players), nil
}

func (r fakePlayerRepo) DeleteAll(ctx context.Context, exec repositories.SQLExecutor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.calls++
	if r.s.failAll != nil {
		return r.s.failAll
	}
	if len(r.s.matches) > 0 {
		return repositories.ErrPlayersHaveMatches
	}
	r.s.players = nil
	return nil
}

type fakeMatchRepo struct{ s *memoryStore }

func (r fakeMatchRepo) Create(ctx context.Context, exec repositories.SQLExecutor, match *models.Match) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.calls++
	if r.s.failAll != nil {
		return r.s.failAll
	}
	if !r.s.hasPlayer(match.WinnerID) || !r.s.hasPlayer(match.LoserID) {
		return repositories.ErrMatchPlayerNotFound
	}
	r.s.nextMID++
	match.ID = r.s.nextMID
	r.s.matches = append(r.s.matches, *match)
	return nil
}

func (r fakeMatchRepo) GetAll(ctx context.Context, exec repositories.SQLExecutor) ([]models.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.calls++
	if r.s.failAll != nil {
		return nil, r.s.failAll
	}
	return append([]models.Match(nil), r.s.matches...), nil
}

func (r fakeMatchRepo) Count(ctx context.Context, exec repositories.SQLExecutor) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.calls++
	if r.s.failAll != nil {
		return 0, r.s.failAll
	}
	return len(r.s.matches), nil
}

func (r fakeMatchRepo) DeleteAll(ctx context.Context, exec repositories.SQLExecutor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.calls++
	if r.s.failAll != nil {
		return r.s.failAll
	}
	r.s.matches = nil
	return nil
}

type fakeTransactor struct{}

func (fakeTransactor) WithinSnapshot(ctx context.Context, fn func(exec repositories.SQLExecutor) error) error {
	return fn(nil)
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
	payloads []interface{}
}

func (n *recordingNotifier) Publish(messageType string, payload interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, messageType)
	n.payloads = append(n.payloads, payload)
}

type fakeUploader struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	err     error
}

func (u *fakeUploader) Upload(ctx context.Context, key, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	if u.err != nil {
		return nil, u.err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.objects == nil {
		u.objects = map[string][]byte{}
		u.types = map[string]string{}
	}
	u.objects[key] = buf.Bytes()
	u.types[key] = contentType
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *fakeUploader) GetPublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

// tournament wires every service over one in-memory store.
type tournament struct {
	store     *memoryStore
	notifier  *recordingNotifier
	standings StandingsService
	players   PlayerService
	matches   MatchService
	dashboard DashboardService
}

func newTournament() *tournament {
	store := &memoryStore{}
	notifier := &recordingNotifier{}
	logger := discardLogger()
	playerRepo := fakePlayerRepo{store}
	matchRepo := fakeMatchRepo{store}

	standings := NewStandingsService(fakeTransactor{}, playerRepo, matchRepo, brackets.NewSwissGenerator(), logger)
	return &tournament{
		store:     store,
		notifier:  notifier,
		standings: standings,
		players:   NewPlayerService(playerRepo, standings, notifier, logger),
		matches:   NewMatchService(matchRepo, standings, notifier, logger),
		dashboard: NewDashboardService(fakeTransactor{}, playerRepo, matchRepo),
	}
}
