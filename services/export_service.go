package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/storage"
	"golang.org/x/sync/errgroup"
)

type ExportService interface {
	ExportRound(ctx context.Context) (*ExportResult, error)
}

type ExportResult struct {
	Standings *storage.UploadResult `json:"standings"`
	Pairings  *storage.UploadResult `json:"pairings"`
}

type exportService struct {
	standings StandingsService
	uploader  storage.ObjectUploader
	logger    *slog.Logger
	now       func() time.Time
}

// NewExportService accepts a nil uploader; ExportRound then fails with ErrExportDisabled.
func NewExportService(standings StandingsService, uploader storage.ObjectUploader, logger *slog.Logger) ExportService {
	return &exportService{
		standings: standings,
		uploader:  uploader,
		logger:    logger,
		now:       time.Now,
	}
}

// ExportRound uploads the current standings as CSV and the matching pairings
// as JSON under rounds/<unix-seconds>/.
func (s *exportService) ExportRound(ctx context.Context) (*ExportResult, error) {
	if s.uploader == nil {
		return nil, ErrExportDisabled
	}

	snapshot, err := s.standings.CurrentRound(ctx)
	if err != nil {
		return nil, err
	}

	standingsCSV, err := standingsToCSV(snapshot.Standings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode standings: %w", err)
	}
	pairingsJSON, err := json.MarshalIndent(snapshot.Round, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("failed to encode pairings: %w", err)
	}

	prefix := fmt.Sprintf("rounds/%d", s.now().Unix())
	result := &ExportResult{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.uploader.Upload(gctx, prefix+"/standings.csv", "text/csv", bytes.NewReader(standingsCSV))
		result.Standings = res
		return err
	})
	g.Go(func() error {
		res, err := s.uploader.Upload(gctx, prefix+"/pairings.json", "application/json", bytes.NewReader(pairingsJSON))
		result.Pairings = res
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storageError("upload round export", err)
	}

	s.logger.Info("round exported", slog.String("prefix", prefix), slog.Int("players", len(snapshot.Standings)))
	return result, nil
}

func standingsToCSV(standings []models.Standing) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"rank", "id", "name", "wins", "matches"}); err != nil {
		return nil, err
	}
	for i, st := range standings {
		record := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(st.PlayerID),
			st.Name,
			strconv.Itoa(st.Wins),
			strconv.Itoa(st.Matches),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
