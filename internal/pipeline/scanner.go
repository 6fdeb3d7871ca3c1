package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kurochkinivan/voicebot/internal/domain"
)

var audioExtensions = map[string]struct{}{
	".wav": {},
	".mp3": {},
}

// Scanner polls the inbox directory and emits audio files that have not been processed yet.
type Scanner struct {
	log           *slog.Logger
	watchDir      string
	scanInterval  time.Duration
	files         chan<- string
	filesProvider FilesProvider
	fileUpdater   FileUpdater
}

func NewScanner(
	log *slog.Logger,
	watchDir string,
	scanInterval time.Duration,
	files chan<- string,
	filesProvider FilesProvider,
	fileUpdater FileUpdater,
) *Scanner {
	return &Scanner{
		log:           log,
		watchDir:      watchDir,
		scanInterval:  scanInterval,
		files:         files,
		filesProvider: filesProvider,
		fileUpdater:   fileUpdater,
	}
}

func (s *Scanner) Run(ctx context.Context) error {
	defer close(s.files)

	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.log.DebugContext(ctx, "scan cycle started")

			if err := s.scanFiles(ctx); err != nil {
				s.log.ErrorContext(ctx, "failed to scan inbox", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Scanner) scanFiles(ctx context.Context) error {
	statuses, err := s.fileStatuses(ctx)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(s.watchDir)
	if err != nil {
		return fmt.Errorf("failed to read directory %q: %w", s.watchDir, err)
	}

	for _, entry := range entries {
		if err := s.processEntry(ctx, entry, statuses); err != nil {
			s.log.ErrorContext(ctx, "failed to process entry, skipping file",
				slog.String("filename", entry.Name()),
				slog.String("err", err.Error()),
			)
		}
	}

	return nil
}

func (s *Scanner) fileStatuses(ctx context.Context) (map[string]domain.Status, error) {
	files, err := s.filesProvider.Files(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get files: %w", err)
	}

	statuses := make(map[string]domain.Status, len(files))
	for _, file := range files {
		statuses[file.Name] = file.Status
	}

	return statuses, nil
}

func (s *Scanner) processEntry(ctx context.Context, entry os.DirEntry, statuses map[string]domain.Status) error {
	if entry.IsDir() || !isAudio(entry.Name()) {
		return nil
	}

	if status, ok := statuses[entry.Name()]; ok && status != domain.StatusPending {
		return nil
	}

	// Files that are empty or changed within the last interval may still be copied in.
	info, err := entry.Info()
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	if info.Size() == 0 || time.Since(info.ModTime()) < s.scanInterval {
		s.log.DebugContext(ctx, "file not settled yet", slog.String("filename", entry.Name()))
		return nil
	}

	err = s.fileUpdater.UpdateOrCreateFile(ctx, &domain.File{
		Name:   entry.Name(),
		Status: domain.StatusProcessing,
	})
	if err != nil {
		return fmt.Errorf("failed to update file status: %w", err)
	}

	s.log.DebugContext(ctx, "queued audio file", slog.String("filename", entry.Name()))

	select {
	case s.files <- filepath.Join(s.watchDir, entry.Name()):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func isAudio(name string) bool {
	_, ok := audioExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}
