package server

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchDataset reloads the dataset when the CSV is rewritten. The parent
// directory is watched because editors and atomic writes replace the file.
func (s *Server) watchDataset(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.cfg.DatasetPath)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}
	want := filepath.Clean(s.cfg.DatasetPath)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != want {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if err := s.reloadDataset(); err != nil {
					s.logger.Warn("dataset reload failed",
						zap.String("path", s.cfg.DatasetPath),
						zap.Error(err))
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Warn("dataset watch error", zap.Error(err))
			}
		}
	}()
	return nil
}
