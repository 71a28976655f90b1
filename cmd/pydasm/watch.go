package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// watchAndDisassemble prints an initial listing for every path, then
// re-disassembles a path whenever it is written. Errors in a rewritten
// file are reported without stopping the watch.
func watchAndDisassemble(ctx context.Context, paths []string) error {
	for _, p := range paths {
		if p == "-" || strings.HasPrefix(p, "s3://") {
			return fmt.Errorf("watch mode requires local files, got %q", p)
		}
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	pypy := viper.GetBool("pypy")
	for _, p := range paths {
		if err := watcher.Add(p); err != nil {
			return err
		}
		if err := disassembleSource(ctx, p, pypy); err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.Debug().Str("path", event.Name).Msg("input changed")
			fmt.Println()
			if err := disassembleSource(ctx, event.Name, pypy); err != nil {
				fmt.Fprintln(os.Stderr, red(err.Error()))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("watch error")
		}
	}
}
