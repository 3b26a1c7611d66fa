// SPDX-License-Identifier: MIT
package lexer

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/panjf2000/ants/v2"

	"gitlab.com/fisherprime/rdparse/types"
)

// Batch errors.
var (
	ErrNoSources = errors.New("no sources")
	ErrPanicked  = errors.New("recovery from panic")
)

// TokenizeFiles lexes independent files on a worker pool, one Token slice per path.
//
// Each file is lexed sequentially; results follow the order of `paths`.
func (l *Lexer) TokenizeFiles(ctx context.Context, paths ...string) (results [][]Token, err error) {
	operations := len(paths)
	if operations < 1 {
		err = ErrNoSources
		return
	}

	pool, err := ants.NewPool(l.workers, ants.WithLogger(l.logger))
	if err != nil {
		return
	}
	defer pool.Release()

	// Tasks write to out only; it is published once every task has reported success.
	done, errChan := make(chan bool, operations), make(chan error, operations)
	out := make([][]Token, operations)

	for index := range paths {
		index := index
		task := func() {
			defer func() {
				if r := recover(); r != nil {
					errChan <- fmt.Errorf("%w: %s: %v", ErrPanicked, paths[index], r)
				}
			}()

			tokens, err := l.tokenizeFile(ctx, paths[index])
			if err != nil {
				errChan <- err
				return
			}
			out[index] = tokens
			done <- true
		}

		if err = pool.Submit(task); err != nil {
			return nil, err
		}
	}

	if err = types.MonitorChannels(ctx, operations, done, errChan, "tokenize"); err != nil {
		return
	}
	results = out

	return
}

func (l *Lexer) tokenizeFile(ctx context.Context, path string) (tokens []Token, err error) {
	f, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrReadSource, err)
		return
	}
	defer f.Close()

	if l.debug {
		l.logger.Debugf("tokenize file: %s", path)
	}

	if tokens, err = l.Tokenize(ctx, f); err != nil {
		err = fmt.Errorf("%s: %w", path, err)
	}

	return
}
