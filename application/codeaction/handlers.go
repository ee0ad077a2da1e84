/*
 * © 2024 Snyk Limited
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package codeaction

import (
	"context"
	"sync"
	"time"

	"github.com/snyk/snyk-highlight/application/config"
)

type GetCodeActionsHandler func(context.Context, Params) ([]CodeAction, error)
type ResolveHandler func(context.Context, CodeAction) (*CodeAction, error)

// ResolveCodeActionHandler returns a handler that resolves deferred code actions
func ResolveCodeActionHandler(c *config.Config, service *CodeActionsService) ResolveHandler {
	logger := c.Logger().With().Str("method", "ResolveCodeActionHandler").Logger()
	return func(ctx context.Context, params CodeAction) (*CodeAction, error) {
		logger := logger.With().Interface("request", params).Logger()
		logger.Debug().Msg("RECEIVING")

		action, err := service.ResolveCodeAction(params)
		if err != nil {
			if IsMissingKeyError(err) { // If the key is missing, the options were already sent with the action
				logger.Debug().Msg("Skipping code action - missing key")
				return nil, nil
			}
			logger.Error().Err(err).Msg("Failed to resolve code action")
			return nil, err
		}
		logger.Debug().Any("response", action).Msg("SENDING")
		return &action, nil
	}
}

// GetCodeActionHandler returns a debounced handler for code action requests. A request that is
// superseded by a newer one within debounceDuration returns no actions.
func GetCodeActionHandler(c *config.Config, service *CodeActionsService, debounceDuration time.Duration) GetCodeActionsHandler {
	// We share a mutex between all the handler calls to prevent concurrent runs.
	var mu = &sync.Mutex{}
	// This "field" is shared between the handlers to allow for cancellation of previous handler
	_, cancel := context.WithCancel(context.Background())
	logger := c.Logger().With().Str("method", "CodeActionHandler").Logger()

	return func(paramCtx context.Context, params Params) ([]CodeAction, error) {
		var ctx context.Context
		mu.Lock()
		cancel()
		ctx, cancel = context.WithCancel(paramCtx)
		defer cancel()
		mu.Unlock()

		// Callers ask on every caret move, so wait a little and give up if a newer request arrives.
		select {
		case <-ctx.Done():
			logger.Debug().Msg("Cancelled code action request")
			return nil, nil
		case <-time.After(debounceDuration):
			logger.Debug().Str("path", string(params.Document.Path())).Msg("RECEIVING")
		}

		mu.Lock()
		defer mu.Unlock()
		select { // Checking for cancellation again because it might have happened while waiting for the lock
		case <-ctx.Done():
			logger.Debug().Msg("Cancelled code action request")
			return nil, nil
		default:
		}

		codeActions := service.GetCodeActions(params)
		logger.Debug().Any("response", codeActions).Msg("SENDING")
		return codeActions, nil
	}
}
