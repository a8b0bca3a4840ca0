package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/bill-tracker/internal/logger"
)

type SelectionHandler interface {
	HandleSelection(ctx context.Context, selection string) (string, error)
}

type Service struct {
	console console
	storage billStorage
	handler SelectionHandler
}

func NewService(console console, storage billStorage) *Service {
	return &Service{
		console: console,
		storage: storage,
		handler: newHandler(console, storage),
	}
}

func (s *Service) ShowMenu() error {
	return errors.Wrap(s.console.SendMessage(menuMessage), "show menu")
}

// HandleIncomingSelection dispatches one menu selection. ErrEndOfInput and
// ErrInvalidSelection mean the session is over.
func (s *Service) HandleIncomingSelection(ctx context.Context, selection string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleSelection")
	defer span.Finish()
	span.SetTag("selection", selection)

	start := time.Now()
	result, err := s.handler.HandleSelection(ctx, selection)
	elapsed := time.Since(start)

	failed := err != nil && !sessionEnded(err)
	observeResponse(elapsed, failed)
	if name, ok := commandNames[selection]; ok && err == nil {
		countOperation(name, result)
	}
	setBills(s.storage.Len())

	if failed {
		ext.Error.Set(span, true)
		logger.Error("error handling selection", zap.String("selection", selection), zap.Error(err))
	}
	return err
}

func sessionEnded(err error) bool {
	return errors.Is(err, ErrEndOfInput) ||
		errors.Is(err, ErrInvalidSelection) ||
		errors.Is(err, context.Canceled)
}
