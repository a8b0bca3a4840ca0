package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/bill-tracker/internal/logger"
	"max.ks1230/bill-tracker/internal/model/messages"
)

const enterValidInputMessage = "Enter valid input"

type retriesGetter interface {
	MaxReadRetries() int
}

type readResult struct {
	line string
	err  error
}

type Client struct {
	reader  *bufio.Reader
	writer  io.Writer
	retries int

	// pending holds a read that outlived a cancelled ReadLine.
	pending chan readResult
}

func New(r io.Reader, w io.Writer, cfg retriesGetter) *Client {
	return &Client{
		reader:  bufio.NewReader(r),
		writer:  w,
		retries: cfg.MaxReadRetries(),
	}
}

func (c *Client) SendMessage(text string) error {
	_, err := fmt.Fprintln(c.writer, text)
	if err != nil {
		return errors.Wrap(err, "write message")
	}
	return nil
}

// ReadLine returns the next line without surrounding whitespace. End of
// input reads as an empty line. Other read failures are retried, then
// returned. ReadLine gives up as soon as ctx is done, even while blocked.
func (c *Client) ReadLine(ctx context.Context) (string, error) {
	for attempt := 0; ; attempt++ {
		res, err := c.readOnce(ctx)
		if err != nil {
			return "", errors.Wrap(err, "read line")
		}
		if res.err == nil || errors.Is(res.err, io.EOF) {
			return strings.TrimSpace(res.line), nil
		}
		// A partial line that came with the failure is dropped: the user
		// is asked to type the whole input again.
		if attempt >= c.retries {
			return "", errors.Wrap(res.err, "read line")
		}

		logger.Warn("console read failed", zap.Error(res.err), zap.Int("attempt", attempt+1))
		if err = c.SendMessage(enterValidInputMessage); err != nil {
			return "", err
		}
	}
}

func (c *Client) readOnce(ctx context.Context) (readResult, error) {
	if err := ctx.Err(); err != nil {
		return readResult{}, err
	}

	if c.pending == nil {
		c.pending = make(chan readResult, 1)
		go func(out chan<- readResult) {
			line, err := c.reader.ReadString('\n')
			out <- readResult{line: line, err: err}
		}(c.pending)
	}

	select {
	case <-ctx.Done():
		return readResult{}, ctx.Err()
	case res := <-c.pending:
		c.pending = nil
		return res, nil
	}
}

// ListenUpdates shows the menu and dispatches selections until the user
// leaves. A normal end of the session returns nil.
func (c *Client) ListenUpdates(ctx context.Context, msgModel *messages.Service) error {
	logger.Info("Start listening for selections")
	defer logger.Info("Stop listening for selections")

	for {
		if ctx.Err() != nil {
			return nil
		}
		if err := msgModel.ShowMenu(); err != nil {
			return err
		}

		selection, err := c.ReadLine(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read selection")
		}

		err = msgModel.HandleIncomingSelection(ctx, selection)
		switch {
		case ctx.Err() != nil:
			return nil
		case errors.Is(err, messages.ErrEndOfInput), errors.Is(err, messages.ErrInvalidSelection):
			return nil
		case err != nil:
			return err
		}
	}
}
