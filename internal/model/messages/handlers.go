package messages

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/bill-tracker/internal/entity/bill"
	"max.ks1230/bill-tracker/internal/logger"
)

const menuMessage = `== Manage bills ==
1. Add/Edit bill
2. View bills
3. Remove bill
4. Undo bill change
Enter selection: `

const (
	billNamePrompt = "Bill name: "
	amountPrompt   = "Amount: "

	enterNumberMessage      = "Please enter a number"
	addedMessage            = "Added a new bill for %s with amount - %s"
	printingBillsMessage    = "Printing all bills:"
	billsForMessage         = "Bills for %s"
	billNotExistMessage     = "Bill does not exist"
	removedMessage          = "Bills removed for user - %s"
	undoneMessage           = "Bills undone for user - %s"
	noBillsLeftMessage      = "No Bills left for user - removed user entry"
	invalidSelectionMessage = "Invalid selection!!!"
)

const (
	addCommand    = "1"
	viewCommand   = "2"
	removeCommand = "3"
	undoCommand   = "4"
)

var commandNames = map[string]string{
	addCommand:    "add",
	viewCommand:   "view",
	removeCommand: "remove",
	undoCommand:   "undo",
}

// results reported to metrics
const (
	resultAborted = "aborted"
	resultAdded   = "added"
	resultListed  = "listed"
)

var (
	ErrInvalidSelection = errors.New("invalid selection")
	ErrEndOfInput       = errors.New("end of input")

	errEmptyInput = errors.New("empty input")
)

//go:generate minimock -i max.ks1230/bill-tracker/internal/model/messages.console -o ./mock/console_mock.go -n ConsoleMock
//go:generate minimock -i max.ks1230/bill-tracker/internal/model/messages.billStorage -o ./mock/bill_storage_mock.go -n BillStorageMock

type console interface {
	SendMessage(text string) error
	ReadLine(ctx context.Context) (string, error)
}

type billStorage interface {
	Add(b bill.Bill)
	List() []bill.Record
	Remove(name string) bill.RemoveResult
	Undo(name string) bill.UndoResult
	Len() int
}

type handler func(ctx context.Context) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	console     console
	storage     billStorage
}

func newHandler(console console, storage billStorage) *HandlerService {
	res := &HandlerService{
		handlersMap: nil,
		console:     console,
		storage:     storage,
	}
	res.handlersMap = newMap(res)
	return res
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[addCommand] = s.handleAdd
	m[viewCommand] = s.handleView
	m[removeCommand] = s.handleRemove
	m[undoCommand] = s.handleUndo
	return m
}

// HandleSelection runs the menu entry picked by the user and returns the
// outcome of the operation.
func (s *HandlerService) HandleSelection(ctx context.Context, selection string) (string, error) {
	if selection == "" {
		return "", ErrEndOfInput
	}

	handler, ok := s.handlersMap[selection]
	if !ok {
		if err := s.console.SendMessage(invalidSelectionMessage); err != nil {
			return "", errors.Wrap(err, "handle selection")
		}
		return "", ErrInvalidSelection
	}
	return handler(ctx)
}

func (s *HandlerService) handleAdd(ctx context.Context) (string, error) {
	name, err := s.readInput(ctx, billNamePrompt)
	if errors.Is(err, errEmptyInput) {
		return resultAborted, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle add")
	}

	amount, err := s.readAmount(ctx)
	if errors.Is(err, errEmptyInput) {
		return resultAborted, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle add")
	}

	err = s.console.SendMessage(fmt.Sprintf(addedMessage, name, formatAmount(amount)))
	if err != nil {
		return "", errors.Wrap(err, "handle add")
	}
	s.storage.Add(bill.Bill{Name: name, Amount: amount})

	logger.Debug("bill added", zap.String("name", name), zap.Float64("amount", amount))
	return resultAdded, nil
}

func (s *HandlerService) handleView(_ context.Context) (string, error) {
	if err := s.console.SendMessage(printingBillsMessage); err != nil {
		return "", errors.Wrap(err, "handle view")
	}
	for _, rec := range s.storage.List() {
		if err := s.console.SendMessage(fmt.Sprintf(billsForMessage, rec.Name)); err != nil {
			return "", errors.Wrap(err, "handle view")
		}
		for _, amount := range rec.Amounts {
			if err := s.console.SendMessage(formatAmount(amount)); err != nil {
				return "", errors.Wrap(err, "handle view")
			}
		}
	}
	return resultListed, nil
}

func (s *HandlerService) handleRemove(ctx context.Context) (string, error) {
	name, err := s.readInput(ctx, billNamePrompt)
	if errors.Is(err, errEmptyInput) {
		return resultAborted, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle remove")
	}

	res := s.storage.Remove(name)
	msg := fmt.Sprintf(removedMessage, name)
	if res == bill.RemoveNotFound {
		msg = billNotExistMessage
	}
	logger.Debug("remove bill", zap.String("name", name), zap.Stringer("result", res))
	return res.String(), errors.Wrap(s.console.SendMessage(msg), "handle remove")
}

func (s *HandlerService) handleUndo(ctx context.Context) (string, error) {
	name, err := s.readInput(ctx, billNamePrompt)
	if errors.Is(err, errEmptyInput) {
		return resultAborted, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle undo")
	}

	res := s.storage.Undo(name)
	logger.Debug("undo bill", zap.String("name", name), zap.Stringer("result", res))

	var msgs []string
	switch res {
	case bill.UndoNotFound:
		msgs = []string{billNotExistMessage}
	case bill.Undone:
		msgs = []string{fmt.Sprintf(undoneMessage, name)}
	case bill.UndoneAndEmptied:
		msgs = []string{fmt.Sprintf(undoneMessage, name), noBillsLeftMessage}
	}
	for _, msg := range msgs {
		if err = s.console.SendMessage(msg); err != nil {
			return "", errors.Wrap(err, "handle undo")
		}
	}
	return res.String(), nil
}

func (s *HandlerService) readInput(ctx context.Context, prompt string) (string, error) {
	if err := s.console.SendMessage(prompt); err != nil {
		return "", err
	}
	line, err := s.console.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	if line == "" {
		return "", errEmptyInput
	}
	return line, nil
}

// readAmount keeps asking until the line is a number or empty.
func (s *HandlerService) readAmount(ctx context.Context) (float64, error) {
	if err := s.console.SendMessage(amountPrompt); err != nil {
		return 0, err
	}
	for {
		line, err := s.console.ReadLine(ctx)
		if err != nil {
			return 0, err
		}
		if line == "" {
			return 0, errEmptyInput
		}
		amount, err := parseAmount(line)
		if err == nil {
			return amount, nil
		}
		if err = s.console.SendMessage(enterNumberMessage); err != nil {
			return 0, err
		}
	}
}

// parseAmount accepts plain decimal numbers that fit a 32-bit float. Values
// too large for it become infinities instead of being rejected. Go literal
// forms (hex mantissas, digit separators) are not numbers here.
func parseAmount(text string) (float64, error) {
	if strings.Contains(text, "_") || hasHexPrefix(text) {
		return 0, errors.Errorf("amount %q is not a decimal number", text)
	}
	amount, err := strconv.ParseFloat(text, 32)
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		return amount, nil
	}
	return amount, err
}

func hasHexPrefix(text string) bool {
	text = strings.TrimLeft(text, "+-")
	return strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X")
}

func formatAmount(amount float64) string {
	switch {
	case math.IsInf(amount, 1):
		return "inf"
	case math.IsInf(amount, -1):
		return "-inf"
	}
	return strconv.FormatFloat(amount, 'f', -1, 32)
}
