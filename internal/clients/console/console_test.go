package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/bill-tracker/internal/entity/bill"
	"max.ks1230/bill-tracker/internal/model/messages"
	"max.ks1230/bill-tracker/internal/model/storage"
)

const menu = "== Manage bills ==\n" +
	"1. Add/Edit bill\n" +
	"2. View bills\n" +
	"3. Remove bill\n" +
	"4. Undo bill change\n" +
	"Enter selection: \n"

type retries int

func (r retries) MaxReadRetries() int { return int(r) }

// flakyReader fails a number of reads before serving data.
type flakyReader struct {
	fails int
	data  io.Reader
}

func (r *flakyReader) Read(p []byte) (int, error) {
	if r.fails > 0 {
		r.fails--
		return 0, errors.New("device not ready")
	}
	return r.data.Read(p)
}

func Test_OnReadLine_ShouldTrimAndTreatEOFAsEmpty(t *testing.T) {
	ctx := context.Background()
	c := New(strings.NewReader("  rent \r\nlast"), io.Discard, retries(0))

	line, err := c.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rent", line)

	line, err = c.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	line, err = c.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", line)
}

func Test_OnFlakyReader_ShouldRetry(t *testing.T) {
	out := &bytes.Buffer{}
	c := New(&flakyReader{fails: 2, data: strings.NewReader("gym\n")}, out, retries(3))

	line, err := c.ReadLine(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "gym", line)
	assert.Equal(t, "Enter valid input\nEnter valid input\n", out.String())
}

func Test_OnBrokenReader_ShouldGiveUpAfterRetries(t *testing.T) {
	out := &bytes.Buffer{}
	c := New(&flakyReader{fails: 10, data: strings.NewReader("")}, out, retries(2))

	_, err := c.ReadLine(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "device not ready")
	assert.Equal(t, 2, strings.Count(out.String(), "Enter valid input"))
}

func Test_OnCancelledContext_ShouldNotRead(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := New(strings.NewReader("rent\n"), io.Discard, retries(0))

	_, err := c.ReadLine(ctx)

	assert.True(t, errors.Is(err, context.Canceled))
}

func Test_OnSession_ShouldRunUntilInvalidSelection(t *testing.T) {
	input := strings.Join([]string{
		"1", "rent", "1200",
		"1", "rent", "1250",
		"1", "gym", "40",
		"4", "gym",
		"2",
		"3", "utilities",
		"x",
		"1", "never", "1",
	}, "\n")
	out := &bytes.Buffer{}
	store := storage.NewInMemStorage()
	c := New(strings.NewReader(input), out, retries(0))

	err := c.ListenUpdates(context.Background(), messages.NewService(c, store))

	require.NoError(t, err)
	assert.Equal(t, []bill.Record{{Name: "rent", Amounts: []float64{1200, 1250}}}, store.List())
	assert.Equal(t, ""+
		menu+"Bill name: \nAmount: \nAdded a new bill for rent with amount - 1200\n"+
		menu+"Bill name: \nAmount: \nAdded a new bill for rent with amount - 1250\n"+
		menu+"Bill name: \nAmount: \nAdded a new bill for gym with amount - 40\n"+
		menu+"Bill name: \nBills undone for user - gym\nNo Bills left for user - removed user entry\n"+
		menu+"Printing all bills:\nBills for rent\n1200\n1250\n"+
		menu+"Bill name: \nBill does not exist\n"+
		menu+"Invalid selection!!!\n",
		out.String())
}

func Test_OnEndOfInput_ShouldStopQuietly(t *testing.T) {
	out := &bytes.Buffer{}
	store := storage.NewInMemStorage()
	c := New(strings.NewReader("1\nrent\n"), out, retries(0))

	err := c.ListenUpdates(context.Background(), messages.NewService(c, store))

	require.NoError(t, err)
	assert.Empty(t, store.List())
	assert.Equal(t, menu+"Bill name: \nAmount: \n"+menu, out.String())
}

func Test_OnBrokenInput_ShouldReturnError(t *testing.T) {
	c := New(&flakyReader{fails: 5, data: strings.NewReader("")}, io.Discard, retries(1))

	err := c.ListenUpdates(context.Background(), messages.NewService(c, storage.NewInMemStorage()))

	assert.Error(t, err)
}

func Test_OnCancelWhileBlocked_ShouldStopReading(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	ctx, cancel := context.WithCancel(context.Background())
	c := New(pr, io.Discard, retries(0))

	done := make(chan error, 1)
	go func() {
		_, err := c.ReadLine(ctx)
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(time.Second):
		t.Fatal("ReadLine did not return after cancel")
	}
}

func Test_OnReadAfterCancel_ShouldKeepPendingLine(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	c := New(pr, io.Discard, retries(0))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := c.ReadLine(ctx)
	require.True(t, errors.Is(err, context.DeadlineExceeded))

	go func() {
		_, _ = pw.Write([]byte("rent\n"))
	}()
	line, err := c.ReadLine(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "rent", line)
}

func Test_OnInterruptedSession_ShouldStopQuietly(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	out := &bytes.Buffer{}
	ctx, cancel := context.WithCancel(context.Background())
	c := New(pr, out, retries(0))
	svc := messages.NewService(c, storage.NewInMemStorage())

	done := make(chan error, 1)
	go func() {
		done <- c.ListenUpdates(ctx, svc)
	}()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("ListenUpdates did not return after cancel")
	}
}

// partialReader hands out a fragment together with a failure, then the rest.
type partialReader struct {
	failed bool
	data   io.Reader
}

func (r *partialReader) Read(p []byte) (int, error) {
	if !r.failed {
		r.failed = true
		return copy(p, "ren"), errors.New("device not ready")
	}
	return r.data.Read(p)
}

func Test_OnFailureWithPartialLine_ShouldDropFragment(t *testing.T) {
	out := &bytes.Buffer{}
	c := New(&partialReader{data: strings.NewReader("gym\n")}, out, retries(1))

	line, err := c.ReadLine(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "gym", line)
	assert.Equal(t, "Enter valid input\n", out.String())
}
