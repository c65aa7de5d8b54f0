package promise

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromiseResolve(t *testing.T) {
	p := New[int]()
	require.False(t, p.Settled())

	assert.True(t, p.Resolve(42), "first resolve must settle")

	value, err := p.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, value)
	assert.True(t, p.Settled())
}

func TestPromiseReject(t *testing.T) {
	p := New[string]()
	boom := errors.New("boom")

	assert.True(t, p.Reject(boom))

	_, err := p.Await(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestPromiseFirstSettlementWins(t *testing.T) {
	p := New[int]()

	assert.True(t, p.Resolve(1))
	assert.False(t, p.Resolve(2), "second resolve must be a no-op")
	assert.False(t, p.Reject(errors.New("late")), "reject after resolve must be a no-op")

	value, err := p.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, value)
}

func TestPromiseRejectThenResolve(t *testing.T) {
	p := New[int]()
	boom := errors.New("boom")

	assert.True(t, p.Reject(boom))
	assert.False(t, p.Resolve(7), "resolve after reject must be a no-op")

	_, err := p.Await(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestPromiseAwaitBeforeSettle(t *testing.T) {
	p := New[string]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		p.Resolve("delivered")
	}()

	value, err := p.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "delivered", value)
}

func TestPromiseAwaitContextCancellation(t *testing.T) {
	p := New[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	// Abandoning the wait must not settle the promise
	assert.False(t, p.Settled())
	assert.True(t, p.Resolve(5), "promise is still settleable after abandoned await")

	value, err := p.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, value)
}

func TestPromiseConcurrentSettle(t *testing.T) {
	p := New[int]()

	var wg sync.WaitGroup
	var settles int64
	results := make(chan bool, 50)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if n%2 == 0 {
				results <- p.Resolve(n)
			} else {
				results <- p.Reject(errors.New("racer"))
			}
		}(i)
	}
	wg.Wait()
	close(results)

	for settled := range results {
		if settled {
			settles++
		}
	}
	assert.Equal(t, int64(1), settles, "exactly one settle attempt may win")
}

func TestPromiseMultipleAwaiters(t *testing.T) {
	p := New[string]()

	var wg sync.WaitGroup
	values := make([]string, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			v, err := p.Await(context.Background())
			assert.NoError(t, err)
			values[n] = v
		}(i)
	}

	p.Resolve("fan-out")
	wg.Wait()

	for _, v := range values {
		assert.Equal(t, "fan-out", v, "every awaiter sees the same value")
	}
}

func TestResolvedAndRejectedConstructors(t *testing.T) {
	boom := errors.New("boom")

	value, err := Resolved(9).Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9, value)

	_, err = Rejected[int](boom).Await(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestPromiseDoneChannel(t *testing.T) {
	p := New[int]()

	select {
	case <-p.Done():
		t.Fatal("Done must not fire before settlement")
	default:
	}

	p.Resolve(1)

	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatal("Done must fire after settlement")
	}
}
