package vpn

import (
	"errors"
	"testing"
	"time"

	"github.com/yllada/relay-cycler/common"
)

// countingSleep records poll pauses instead of sleeping.
func countingSleep(count *int) SleepFunc {
	return func(time.Duration) { *count++ }
}

func TestWaitUntilConnected_ImmediateSuccess(t *testing.T) {
	sleeps := 0
	calls := 0

	err := WaitUntilConnected(func() (bool, error) {
		calls++
		return true, nil
	}, 500*time.Millisecond, 15*time.Second, countingSleep(&sleeps))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("status calls = %d, want 1", calls)
	}
	if sleeps != 0 {
		t.Errorf("sleeps = %d, want 0", sleeps)
	}
}

func TestWaitUntilConnected_SuccessAfterPolls(t *testing.T) {
	sleeps := 0
	calls := 0

	err := WaitUntilConnected(func() (bool, error) {
		calls++
		return calls >= 3, nil
	}, 500*time.Millisecond, 15*time.Second, countingSleep(&sleeps))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("status calls = %d, want 3", calls)
	}
	if sleeps != 2 {
		t.Errorf("sleeps = %d, want 2", sleeps)
	}
}

func TestWaitUntilConnected_Timeout(t *testing.T) {
	sleeps := 0
	calls := 0

	err := WaitUntilConnected(func() (bool, error) {
		calls++
		return false, nil
	}, 500*time.Millisecond, 15*time.Second, countingSleep(&sleeps))

	if !errors.Is(err, common.ErrConnectionTimeout) {
		t.Fatalf("error = %v, want ErrConnectionTimeout", err)
	}
	// 15s budget at 500ms polls is exactly 30 attempts.
	if calls != 30 {
		t.Errorf("status calls = %d, want 30", calls)
	}
}

func TestWaitUntilConnected_StatusErrorAborts(t *testing.T) {
	boom := errors.New("daemon gone")
	calls := 0

	err := WaitUntilConnected(func() (bool, error) {
		calls++
		return false, boom
	}, 500*time.Millisecond, 15*time.Second, func(time.Duration) {})

	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
	if calls != 1 {
		t.Errorf("status calls = %d, want 1", calls)
	}
}

func TestWaitUntilConnected_TinyBudgetStillChecksOnce(t *testing.T) {
	calls := 0

	err := WaitUntilConnected(func() (bool, error) {
		calls++
		return false, nil
	}, time.Second, 100*time.Millisecond, func(time.Duration) {})

	if !errors.Is(err, common.ErrConnectionTimeout) {
		t.Fatalf("error = %v, want ErrConnectionTimeout", err)
	}
	if calls != 1 {
		t.Errorf("status calls = %d, want 1", calls)
	}
}
