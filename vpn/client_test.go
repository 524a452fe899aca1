package vpn

import (
	"errors"
	"strings"
	"testing"

	"github.com/yllada/relay-cycler/common"
)

// fakeRunner records issued commands and plays back canned transcripts.
type fakeRunner struct {
	calls   [][]string
	outputs map[string]string
	err     error
}

func (f *fakeRunner) Run(args ...string) (string, error) {
	f.calls = append(f.calls, args)
	if f.err != nil {
		return "", f.err
	}
	return f.outputs[strings.Join(args, " ")], nil
}

func TestClient_Status(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"status": "Connected\nRelay: de-ber-wg-001\n",
	}}
	client := NewClient(runner)

	st, err := client.Status()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !st.Connected || st.Ident() != "de-ber" {
		t.Errorf("status = %+v, want connected de-ber", st)
	}
}

func TestClient_StatusDaemonUnavailable(t *testing.T) {
	runner := &fakeRunner{err: errors.New("connect: no such file")}
	client := NewClient(runner)

	if _, err := client.Status(); !errors.Is(err, common.ErrDaemonUnavailable) {
		t.Errorf("error = %v, want ErrDaemonUnavailable", err)
	}
}

func TestClient_SetLocationArguments(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{}}
	client := NewClient(runner)

	if err := client.SetLocation("de", "ber"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"relay", "set", "location", "de", "ber"}
	if len(runner.calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(runner.calls))
	}
	for i, arg := range want {
		if runner.calls[0][i] != arg {
			t.Fatalf("call = %v, want %v", runner.calls[0], want)
		}
	}
}

func TestClient_CommandFailures(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exit status 1")}
	client := NewClient(runner)

	for name, op := range map[string]func() error{
		"set location": func() error { return client.SetLocation("de", "ber") },
		"connect":      client.Connect,
		"reconnect":    client.Reconnect,
		"disconnect":   client.Disconnect,
	} {
		if err := op(); !errors.Is(err, common.ErrCommandFailed) {
			t.Errorf("%s error = %v, want ErrCommandFailed", name, err)
		}
	}
}

func TestClient_RelayList(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"relay list": "Germany (de)\n\tBerlin (ber) @ 52.52437°N, 13.41053°W\n",
	}}
	client := NewClient(runner)

	out, err := client.RelayList()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Berlin") {
		t.Errorf("unexpected catalog: %q", out)
	}
}
