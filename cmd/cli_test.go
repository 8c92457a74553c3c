package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bnema/owdragon-cli/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gameServer struct {
	*httptest.Server

	mu      sync.Mutex
	paths   []string
	delay   time.Duration
	onDaily func()
}

func newGameServer(t *testing.T) *gameServer {
	t.Helper()

	gs := &gameServer{}
	gs.Server = httptest.NewServer(http.HandlerFunc(gs.handle))
	t.Cleanup(gs.Close)
	t.Setenv("OWD_API_BASE_URL", gs.URL+"/api")
	return gs
}

func (gs *gameServer) handle(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)

	gs.mu.Lock()
	gs.paths = append(gs.paths, r.URL.Path)
	delay, onDaily := gs.delay, gs.onDaily
	gs.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	switch r.URL.Path {
	case "/api/auth/telegram":
		if body["init_data"] == "bad" {
			_, _ = fmt.Fprint(w, `{"code":401,"message":"invalid init data"}`)
			return
		}
		_, _ = fmt.Fprintf(w, `{"code":200,"data":{"jwt":"jwt-%s"}}`, body["init_data"])
	case "/api/get-address":
		_, _ = fmt.Fprint(w, `{"code":200,"data":{"address":"0xdragon"}}`)
	case "/api/get-power":
		_, _ = fmt.Fprint(w, `{"code":200,"data":{"power":1200}}`)
	case "/api/get-balance":
		_, _ = fmt.Fprint(w, `{"code":200,"data":{"balance":"35.5"}}`)
	case "/api/feed":
		_, _ = fmt.Fprint(w, `{"code":200,"data":{"reward":15}}`)
	case "/api/query-mission":
		if body["query"] == "daily" && onDaily != nil {
			defer onDaily()
		}
		_, _ = fmt.Fprint(w, `{"code":200,"data":[]}`)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (gs *gameServer) requested() []string {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return append([]string(nil), gs.paths...)
}

func executeCLI(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIContext(context.Background(), t, dir, args...)
}

func executeCLIContext(ctx context.Context, t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	t.Chdir(dir)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func writeCredentials(t *testing.T, dir, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o600))
}

func TestVersionPrintsVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)
}

func TestAccountsListWithoutCredentials(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "accounts", "list")
	require.NoError(t, err)
	assert.Equal(t, "accounts: 0\n", stdout)
}

func TestAccountsListMasksValues(t *testing.T) {
	dir := t.TempDir()
	writeCredentials(t, dir, "data.txt", "query_id=AAHdF6IQAAAAAN0XohDhrOrc\n\n")
	writeCredentials(t, dir, "token.txt", "eyJhbGciOiJIUzI1NiJ9.secret.signature\n")
	writeCredentials(t, dir, "accounts.toml", "[[accounts]]\nname = \"main\"\ntoken = \"short\"\n")

	stdout, _, err := executeCLI(t, dir, "accounts", "list", "--accounts", "accounts.toml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "accounts: 3")
	assert.Contains(t, stdout, "init-1\tinit_data\tdata.txt:1\tquer...rOrc")
	assert.Contains(t, stdout, "token-1\ttoken\ttoken.txt:1\teyJh...ture")
	assert.Contains(t, stdout, "main\ttoken\taccounts.toml#1\t*****")
	assert.NotContains(t, stdout, "secret")
}

func TestAccountsListRejectsDuplicateNames(t *testing.T) {
	dir := t.TempDir()
	writeCredentials(t, dir, "accounts.toml", "[[accounts]]\nname = \"main\"\ntoken = \"a\"\n\n[[accounts]]\nname = \"main\"\ntoken = \"b\"\n")

	_, _, err := executeCLI(t, dir, "accounts", "list", "--accounts", "accounts.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate account id")
}

func TestStatusRendersAccountStats(t *testing.T) {
	gs := newGameServer(t)
	gs.delay = 100 * time.Millisecond
	dir := t.TempDir()
	writeCredentials(t, dir, "data.txt", "good\nbad\n")

	stdout, stderr, err := executeCLI(t, dir, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "accounts: 2  failed: 1")
	assert.Contains(t, stdout, "init-1 (init_data, data.txt:1)")
	assert.Contains(t, stdout, "address: 0xdragon")
	assert.Contains(t, stdout, "power: 1200")
	assert.Contains(t, stdout, "balance: 35.5")
	assert.Contains(t, stdout, "invalid init data")
	assert.Contains(t, stderr, "Checking accounts")
	assert.Contains(t, stderr, "/2")
	assert.NotContains(t, gs.requested(), "/api/feed")
}

func TestStatusJSONOutput(t *testing.T) {
	newGameServer(t)
	dir := t.TempDir()
	writeCredentials(t, dir, "token.txt", "jwt-token\n")

	stdout, _, err := executeCLI(t, dir, "status", "--json")
	require.NoError(t, err)

	var statuses []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &statuses))
	require.Len(t, statuses, 1)
	assert.Equal(t, "token-1", statuses[0]["id"])
	assert.Equal(t, "token", statuses[0]["kind"])
	assert.Equal(t, "0xdragon", statuses[0]["address"])
	assert.Equal(t, "1200", statuses[0]["power"])
	assert.Equal(t, "35.5", statuses[0]["balance"])
	assert.NotContains(t, statuses[0], "error")
}

func TestRunWithoutCredentialsMakesNoCalls(t *testing.T) {
	gs := newGameServer(t)

	stdout, _, err := executeCLI(t, t.TempDir(), "run")
	require.NoError(t, err)
	assert.Contains(t, stdout, "accounts: 0")
	assert.Empty(t, gs.requested())
}

func TestRunFailsWhenEveryAccountFailsAuth(t *testing.T) {
	gs := newGameServer(t)
	dir := t.TempDir()
	writeCredentials(t, dir, "data.txt", "bad\n")

	stdout, _, err := executeCLI(t, dir, "run")
	require.Error(t, err)
	assert.ErrorIs(t, err, errAllAccountsFailed)
	assert.Contains(t, stdout, "init-1 [stopped]")
	assert.Equal(t, []string{"/api/auth/telegram"}, gs.requested())
}

func TestRunFeedsUntilInterrupted(t *testing.T) {
	gs := newGameServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	gs.onDaily = cancel

	dir := t.TempDir()
	writeCredentials(t, dir, "token.txt", "jwt-token\n")

	stdout, _, err := executeCLIContext(ctx, t, dir, "run")
	require.NoError(t, err)
	assert.Contains(t, stdout, "accounts: 1  failed: 0")
	assert.Contains(t, stdout, "token-1 [stopped]")
	assert.Contains(t, stdout, "feeds: 1  last reward: 15")
	assert.Contains(t, stdout, "next feed in")
	assert.Equal(t, []string{
		"/api/get-address",
		"/api/get-power",
		"/api/get-balance",
		"/api/feed",
		"/api/query-mission",
		"/api/query-mission",
	}, gs.requested())
}

func TestInvalidConfigIsRejected(t *testing.T) {
	t.Setenv("OWD_SCHEDULE_POLL_INTERVAL", "0s")

	_, _, err := executeCLI(t, t.TempDir(), "accounts", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestConfigFileFlag(t *testing.T) {
	dir := t.TempDir()
	writeCredentials(t, dir, "mine.txt", "query_id=1\n")
	writeCredentials(t, dir, "owd.toml", "[accounts]\ninit_data_file = \"mine.txt\"\n")

	stdout, _, err := executeCLI(t, dir, "accounts", "list", "--config", filepath.Join(dir, "owd.toml"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "accounts: 1")
	assert.Contains(t, stdout, "mine.txt:1")
}

func TestAccountsListResolvesFileSecrets(t *testing.T) {
	dir := t.TempDir()
	secretsDir := filepath.Join(dir, "secrets")
	require.NoError(t, os.MkdirAll(filepath.Join(secretsDir, "owd", "vault"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(secretsDir, "owd", "vault", "token"), []byte("jwt-from-secret-file\n"), 0o600))
	writeCredentials(t, dir, "accounts.toml", "[[accounts]]\nname = \"vault\"\ntoken_ref = \"owd/vault/token\"\n")
	t.Setenv("OWD_ACCOUNTS_SECRETS_DIR", secretsDir)
	// An empty PATH keeps a developer's pass store out of the test.
	t.Setenv("PATH", "")

	stdout, _, err := executeCLI(t, dir, "accounts", "list", "--accounts", "accounts.toml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "vault\ttoken\taccounts.toml#1\tjwt-...file")
}
