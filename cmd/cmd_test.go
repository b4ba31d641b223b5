package cmd

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/Laincy/kromer2-api/api"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

const testAddressBody = `{"ok":true,"address":{"address":"kfartoolong","balance":"10.5","totalin":"20","totalout":"9.5","firstseen":"2024-01-01T00:00:00Z","names":1}}`

const testTransactionsBody = `{"ok":true,"transactions":[
  {"id":2,"from":"kfartoolong","to":"kbbbbbbbbb","value":"1.5","time":"2024-03-01T08:00:00Z","name":null,"metadata":null,"type":"transfer"},
  {"id":1,"from":null,"to":"kfartoolong","value":"10","time":"2024-03-01T07:00:00Z","name":null,"metadata":null,"type":"mined"}
]}`

const testMotdBody = `{"motd":"Welcome to Kromer","public_url":"kromer.reconnected.cc","public_ws_url":"kromer.reconnected.cc/api/krist/ws",
  "transactions_enabled":true,"debug_mode":false,
  "package":{"name":"kromer","version":"0.2.0","author":"ReconnectedCC","licence":"GPL-3.0","repository":"https://github.com/ReconnectedCC/kromer"},
  "currency":{"address_prefix":"k","name_suffix":"kro","currency_name":"Kromer","currency_symbol":"KRO"},
  "notice":""}`

// newNode starts a fake Kromer2 node and counts requests per path.
func newNode(t *testing.T) (*httptest.Server, map[string]*atomic.Int64) {
	t.Helper()

	hits := map[string]*atomic.Int64{}
	for _, p := range []string{
		"/api/krist/motd",
		"/api/krist/addresses/kfartoolong",
		"/api/krist/addresses/kmissing00",
		"/api/krist/addresses/rich",
		"/api/krist/addresses/kfartoolong/transactions",
	} {
		hits[p] = &atomic.Int64{}
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, ok := hits[r.URL.Path]; ok {
			c.Add(1)
		}

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/krist/motd":
			_, _ = io.WriteString(w, testMotdBody)
		case "/api/krist/addresses/kfartoolong":
			_, _ = io.WriteString(w, testAddressBody)
		case "/api/krist/addresses/kmissing00":
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"ok":false,"error":"address_not_found","message":"Address not found"}`)
		case "/api/krist/addresses/rich":
			assert.Equal(t, "10", r.URL.Query().Get("limit"))
			_, _ = io.WriteString(w, `{"ok":true,"addresses":[]}`)
		case "/api/krist/addresses/kfartoolong/transactions":
			_, _ = io.WriteString(w, testTransactionsBody)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"ok":false,"error":"not_found","message":"Not found"}`)
		}
	}))
	t.Cleanup(ts.Close)

	return ts, hits
}

// execute runs the root command with fresh flag state.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeEnv(t, nil, args...)
}

// executeEnv is execute with the given KROMER_* variables set.
func executeEnv(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()

	urlFlag, configFlag, jsonFlag, verboseFlag = "", "", false, false
	namesFlag = false
	listLimitFlag, listOffsetFlag = api.DefaultLimit, 0
	txLimitFlag, txOffsetFlag, excludeMinedFlag = api.DefaultLimit, 0, false
	exportPagesFlag, exportLimitFlag, exportExcludeMinedFlag = 3, 100, false
	exportFormatFlag, exportDirFlag = "json", "kromer_export"

	for _, key := range []string{"KROMER_URL", "KROMER_TIMEOUT", "KROMER_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	for key, value := range env {
		t.Setenv(key, value)
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "config.yaml")}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

// ---------------------------------------------------------------------------
// commands
// ---------------------------------------------------------------------------

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "kromer v"+version+"\n", out)
}

func TestMotdCommand_JSON(t *testing.T) {
	ts, hits := newNode(t)

	out, err := execute(t, "--url", ts.URL, "motd")
	require.NoError(t, err)
	assert.Equal(t, int64(1), hits["/api/krist/motd"].Load())

	var motd api.Motd
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal([]byte(out), &motd))
	assert.Equal(t, "Welcome to Kromer", motd.Msg)
	assert.Equal(t, "KRO", motd.Currency.Symbol)
}

func TestAddressCommand(t *testing.T) {
	ts, _ := newNode(t)

	out, err := execute(t, "--url", ts.URL, "address", "kfartoolong", "--names")
	require.NoError(t, err)
	assert.Contains(t, out, `"address": "kfartoolong"`)
	assert.Contains(t, out, `"names": 1`)
}

func TestAddressCommand_NotFound(t *testing.T) {
	ts, _ := newNode(t)

	_, err := execute(t, "--url", ts.URL, "address", "kmissing00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestRichCommand_Limit(t *testing.T) {
	ts, hits := newNode(t)

	out, err := execute(t, "--url", ts.URL, "rich", "--limit", "10")
	require.NoError(t, err)
	assert.Equal(t, int64(1), hits["/api/krist/addresses/rich"].Load())
	assert.Equal(t, "[]", strings.TrimSpace(out))
}

func TestTransactionsCommand(t *testing.T) {
	ts, _ := newNode(t)

	out, err := execute(t, "--url", ts.URL, "transactions", "kfartoolong", "--exclude-mined")
	require.NoError(t, err)

	var txs []api.Transaction
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal([]byte(out), &txs))
	require.Len(t, txs, 2)
	assert.Equal(t, api.TransactionTransfer, txs[0].Type)
	assert.Equal(t, api.TransactionMined, txs[1].Type)
}

func TestInvalidURL(t *testing.T) {
	_, err := execute(t, "--url", "not a url", "motd")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrURL)
}

func TestExportCommand_StopsOnShortPage(t *testing.T) {
	ts, hits := newNode(t)
	dir := t.TempDir()

	out, err := execute(t, "--url", ts.URL, "export", "kfartoolong", "--pages", "5", "--limit", "10", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Export completed successfully")
	assert.Equal(t, int64(1), hits["/api/krist/addresses/kfartoolong/transactions"].Load())

	files, err := filepath.Glob(filepath.Join(dir, "kromer_kfartoolong_*.json"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)

	var exported ExportData
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &exported))
	assert.Equal(t, "kfartoolong", exported.Address)
	assert.Equal(t, 2, exported.TotalTransactions)
	assert.Len(t, exported.Transactions, 2)
}

func TestExportCommand_FullPagesUseBudget(t *testing.T) {
	ts, hits := newNode(t)
	dir := t.TempDir()

	_, err := execute(t, "--url", ts.URL, "export", "kfartoolong", "--pages", "3", "--limit", "2", "--format", "csv", "--out", dir)
	require.NoError(t, err)
	assert.Equal(t, int64(3), hits["/api/krist/addresses/kfartoolong/transactions"].Load())

	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 7, "header plus three pages of two")
	assert.Equal(t, "id,type,from,to,value,time,name,metadata", lines[0])
}

func TestExportCommand_RejectsBadFlags(t *testing.T) {
	_, err := execute(t, "export", "kfartoolong", "--limit", "1000")
	assert.Error(t, err)

	_, err = execute(t, "export", "kfartoolong", "--format", "xml")
	assert.Error(t, err)
}

func TestExportCommand_RejectsPathInAddress(t *testing.T) {
	ts, hits := newNode(t)
	dir := t.TempDir()

	for _, addr := range []string{"../escape", "a/b", `a\b`, "..", "."} {
		_, err := execute(t, "--url", ts.URL, "export", addr, "--out", dir)
		require.Error(t, err, "address %q", addr)
		assert.Contains(t, err.Error(), "invalid address")
	}

	files, err := filepath.Glob(filepath.Join(filepath.Dir(dir), "kromer_*"))
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Zero(t, hits["/api/krist/addresses/kfartoolong/transactions"].Load())
}

func TestNodeCommand_SetAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "node", "http://node.local:8080", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "http://node.local:8080")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "url: http://node.local:8080")

	out, err = execute(t, "node", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "http://node.local:8080")
}

func TestNodeCommand_DoesNotPersistEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("url: http://old.local\ntimeout: 5\nlog_level: info\n"), 0600))

	_, err := executeEnv(t, map[string]string{
		"KROMER_TIMEOUT":   "99",
		"KROMER_LOG_LEVEL": "debug",
	}, "node", "http://node.local:8080", "--config", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "url: http://node.local:8080")
	assert.Contains(t, string(data), "timeout: 5")
	assert.Contains(t, string(data), "log_level: info")
	assert.NotContains(t, string(data), "99")
	assert.NotContains(t, string(data), "debug")
}

func TestNodeCommand_RejectsInvalidURL(t *testing.T) {
	_, err := execute(t, "node", "node.local")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrURL)
}
