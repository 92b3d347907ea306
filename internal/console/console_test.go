package console

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/callebjorkell/openlcd/internal/device"
	"github.com/callebjorkell/openlcd/internal/eeprom"
	"github.com/callebjorkell/openlcd/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedDevice struct {
	snapshot device.Snapshot
}

func (f fixedDevice) Snapshot() device.Snapshot {
	return f.snapshot
}

func newTestServer(t *testing.T) (*httptest.Server, *eeprom.Memory, *bytes.Buffer) {
	t.Helper()
	m := eeprom.NewMemory()
	received := &bytes.Buffer{}
	d := fixedDevice{device.Snapshot{Settings: settings.Defaults(), Pending: "none", Frame: "Hello"}}

	ts := httptest.NewServer(NewServer("", d, m, received).Handler())
	t.Cleanup(ts.Close)
	return ts, m, received
}

func TestSettings(t *testing.T) {
	ts, _, _ := newTestServer(t)

	res, err := http.Get(ts.URL + "/settings")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var s device.Snapshot
	require.NoError(t, json.NewDecoder(res.Body).Decode(&s))
	assert.Equal(t, settings.Defaults(), s.Settings)
	assert.Equal(t, "Hello", s.Frame)
}

func TestEEPROM(t *testing.T) {
	ts, m, _ := newTestServer(t)
	require.NoError(t, eeprom.WriteByte(m, eeprom.Baud, 3))

	res, err := http.Get(ts.URL + "/eeprom")
	require.NoError(t, err)
	defer res.Body.Close()

	buf := &bytes.Buffer{}
	_, err = buf.ReadFrom(res.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "00000000  03 ff ff"))
}

func TestWrite(t *testing.T) {
	ts, _, received := newTestServer(t)

	res, err := http.Post(ts.URL+"/write", "application/octet-stream", bytes.NewReader([]byte{'|', '-', 'H'}))
	require.NoError(t, err)
	res.Body.Close()

	assert.Equal(t, http.StatusAccepted, res.StatusCode)
	assert.Equal(t, []byte{'|', '-', 'H'}, received.Bytes())
}

func TestWriteTooLarge(t *testing.T) {
	ts, _, received := newTestServer(t)

	res, err := http.Post(ts.URL+"/write", "application/octet-stream", bytes.NewReader(make([]byte, maxWriteSize+1)))
	require.NoError(t, err)
	res.Body.Close()

	assert.Equal(t, http.StatusRequestEntityTooLarge, res.StatusCode)
	assert.Zero(t, received.Len())
}

func TestMethods(t *testing.T) {
	ts, _, _ := newTestServer(t)

	res, err := http.Get(ts.URL + "/write")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)

	res, err = http.Post(ts.URL+"/settings", "text/plain", nil)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}
