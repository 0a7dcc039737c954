package guestfile

import (
	"bed-scheduler-service/internal/domain"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var wantGuests = []domain.Guest{
	domain.NewGuest(1, 1, 5),
	domain.NewGuest(2, 5, 9),
}

func TestParseJSONObject(t *testing.T) {
	f, err := ParseJSON([]byte(`{"beds": 2, "guests": [
		{"guest_id": 1, "start": 1, "end": 5},
		{"guest_id": 2, "start": 5, "end": 9}
	]}`))
	require.NoError(t, err)
	require.NotNil(t, f.BedCount)
	require.Equal(t, 2, *f.BedCount)
	require.Equal(t, wantGuests, f.Guests)
}

func TestParseJSONArray(t *testing.T) {
	f, err := ParseJSON([]byte(`[{"guest_id": 1, "start": 1, "end": 5}, {"guest_id": 2, "start": 5, "end": 9}]`))
	require.NoError(t, err)
	require.Nil(t, f.BedCount)
	require.Equal(t, wantGuests, f.Guests)
}

func TestParseJSONRejectsUnknownFields(t *testing.T) {
	_, err := ParseJSON([]byte(`{"rooms": 2}`))
	require.Error(t, err)
}

func TestParseHCL(t *testing.T) {
	src := []byte(`
beds = 3

guest {
  id    = 1
  start = 1
  end   = 5
}

guest {
  id    = 2
  start = 5
  end   = 9
}
`)
	f, err := ParseHCL(src, "guests.hcl")
	require.NoError(t, err)
	require.NotNil(t, f.BedCount)
	require.Equal(t, 3, *f.BedCount)
	require.Equal(t, wantGuests, f.Guests)
}

func TestParseHCLMissingAttribute(t *testing.T) {
	_, err := ParseHCL([]byte("guest {\n  id = 1\n  start = 2\n}\n"), "bad.hcl")
	require.Error(t, err)
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "guests.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"guest_id": 1, "start": 1, "end": 5}]`), 0o600))
	f, err := Load(jsonPath)
	require.NoError(t, err)
	require.Len(t, f.Guests, 1)

	txtPath := filepath.Join(dir, "guests.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("x"), 0o600))
	_, err = Load(txtPath)
	require.Error(t, err)
}
