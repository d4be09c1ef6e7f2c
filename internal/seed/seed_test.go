package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/activities/internal/domain"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	defs, err := Default()
	require.NoError(t, err)
	require.NotEmpty(t, defs)

	catalog, err := domain.NewCatalog(defs)
	require.NoError(t, err)

	chess, err := catalog.Get("Chess Club")
	require.NoError(t, err)
	require.Equal(t, 12, chess.MaxParticipants)
	require.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)

	programming, err := catalog.Get("Programming Class")
	require.NoError(t, err)
	require.Contains(t, programming.Participants, "emma@mergington.edu")
	require.Contains(t, programming.Participants, "sophia@mergington.edu")

	science, err := catalog.Get("Science Club")
	require.NoError(t, err)
	require.Equal(t, 10, science.MaxParticipants)
	require.Empty(t, science.Participants)

	for _, name := range []string{"Basketball Team", "Soccer Club", "Art Club"} {
		_, err := catalog.Get(name)
		require.NoError(t, err, name)
	}
}

func TestLoadWithoutPathFallsBackToDefault(t *testing.T) {
	fromLoad, err := Load("")
	require.NoError(t, err)

	fromDefault, err := Default()
	require.NoError(t, err)
	require.Equal(t, fromDefault, fromLoad)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `activities:
  - name: Robotics Club
    description: Build and program robots
    schedule: Wednesdays, 3:30 PM - 5:00 PM
    max_participants: 8
    participants:
      - grace@mergington.edu
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	defs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	require.Equal(t, "Robotics Club", defs[0].Name)
	require.Equal(t, 8, defs[0].MaxParticipants)
	require.Equal(t, []string{"grace@mergington.edu"}, defs[0].Participants)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("activities: [not: valid"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("activities: []"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}
